package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"best-readers-backend/internal/constants"
	"best-readers-backend/internal/models"
	"best-readers-backend/internal/utils"
)

type CommentHandler struct {
	Collection  *mongo.Collection
	AuditLogger utils.Logger
}

func NewCommentHandler(coll *mongo.Collection, logger utils.Logger) *CommentHandler {
	return &CommentHandler{Collection: coll, AuditLogger: logger}
}

// POST /create-comment
//
// Comments are schemaless: whatever the caller sends is stored as-is, plus a
// server-assigned timestamp. The caller-supplied `id` field links the comment
// to a book.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var comment bson.M
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		utils.JSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	delete(comment, "_id")
	comment["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.Collection.InsertOne(ctx, comment)
	if err != nil {
		utils.JSONError(w, "Insert failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.AuditLogger.Log(ctx, models.CommentEntity, constants.Create, comment)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"insertedId":   res.InsertedID,
	})
}

// GET /comments/{id}
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	bookID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.Collection.Find(ctx, bson.M{"id": bookID})
	if err != nil {
		utils.JSONError(w, "Failed to fetch comments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	comments := []bson.M{}
	if err = cursor.All(ctx, &comments); err != nil {
		utils.JSONError(w, "Error decoding comments", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(comments)
}
