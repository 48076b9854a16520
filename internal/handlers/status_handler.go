package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"best-readers-backend/internal/constants"
	"best-readers-backend/internal/models"
	"best-readers-backend/internal/utils"
)

// StatusHandler serves one of the three status collections (wishlist,
// reading, finished). The flag field it maintains is named after the
// collection.
type StatusHandler struct {
	Collection  *mongo.Collection
	Kind        models.StatusKind
	Validator   *validator.Validate
	AuditLogger utils.Logger
}

func NewStatusHandler(coll *mongo.Collection, kind models.StatusKind, v *validator.Validate, logger utils.Logger) *StatusHandler {
	return &StatusHandler{Collection: coll, Kind: kind, Validator: v, AuditLogger: logger}
}

// PATCH /wishlist, /reading, /finished
//
// A single filtered upsert keyed on the book id keeps at most one mark per
// book per collection, even under concurrent first-time marks.
func (h *StatusHandler) MarkStatus(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.JSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	var req models.StatusMark
	if err := json.Unmarshal(body, &req); err != nil {
		utils.JSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		utils.JSONError(w, "email and id are required", http.StatusBadRequest)
		return
	}

	// Any extra caller-supplied fields ride along with the mark.
	var doc bson.M
	if err := json.Unmarshal(body, &doc); err != nil {
		utils.JSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	delete(doc, "_id")
	doc[h.Kind.FlagField()] = true

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := h.Collection.UpdateOne(
		ctx,
		bson.M{"id": req.BookID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.JSONError(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	h.AuditLogger.Log(ctx, models.StatusMarkEntity, constants.Mark, doc)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
		"upsertedId":    result.UpsertedID,
	})
}

// GET /{wishlist|reading|finished}/{email}
func (h *StatusHandler) GetMarks(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.Collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		utils.JSONError(w, "Failed to fetch status marks", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	marks := []bson.M{}
	if err = cursor.All(ctx, &marks); err != nil {
		utils.JSONError(w, "Error decoding status marks", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(marks)
}
