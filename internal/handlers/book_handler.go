package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"best-readers-backend/internal/constants"
	"best-readers-backend/internal/models"
	"best-readers-backend/internal/utils"
)

type BookHandler struct {
	Collection  *mongo.Collection
	AuditLogger utils.Logger
}

func NewBookHandler(coll *mongo.Collection, logger utils.Logger) *BookHandler {
	return &BookHandler{Collection: coll, AuditLogger: logger}
}

// GET /all-books
func (h *BookHandler) GetAllBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.Collection.Find(ctx, bson.M{})
	if err != nil {
		utils.JSONError(w, "Failed to fetch books", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err = cursor.All(ctx, &books); err != nil {
		utils.JSONError(w, "Error decoding books", http.StatusInternalServerError)
		return
	}

	// An empty catalog is still a 200 with an empty array.
	json.NewEncoder(w).Encode(books)
}

// GET /recent-books
func (h *BookHandler) GetRecentBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(10)

	cursor, err := h.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.JSONError(w, "Failed to fetch books", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err = cursor.All(ctx, &books); err != nil {
		utils.JSONError(w, "Error decoding books", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(books)
}

// GET /matched-books/{email}
func (h *BookHandler) GetMatchedBooks(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.Collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		utils.JSONError(w, "Failed to fetch books", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err = cursor.All(ctx, &books); err != nil {
		utils.JSONError(w, "Error decoding books", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(books)
}

// GET /singleBook/{id}
func (h *BookHandler) GetSingleBook(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	bookID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		utils.JSONError(w, "Invalid book ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var book models.Book
	if err := h.Collection.FindOne(ctx, bson.M{"_id": bookID}).Decode(&book); err != nil {
		utils.JSONError(w, "Book not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(book)
}

// POST /add-book
func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		utils.JSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	book.ID = primitive.NilObjectID
	book.Timestamp = time.Now().UTC().Format(time.RFC3339)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.Collection.InsertOne(ctx, book)
	if err != nil {
		utils.JSONError(w, "Insert failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Create, book)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"insertedId":   res.InsertedID,
	})
}

type UpdateBookData struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publicationYear"`
}

type UpdateBookRequest struct {
	Data *UpdateBookData `json:"data" validate:"required"`
}

// PATCH /update-book/{id}
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	bookID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		utils.JSONError(w, "Invalid book ID", http.StatusBadRequest)
		return
	}

	var req UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Data == nil {
		utils.JSONError(w, "Invalid payload: missing data object", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Only these four fields are mutable; email, timestamp and _id stay put.
	result, err := h.Collection.UpdateOne(
		ctx,
		bson.M{"_id": bookID},
		bson.M{"$set": bson.M{
			"title":           req.Data.Title,
			"author":          req.Data.Author,
			"genre":           req.Data.Genre,
			"publicationYear": req.Data.PublicationYear,
		}},
	)
	if err != nil {
		utils.JSONError(w, "Update failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		utils.JSONError(w, "Book not found", http.StatusNotFound)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Update, req.Data)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// DELETE /delete-book/{id}
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	bookID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		utils.JSONError(w, "Invalid book ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := h.Collection.DeleteOne(ctx, bson.M{"_id": bookID})
	if err != nil {
		utils.JSONError(w, "Delete failed", http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		utils.JSONError(w, "Book not found", http.StatusNotFound)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Delete, idStr)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"deletedCount": result.DeletedCount,
	})
}
