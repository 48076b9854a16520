package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatsHandler struct {
	BookCol     *mongo.Collection
	CommentCol  *mongo.Collection
	WishlistCol *mongo.Collection
	ReadingCol  *mongo.Collection
	FinishedCol *mongo.Collection
}

// GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalBooks, _ := h.BookCol.CountDocuments(ctx, bson.M{})
	totalComments, _ := h.CommentCol.CountDocuments(ctx, bson.M{})
	wishlisted, _ := h.WishlistCol.CountDocuments(ctx, bson.M{})
	reading, _ := h.ReadingCol.CountDocuments(ctx, bson.M{})
	finished, _ := h.FinishedCol.CountDocuments(ctx, bson.M{})

	// Timestamps are RFC3339 UTC strings, so string comparison is
	// chronological.
	todayStart := time.Now().UTC().Truncate(24 * time.Hour).Format(time.RFC3339)
	booksToday, _ := h.BookCol.CountDocuments(ctx, bson.M{
		"timestamp": bson.M{"$gte": todayStart},
	})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_books":       totalBooks,
		"total_comments":    totalComments,
		"wishlisted":        wishlisted,
		"reading":           reading,
		"finished":          finished,
		"books_added_today": booksToday,
	})
}
