package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type StatusKind string

const (
	StatusWishlist StatusKind = "wishlist"
	StatusReading  StatusKind = "reading"
	StatusFinished StatusKind = "finished"

	StatusMarkEntity = "status_mark"
)

// AllStatusKinds lists the status collections the API serves.
var AllStatusKinds = []StatusKind{StatusWishlist, StatusReading, StatusFinished}

// StatusMark is the canonical mark record shared by the wishlist, reading and
// finished collections. The flag field is named after its collection and is
// true whenever present, so it is set per collection rather than here.
type StatusMark struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email" validate:"required"`
	BookID string             `bson:"id" json:"id" validate:"required"`
}

// FlagField returns the boolean flag field name for a status collection,
// which by convention equals the collection name.
func (k StatusKind) FlagField() string {
	return string(k)
}
