package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Book struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title           string             `bson:"title" json:"title"`
	Author          string             `bson:"author" json:"author"`
	Genre           string             `bson:"genre" json:"genre"`
	PublicationYear int                `bson:"publicationYear" json:"publicationYear"`
	Email           string             `bson:"email" json:"email"`
	Timestamp       string             `bson:"timestamp" json:"timestamp"` // ISO-8601, assigned at insert
}

const (
	BookEntity = "book"
)
