package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Book struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	AuthorName   string             `bson:"authorName,omitempty" json:"authorName,omitempty"`
	BookCategory string             `bson:"bookCategory" json:"bookCategory"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}
