package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type BorrowedBook struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	BookCategory string             `bson:"bookCategory,omitempty" json:"bookCategory,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	BorrowedDate string             `bson:"borrowedDate,omitempty" json:"borrowedDate,omitempty"`
	ReturnDate   string             `bson:"returnDate,omitempty" json:"returnDate,omitempty"`
}
