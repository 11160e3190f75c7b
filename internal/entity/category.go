package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Category string             `bson:"category" json:"category"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
}
