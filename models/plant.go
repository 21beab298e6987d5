package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Seller struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

type Plant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Image       string             `bson:"image" json:"image"`
	Seller      *Seller            `bson:"seller,omitempty" json:"seller,omitempty"`
}
