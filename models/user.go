package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const DefaultUserRole = "customer"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      string             `bson:"role" json:"role"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
}
