package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
)

type Customer struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Order keeps the plant reference as a hex string, the way clients send it.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Customer Customer           `bson:"customer" json:"customer"`
	PlantID  string             `bson:"plantId" json:"plantId"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Seller   string             `bson:"seller,omitempty" json:"seller,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Status   string             `bson:"status" json:"status"`
}

// CustomerOrder is an order joined with the name, image and category of
// its plant. PlantID has already been converted to an ObjectID.
type CustomerOrder struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Customer Customer           `bson:"customer" json:"customer"`
	PlantID  primitive.ObjectID `bson:"plantId" json:"plantId"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Seller   string             `bson:"seller,omitempty" json:"seller,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Status   string             `bson:"status" json:"status"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image" json:"image"`
	Category string             `bson:"category" json:"category"`
}
