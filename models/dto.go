package models

type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UpsertUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type CreatePlantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Image       string  `json:"image"`
	Seller      *Seller `json:"seller"`
}

type PlaceOrderRequest struct {
	Customer Customer `json:"customer"`
	PlantID  string   `json:"plantId" binding:"required"`
	Price    float64  `json:"price" binding:"gte=0"`
	Quantity int      `json:"quantity" binding:"required,min=1"`
	Seller   string   `json:"seller"`
	Address  string   `json:"address"`
	Status   string   `json:"status"`
}

type QuantityUpdateRequest struct {
	QuantityToUpdate int    `json:"quantityToUpdate" binding:"required,min=1"`
	Status           string `json:"status"`
}
