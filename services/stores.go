package services

import (
	"context"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
}

type PlantStore interface {
	Create(ctx context.Context, plant *models.Plant) (primitive.ObjectID, error)
	List(ctx context.Context, limit int64) ([]models.Plant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error)
	AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (models.UpdateResult, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	DeleteUndelivered(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]models.CustomerOrder, error)
}
