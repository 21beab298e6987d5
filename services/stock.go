package services

import (
	"context"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// adjustStock applies delta and tells an unknown plant apart from a stock
// that cannot cover a decrease.
func adjustStock(ctx context.Context, plants PlantStore, id primitive.ObjectID, delta int) (models.UpdateResult, error) {
	res, err := plants.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return models.UpdateResult{}, models.NewInternalError("failed to update plant quantity", err)
	}
	if res.MatchedCount > 0 {
		return res, nil
	}

	plant, err := plants.FindByID(ctx, id)
	if err != nil {
		return models.UpdateResult{}, models.NewInternalError("failed to look up plant", err)
	}
	if plant == nil {
		return models.UpdateResult{}, models.NewNotFoundError("plant not found")
	}
	return models.UpdateResult{}, models.NewConflictError("insufficient stock")
}

func parseObjectID(hex, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, models.NewValidationError("invalid " + what + " id")
	}
	return id, nil
}
