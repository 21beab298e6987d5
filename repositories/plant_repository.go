package repositories

import (
	"context"
	"errors"
	"fmt"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PlantRepository struct {
	coll *mongo.Collection
}

func NewPlantRepository(db *mongo.Database) *PlantRepository {
	return &PlantRepository{coll: db.Collection(PlantsCollection)}
}

func (r *PlantRepository) Create(ctx context.Context, plant *models.Plant) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, plant)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert plant: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	plant.ID = id
	return id, nil
}

func (r *PlantRepository) List(ctx context.Context, limit int64) ([]models.Plant, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find plants: %w", err)
	}
	defer cursor.Close(ctx)

	plants := []models.Plant{}
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, fmt.Errorf("decode plants: %w", err)
	}
	return plants, nil
}

// FindByID returns nil, nil when the plant does not exist.
func (r *PlantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error) {
	plant := &models.Plant{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(plant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find plant: %w", err)
	}
	return plant, nil
}

// AdjustQuantity adds delta to the plant's stock in one atomic update. A
// negative delta only matches while the stock covers it, so MatchedCount is
// zero both for an unknown plant and for insufficient stock.
func (r *PlantRepository) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, QuantityFilter(id, delta), bson.M{"$inc": bson.M{"quantity": delta}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update plant quantity: %w", err)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func QuantityFilter(id primitive.ObjectID, delta int) bson.M {
	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}
	return filter
}
