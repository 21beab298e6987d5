package repositories

import (
	"context"
	"errors"
	"fmt"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(OrdersCollection)}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert order: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	order.ID = id
	return id, nil
}

// FindByID returns nil, nil when the order does not exist.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order := &models.Order{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// DeleteUndelivered removes the order unless it has been delivered in the
// meantime.
func (r *OrderRepository) DeleteUndelivered(ctx context.Context, id primitive.ObjectID) (int64, error) {
	filter := bson.M{"_id": id, "status": bson.M{"$ne": models.OrderStatusDelivered}}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]models.CustomerOrder, error) {
	cursor, err := r.coll.Aggregate(ctx, CustomerOrdersPipeline(email))
	if err != nil {
		return nil, fmt.Errorf("aggregate customer orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.CustomerOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode customer orders: %w", err)
	}
	return orders, nil
}

// CustomerOrdersPipeline joins each order of the customer with its plant.
// plantId is stored as a hex string; ids that do not convert become null and
// then match no plant, so $unwind drops those orders.
func CustomerOrdersPipeline(email string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"customer.email": email}}},
		{{Key: "$addFields", Value: bson.M{
			"plantId": bson.M{"$convert": bson.M{
				"input":   "$plantId",
				"to":      "objectId",
				"onError": nil,
				"onNull":  nil,
			}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         PlantsCollection,
			"localField":   "plantId",
			"foreignField": "_id",
			"as":           "plants",
		}}},
		{{Key: "$unwind", Value: "$plants"}},
		{{Key: "$addFields", Value: bson.M{
			"name":     "$plants.name",
			"image":    "$plants.image",
			"category": "$plants.category",
		}}},
		{{Key: "$project", Value: bson.M{"plants": 0}}},
	}
}
