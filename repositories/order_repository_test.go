package repositories

import (
	"context"
	"testing"

	"plantnet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func stageName(t *testing.T, stage bson.D) string {
	t.Helper()
	require.Len(t, stage, 1)
	return stage[0].Key
}

func TestCustomerOrdersPipeline(t *testing.T) {
	pipeline := CustomerOrdersPipeline("buyer@plantnet.dev")
	require.Len(t, pipeline, 6)

	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		names = append(names, stageName(t, stage))
	}
	assert.Equal(t, []string{"$match", "$addFields", "$lookup", "$unwind", "$addFields", "$project"}, names)

	assert.Equal(t, bson.M{"customer.email": "buyer@plantnet.dev"}, pipeline[0][0].Value)

	convert := pipeline[1][0].Value.(bson.M)["plantId"].(bson.M)["$convert"].(bson.M)
	assert.Equal(t, "objectId", convert["to"])
	assert.Nil(t, convert["onError"])
	assert.Contains(t, convert, "onError")
	assert.Contains(t, convert, "onNull")

	lookup := pipeline[2][0].Value.(bson.M)
	assert.Equal(t, PlantsCollection, lookup["from"])
	assert.Equal(t, "plantId", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])
	assert.Equal(t, "plants", lookup["as"])

	assert.Equal(t, "$plants", pipeline[3][0].Value)
	assert.Equal(t, bson.M{
		"name":     "$plants.name",
		"image":    "$plants.image",
		"category": "$plants.category",
	}, pipeline[4][0].Value)
	assert.Equal(t, bson.M{"plants": 0}, pipeline[5][0].Value)
}

func TestOrderRepository_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by customer email decodes joined orders", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		orderID := primitive.NewObjectID()
		plantID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plantNet.orders", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: orderID},
			{Key: "customer", Value: bson.D{{Key: "email", Value: "buyer@plantnet.dev"}}},
			{Key: "plantId", Value: plantID},
			{Key: "quantity", Value: 2},
			{Key: "status", Value: "pending"},
			{Key: "name", Value: "Monstera"},
			{Key: "image", Value: "https://i.ibb.co/monstera.jpg"},
			{Key: "category", Value: "Indoor"},
		}))

		orders, err := repo.FindByCustomerEmail(context.Background(), "buyer@plantnet.dev")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, orderID, orders[0].ID)
		assert.Equal(t, plantID, orders[0].PlantID)
		assert.Equal(t, "Monstera", orders[0].Name)
		assert.Equal(t, "Indoor", orders[0].Category)
	})

	mt.Run("find by id returns nil when missing", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plantNet.orders", mtest.FirstBatch))

		order, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	mt.Run("delete undelivered reports deleted count", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		deleted, err := repo.DeleteUndelivered(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	mt.Run("create sets generated id", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		order := &models.Order{PlantID: primitive.NewObjectID().Hex(), Quantity: 1, Status: models.OrderStatusPending}
		id, err := repo.Create(context.Background(), order)
		require.NoError(t, err)
		assert.False(t, id.IsZero())
		assert.Equal(t, id, order.ID)
	})
}
