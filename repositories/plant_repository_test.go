package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestQuantityFilter(t *testing.T) {
	id := primitive.NewObjectID()

	assert.Equal(t, bson.M{"_id": id}, QuantityFilter(id, 5))
	assert.Equal(t, bson.M{"_id": id, "quantity": bson.M{"$gte": 5}}, QuantityFilter(id, -5))
}

func TestPlantRepository_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list decodes plants", func(mt *mtest.T) {
		repo := NewPlantRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plantNet.plants", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Fern"}, {Key: "quantity", Value: 3}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Cactus"}, {Key: "quantity", Value: 0}},
		))

		plants, err := repo.List(context.Background(), 20)
		require.NoError(t, err)
		require.Len(t, plants, 2)
		assert.Equal(t, "Fern", plants[0].Name)
		assert.Equal(t, 3, plants[0].Quantity)
	})

	mt.Run("find by id returns nil when missing", func(mt *mtest.T) {
		repo := NewPlantRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plantNet.plants", mtest.FirstBatch))

		plant, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, plant)
	})

	mt.Run("adjust quantity reports matched count", func(mt *mtest.T) {
		repo := NewPlantRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.AdjustQuantity(context.Background(), primitive.NewObjectID(), -2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)
	})

	mt.Run("adjust quantity surfaces command errors", func(mt *mtest.T) {
		repo := NewPlantRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "cannot apply $inc to a value of non-numeric type",
		}))

		_, err := repo.AdjustQuantity(context.Background(), primitive.NewObjectID(), 1)
		assert.Error(t, err)
	})
}
