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

func TestUserRepository_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plantNet.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "fern@plantnet.dev"},
			{Key: "role", Value: "customer"},
			{Key: "timestamp", Value: int64(1700000000000)},
		}))

		user, err := repo.FindByEmail(context.Background(), "fern@plantnet.dev")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "customer", user.Role)
		assert.Equal(t, int64(1700000000000), user.Timestamp)
	})

	mt.Run("find by email returns nil when missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plantNet.users", mtest.FirstBatch))

		user, err := repo.FindByEmail(context.Background(), "nobody@plantnet.dev")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Email: "new@plantnet.dev", Role: models.DefaultUserRole}
		id, err := repo.Create(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})
}
