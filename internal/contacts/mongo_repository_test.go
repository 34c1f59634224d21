package contacts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"tourly/internal/catalog"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c := &Contact{Name: "Noura", Email: "noura@example.com", Message: "مرحبا", Language: catalog.LanguageAR}
		require.NoError(mt, repo.Create(context.Background(), c))

		_, err := primitive.ObjectIDFromHex(c.ID)
		assert.NoError(mt, err)
		assert.Equal(mt, StatusNew, c.Status)
		assert.False(mt, c.CreatedAt.IsZero())
	})

	mt.Run("list newest first", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		newer, older := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bson.D{
					{Key: "_id", Value: newer},
					{Key: "name", Value: "James"},
					{Key: "email", Value: "james@example.com"},
					{Key: "message", Value: "Airport pickup?"},
					{Key: "language", Value: "en"},
					{Key: "status", Value: "new"},
					{Key: "createdAt", Value: now.Add(time.Hour)},
				},
				bson.D{
					{Key: "_id", Value: older},
					{Key: "name", Value: "Reem"},
					{Key: "email", Value: "reem@example.com"},
					{Key: "message", Value: "هل تتوفر جولات خاصة؟"},
					{Key: "language", Value: "ar"},
					{Key: "status", Value: "responded"},
					{Key: "createdAt", Value: now},
				},
			),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		list, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, newer.Hex(), list[0].ID)
		assert.Equal(mt, catalog.LanguageAR, list[1].Language)
		assert.Equal(mt, StatusResponded, list[1].Status)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		sort := started.Command.Lookup("sort").Document()
		assert.Equal(mt, int64(-1), sort.Lookup("createdAt").AsInt64())
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		deleted, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, deleted)

		deleted, err = repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.False(mt, deleted)

		deleted, err = repo.Delete(context.Background(), "c-1")
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})
}
