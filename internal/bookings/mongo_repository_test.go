package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func bookingDoc(id primitive.ObjectID, name string, status Status, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "tripTitle", Value: "AlUla Heritage Tour"},
		{Key: "participants", Value: 2},
		{Key: "addOns", Value: bson.A{"Photography Session"}},
		{Key: "language", Value: "en"},
		{Key: "totalPrice", Value: 500.0},
		{Key: "status", Value: string(status)},
		{Key: "createdAt", Value: createdAt},
	}
}

func TestMongoRepositoryCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns an object id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &Booking{Name: "Sara", TripTitle: "AlUla Heritage Tour", Participants: 2}
		require.NoError(mt, repo.Create(context.Background(), b))

		_, err := primitive.ObjectIDFromHex(b.ID)
		assert.NoError(mt, err)
		assert.Equal(mt, StatusPending, b.Status)
		assert.False(mt, b.CreatedAt.IsZero())
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		b := &Booking{Name: "Sara"}
		assert.Error(mt, repo.Create(context.Background(), b))
		assert.Empty(mt, b.ID)
	})
}

func TestMongoRepositoryList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("newest first", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		newer, older := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bookingDoc(newer, "Lina", StatusConfirmed, now.Add(time.Hour)),
				bookingDoc(older, "Omar", StatusPending, now),
			),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		list, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, newer.Hex(), list[0].ID)
		assert.Equal(mt, StatusConfirmed, list[0].Status)
		assert.Equal(mt, []string{"Photography Session"}, []string(list[0].AddOns))
		assert.Equal(mt, older.Hex(), list[1].ID)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		sort := started.Command.Lookup("sort").Document()
		assert.Equal(mt, int64(-1), sort.Lookup("createdAt").AsInt64())
	})
}

func TestMongoRepositoryGetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bookingDoc(id, "Sara", StatusPending, time.Now().UTC()),
		))

		b, err := repo.GetByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), b.ID)
		assert.Equal(mt, "Sara", b.Name)
	})

	mt.Run("no documents", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrBookingNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)

		_, err := repo.GetByID(context.Background(), "not-an-object-id")
		assert.ErrorIs(mt, err, ErrBookingNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestMongoRepositoryUpdateStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		matched, err := repo.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), StatusConfirmed)
		require.NoError(mt, err)
		assert.True(mt, matched)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		matched, err := repo.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), StatusConfirmed)
		require.NoError(mt, err)
		assert.False(mt, matched)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)

		matched, err := repo.UpdateStatus(context.Background(), "b-1", StatusConfirmed)
		require.NoError(mt, err)
		assert.False(mt, matched)
	})
}

func TestMongoRepositoryDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		deleted, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, deleted)
	})

	mt.Run("unknown id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		deleted, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)

		deleted, err := repo.Delete(context.Background(), "b-1")
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})

	mt.Run("server error", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad delete filter",
			Name:    "BadValue",
		}))

		_, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.Error(mt, err)
	})
}
