package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var bookingColumns = []string{
	"id", "name", "phone", "email", "age", "date", "package_name", "participants",
	"add_ons", "trip_title", "language", "total_price", "status", "created_at", "updated_at",
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(`INSERT INTO "bookings"`).WillReturnResult(sqlmock.NewResult(0, 1))

	booking := &Booking{Name: "Sara", Participants: 2, AddOns: []string{"Camel Ride"}}
	require.NoError(t, repo.Create(context.Background(), booking))

	_, err := uuid.Parse(booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(bookingColumns).
		AddRow(uuid.NewString(), "New", "1", "n@example.com", "", "2025-05-01", "Private Tour", 2, []byte(`["VIP Experience"]`), "AlUla Heritage Tour", "en", 500.0, "pending", now, nil).
		AddRow(uuid.NewString(), "Old", "2", "o@example.com", "40", "2025-04-01", "Group Package", 5, []byte(`[]`), "Riyadh Night Tour", "ar", 3500.0, "confirmed", now.Add(-time.Hour), now)

	mock.ExpectQuery(`SELECT \* FROM "bookings" ORDER BY created_at DESC`).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "New", list[0].Name)
	assert.Equal(t, []string{"VIP Experience"}, []string(list[0].AddOns))
	assert.Equal(t, StatusConfirmed, list[1].Status)
	assert.NotNil(t, list[1].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	id := uuid.NewString()

	mock.ExpectExec(`UPDATE "bookings" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bookings" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	matched, err := repo.UpdateStatus(context.Background(), id, StatusConfirmed)
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = repo.UpdateStatus(context.Background(), uuid.NewString(), StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, matched)

	matched, err = repo.UpdateStatus(context.Background(), "garbage", StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM "bookings" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "bookings" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
