package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/muskan-waterpark/booking/internal/model"
)

func newTestRepo(t *testing.T) *bookingRepoGorm {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "booking_db.sqlite")
	db, err := gorm.Open(sqlite.Open(dbFile+"?_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	repo := NewBookingRepoGorm(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func testBooking(name string, tickets int) *model.Booking {
	return &model.Booking{
		Name:        name,
		PhoneNumber: "9876543210",
		Date:        "2026-09-15",
		Tickets:     tickets,
		Amount:      float64(tickets * 299),
		Status:      model.StatusPending,
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testBooking("Asha Rao", 3)))

	// Re-running the migration must not drop or alter existing rows.
	require.NoError(t, repo.Migrate())
	require.NoError(t, repo.Migrate())

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Asha Rao", bookings[0].Name)
	assert.Equal(t, 3, bookings[0].Tickets)
	assert.Equal(t, 897.0, bookings[0].Amount)
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := testBooking("First", 1)
	second := testBooking("Second", 2)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, second.CreatedAt.IsZero())
}

func TestListAllNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b1 := testBooking("B1", 1)
	b2 := testBooking("B2", 2)
	require.NoError(t, repo.Create(ctx, b1))
	require.NoError(t, repo.Create(ctx, b2))

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "B2", bookings[0].Name)
	assert.Equal(t, "B1", bookings[1].Name)
}

func TestListAllEmptyTable(t *testing.T) {
	repo := newTestRepo(t)

	bookings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCountByStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testBooking("A", 1)))
	require.NoError(t, repo.Create(ctx, testBooking("B", 2)))

	pending, err := repo.CountByStatus(ctx, model.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	paid, err := repo.CountByStatus(ctx, model.BookingStatus("paid"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), paid)
}
