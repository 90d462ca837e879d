package repository

import (
	"context"

	"github.com/muskan-waterpark/booking/internal/model"
	"gorm.io/gorm"
)

type BookingRepo interface {
	WithTx(tx *gorm.DB) BookingRepo
	Migrate() error
	Create(ctx context.Context, booking *model.Booking) error
	ListAll(ctx context.Context) ([]model.Booking, error)
	CountByStatus(ctx context.Context, status model.BookingStatus) (int64, error)
}

type bookingRepoGorm struct {
	db *gorm.DB
}

var _ BookingRepo = (*bookingRepoGorm)(nil)

func NewBookingRepoGorm(db *gorm.DB) *bookingRepoGorm {
	return &bookingRepoGorm{
		db: db,
	}
}

func (r *bookingRepoGorm) WithTx(tx *gorm.DB) BookingRepo {
	return &bookingRepoGorm{
		db: tx,
	}
}

// Migrate ensures the bookings table exists. Safe to call any number of
// times; existing rows are untouched.
func (r *bookingRepoGorm) Migrate() error {
	return r.db.AutoMigrate(&model.Booking{})
}

func (r *bookingRepoGorm) Create(ctx context.Context, booking *model.Booking) error {
	if err := gorm.G[model.Booking](r.db).Create(ctx, booking); err != nil {
		return err
	}
	return nil
}

// ListAll returns every booking, newest first. created_at is the sort key;
// id breaks ties because sqlite timestamps have second resolution.
func (r *bookingRepoGorm) ListAll(ctx context.Context) ([]model.Booking, error) {
	bookings, err := gorm.G[model.Booking](r.db).
		Order("created_at DESC, id DESC").
		Find(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) CountByStatus(ctx context.Context, status model.BookingStatus) (int64, error) {
	count, err := gorm.G[model.Booking](r.db).
		Where(&model.Booking{Status: status}).
		Count(ctx, "*")
	if err != nil {
		return 0, err
	}
	return count, nil
}
