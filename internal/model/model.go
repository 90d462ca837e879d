package model

import (
	"time"
)

// Booking is one visitor's ticket purchase intent. Rows are append-only:
// nothing in the system updates or deletes a booking once written.
type Booking struct {
	ID          uint          `gorm:"primaryKey"`
	Name        string        `gorm:"not null"`
	PhoneNumber string        `gorm:"not null"`
	Date        string        `gorm:"column:date;not null"` // visit date, ISO 8601 (YYYY-MM-DD)
	Tickets     int           `gorm:"not null"`
	Amount      float64       `gorm:"not null"`
	Status      BookingStatus `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// BookingStatus is an open enumeration. Only "pending" is written today;
// later states ("paid", "confirmed") can be added without a schema change.
type BookingStatus string

const (
	StatusPending BookingStatus = "pending"
)
