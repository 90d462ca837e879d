package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrMissingContact rejects a submission with an empty name or phone.
	ErrMissingContact = errors.New("booking: name and phone number are required")
	// ErrTicketCount rejects a ticket count below one.
	ErrTicketCount = errors.New("booking: ticket count must be at least 1")
	// ErrVisitDate rejects a missing, unparsable, or past visit date.
	ErrVisitDate = errors.New("booking: visit date must be today or later")
)

const DateFormat = "2006-01-02"

type BookingService interface {
	ValidateSubmission(name, phone string, tickets int, visitDate string) error
	ValidPhone(phone string) bool
	Amount(tickets int) int
}

type bookingService struct {
	unitPrice int
	now       func() time.Time
}

var _ BookingService = (*bookingService)(nil)

func NewBookingService(unitPrice int) *bookingService {
	return &bookingService{
		unitPrice: unitPrice,
		now:       time.Now,
	}
}

// ValidateSubmission gates a booking before any side effect runs. Phone
// format is deliberately not checked here: a malformed phone number only
// produces an advisory warning (see ValidPhone), it does not block the
// booking.
func (s *bookingService) ValidateSubmission(name, phone string, tickets int, visitDate string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return ErrMissingContact
	}
	if tickets < 1 {
		return ErrTicketCount
	}
	d, err := time.Parse(DateFormat, visitDate)
	if err != nil {
		return ErrVisitDate
	}
	today := s.today()
	if d.Before(today) {
		return ErrVisitDate
	}
	return nil
}

// ValidPhone reports whether phone is exactly 10 decimal digits.
func (s *bookingService) ValidPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Amount is tickets times the unit price, exact integer arithmetic.
func (s *bookingService) Amount(tickets int) int {
	return tickets * s.unitPrice
}

func (s *bookingService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
