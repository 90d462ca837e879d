package workflow

import (
	"context"

	"go.uber.org/zap"

	"github.com/muskan-waterpark/booking/internal/model"
	"github.com/muskan-waterpark/booking/internal/repository"
	"github.com/muskan-waterpark/booking/internal/service/domain"
)

// SubmissionResult is everything the page needs to show after a submission.
// The QR fields are populated before the insert runs, so they are usable
// even when persistence fails.
type SubmissionResult struct {
	Booking      *model.Booking
	Amount       int
	PaymentURI   string
	QRDataURI    string
	PayeeID      string
	PhoneWarning bool
}

type BookingWorkflow struct {
	bookingService domain.BookingService
	paymentService domain.PaymentService
	repo           repository.BookingRepo
	logger         *zap.Logger
}

func NewBookingWorkflow(
	bookingService domain.BookingService,
	paymentService domain.PaymentService,
	repo repository.BookingRepo,
	logger *zap.Logger,
) *BookingWorkflow {
	return &BookingWorkflow{
		bookingService: bookingService,
		paymentService: paymentService,
		repo:           repo,
		logger:         logger,
	}
}

// Submit runs one booking end to end: validate, price, build the payment QR,
// persist as pending. One synchronous pass, no retries, no rollback; a
// persistence failure returns the result alongside the error so the QR can
// still be shown.
func (w *BookingWorkflow) Submit(ctx context.Context, name, phone, visitDate string, tickets int) (*SubmissionResult, error) {
	if err := w.bookingService.ValidateSubmission(name, phone, tickets, visitDate); err != nil {
		return nil, err
	}

	amount := w.bookingService.Amount(tickets)
	uri := w.paymentService.PaymentURI(name, amount)
	png, err := w.paymentService.QRPNG(uri)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{
		Amount:       amount,
		PaymentURI:   uri,
		QRDataURI:    w.paymentService.DataURI(png),
		PayeeID:      w.paymentService.PayeeID(),
		PhoneWarning: !w.bookingService.ValidPhone(phone),
	}

	booking := &model.Booking{
		Name:        name,
		PhoneNumber: phone,
		Date:        visitDate,
		Tickets:     tickets,
		Amount:      float64(amount),
		Status:      model.StatusPending,
	}
	if err := w.repo.Create(ctx, booking); err != nil {
		w.logger.Error("failed to save booking",
			zap.String("name", name),
			zap.Error(err),
		)
		return result, err
	}
	result.Booking = booking

	w.logger.Info("booking saved as pending",
		zap.Uint("id", booking.ID),
		zap.String("date", visitDate),
		zap.Int("tickets", tickets),
		zap.Int("amount", amount),
	)

	return result, nil
}
