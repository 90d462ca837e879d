package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muskan-waterpark/booking/internal/app"
	"github.com/muskan-waterpark/booking/internal/service/domain"
)

const phoneFormatWarning = "⚠️ Please enter a valid 10-digit phone number."

type BookingHandler struct {
	app *app.App
}

func NewBookingHandler(app *app.App) *BookingHandler {
	return &BookingHandler{
		app: app,
	}
}

// bookingPage is the view model for the single booking page. The same
// template renders the blank form, validation warnings, and the
// post-submission amount + QR block.
type bookingPage struct {
	MinDate string
	Name    string
	Phone   string
	Date    string
	Tickets int

	Warning      string
	PhoneWarning string
	Error        string

	Amount    string
	QRDataURI string
	PayeeID   string
	Success   string
}

func (h *BookingHandler) HandleIndex(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", bookingPage{
		MinDate: time.Now().Format(domain.DateFormat),
		Tickets: 1,
	})
}

func (h *BookingHandler) HandleSubmit(ctx *gin.Context) {
	name := ctx.PostForm("name")
	phone := ctx.PostForm("phone_number")
	visitDate := ctx.PostForm("date")
	tickets, convErr := strconv.Atoi(ctx.PostForm("tickets"))
	if convErr != nil {
		tickets = 0 // rejected by validation below
	}

	page := bookingPage{
		MinDate: time.Now().Format(domain.DateFormat),
		Name:    name,
		Phone:   phone,
		Date:    visitDate,
		Tickets: tickets,
	}

	result, err := h.app.BookingWorkflow.Submit(ctx.Request.Context(), name, phone, visitDate, tickets)
	if err != nil && result == nil {
		switch {
		case errors.Is(err, domain.ErrMissingContact):
			page.Warning = "⚠️ Please enter both name and phone number."
		case errors.Is(err, domain.ErrTicketCount):
			page.Warning = "⚠️ Please enter at least 1 ticket."
		case errors.Is(err, domain.ErrVisitDate):
			page.Warning = "⚠️ Please choose a visit date of today or later."
		default:
			page.Error = fmt.Sprintf("❌ Error processing booking: %v", err)
			ctx.HTML(http.StatusInternalServerError, "index.html", page)
			return
		}
		ctx.HTML(http.StatusBadRequest, "index.html", page)
		return
	}

	page.Amount = fmt.Sprintf("₹%d", result.Amount)
	page.QRDataURI = result.QRDataURI
	page.PayeeID = result.PayeeID
	if result.PhoneWarning {
		page.PhoneWarning = phoneFormatWarning
	}

	// The QR stays visible even when the insert failed; the visitor can
	// still pay and resubmit.
	if err != nil {
		page.Error = fmt.Sprintf("❌ Error saving booking: %v", err)
		ctx.HTML(http.StatusInternalServerError, "index.html", page)
		return
	}

	page.Success = fmt.Sprintf("📝 Booking saved as pending! Hi %s, please pick up your ticket at the counter after completing the payment using the QR.", name)
	ctx.HTML(http.StatusOK, "index.html", page)
}
