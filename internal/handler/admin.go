package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muskan-waterpark/booking/internal/app"
	"github.com/muskan-waterpark/booking/internal/model"
)

const sessionCookie = "admin_session"

type AdminHandler struct {
	app *app.App
}

func NewAdminHandler(app *app.App) *AdminHandler {
	return &AdminHandler{
		app: app,
	}
}

type adminLoginPage struct {
	Error string
}

type adminBookingsPage struct {
	Bookings     []model.Booking
	PendingCount int64
	Error        string
}

func (h *AdminHandler) HandleLoginPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "admin_login.html", adminLoginPage{})
}

// HandleLogin checks the admin password and, on success, starts a session so
// the password is sent once instead of with every listing view.
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	password := ctx.PostForm("password")

	if !h.app.AdminService.Authenticate(password) {
		h.app.Logger.Warn("admin login rejected")
		ctx.HTML(http.StatusUnauthorized, "admin_login.html", adminLoginPage{
			Error: "❌ Wrong password",
		})
		return
	}

	token, expiresAt, err := h.app.AdminService.NewSessionToken()
	if err != nil {
		ctx.HTML(http.StatusInternalServerError, "admin_login.html", adminLoginPage{
			Error: "❌ Could not start a session, please try again",
		})
		return
	}

	ctx.SetCookie(sessionCookie, token, int(time.Until(expiresAt).Seconds()), "/", "", false, true)
	h.app.Logger.Info("admin login accepted")
	ctx.Redirect(http.StatusSeeOther, "/admin/bookings")
}

// HandleListing renders the full booking table for an authenticated session.
func (h *AdminHandler) HandleListing(ctx *gin.Context) {
	token, err := ctx.Cookie(sessionCookie)
	if err != nil || h.app.AdminService.VerifySessionToken(token) != nil {
		ctx.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	bookings, err := h.app.BookingRepo.ListAll(ctx.Request.Context())
	if err != nil {
		ctx.HTML(http.StatusInternalServerError, "admin_bookings.html", adminBookingsPage{
			Error: fmt.Sprintf("❌ Error fetching bookings: %v", err),
		})
		return
	}

	pending, err := h.app.BookingRepo.CountByStatus(ctx.Request.Context(), model.StatusPending)
	if err != nil {
		ctx.HTML(http.StatusInternalServerError, "admin_bookings.html", adminBookingsPage{
			Error: fmt.Sprintf("❌ Error fetching bookings: %v", err),
		})
		return
	}

	ctx.HTML(http.StatusOK, "admin_bookings.html", adminBookingsPage{
		Bookings:     bookings,
		PendingCount: pending,
	})
}
