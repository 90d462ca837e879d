package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muskan-waterpark/booking/internal/app"
	"github.com/muskan-waterpark/booking/internal/handler"
	"github.com/muskan-waterpark/booking/web"
)

// New builds the gin engine with the embedded page templates and all routes.
func New(application *app.App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	bookingHandler := handler.NewBookingHandler(application)
	adminHandler := handler.NewAdminHandler(application)
	healthHandler := handler.NewHealthHandler(application)

	r.GET("/", bookingHandler.HandleIndex)
	r.POST("/bookings", bookingHandler.HandleSubmit)

	r.GET("/admin", adminHandler.HandleLoginPage)
	r.POST("/admin/login", adminHandler.HandleLogin)
	r.GET("/admin/bookings", adminHandler.HandleListing)

	r.GET("/healthz", healthHandler.Handle)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.Redirect(http.StatusSeeOther, "/")
	})

	return r
}
