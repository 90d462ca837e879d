package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muskan-waterpark/booking/internal/app"
)

type HealthHandler struct {
	app *app.App
}

func NewHealthHandler(app *app.App) *HealthHandler {
	return &HealthHandler{
		app: app,
	}
}

func (h *HealthHandler) Handle(ctx *gin.Context) {
	sqlDB, err := h.app.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
