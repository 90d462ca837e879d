package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muskan-waterpark/booking/config"
	"github.com/muskan-waterpark/booking/internal/repository"
	"github.com/muskan-waterpark/booking/internal/service/domain"
	"github.com/muskan-waterpark/booking/internal/service/workflow"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Logger *zap.Logger

	BookingRepo repository.BookingRepo

	BookingService domain.BookingService
	PaymentService domain.PaymentService
	AdminService   domain.AdminService

	BookingWorkflow *workflow.BookingWorkflow
}

func New(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *App {
	bookingRepo := repository.NewBookingRepoGorm(db)

	bookingService := domain.NewBookingService(cfg.TicketPrice)
	paymentService := domain.NewPaymentService(cfg.PayeeID)
	adminService := domain.NewAdminService(cfg.AdminCredentialHash, cfg.SessionSecret, cfg.SessionTTL)

	bookingWorkflow := workflow.NewBookingWorkflow(bookingService, paymentService, bookingRepo, logger)

	return &App{
		Config:          cfg,
		DB:              db,
		Logger:          logger,
		BookingRepo:     bookingRepo,
		BookingService:  bookingService,
		PaymentService:  paymentService,
		AdminService:    adminService,
		BookingWorkflow: bookingWorkflow,
	}
}

// Init ensures the bookings table exists in the backing file.
func (app *App) Init() error {
	return app.BookingRepo.Migrate()
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
