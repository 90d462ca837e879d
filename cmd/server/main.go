package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/muskan-waterpark/booking/config"
	"github.com/muskan-waterpark/booking/internal/app"
	"github.com/muskan-waterpark/booking/internal/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to open booking database", zap.String("file", cfg.DBFile), zap.Error(err))
	}

	application := app.New(cfg, db, logger)
	defer application.Close()

	if err := application.Init(); err != nil {
		logger.Fatal("failed to migrate booking database", zap.Error(err))
	}

	r := router.New(application)

	logger.Info("waterpark booking server listening",
		zap.String("addr", cfg.Addr),
		zap.String("db", cfg.DBFile),
	)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
