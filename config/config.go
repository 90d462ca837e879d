package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muskan-waterpark/booking/internal/util"
)

const (
	defaultAddr       = ":8080"
	defaultDBFile     = "booking_db.sqlite"
	defaultPrice      = 299
	defaultSessionTTL = 30 * time.Minute
)

type Config struct {
	Addr        string
	DBFile      string
	PayeeID     string
	TicketPrice int

	// AdminCredentialHash is a bcrypt hash; the plain secret is never kept around.
	AdminCredentialHash string
	SessionSecret       string
	SessionTTL          time.Duration
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:          getEnv("ADDR", defaultAddr),
		DBFile:        getEnv("BOOKING_DB_FILE", defaultDBFile),
		PayeeID:       os.Getenv("UPI_PAYEE_ID"),
		TicketPrice:   defaultPrice,
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    defaultSessionTTL,
	}

	if v := os.Getenv("TICKET_PRICE"); v != "" {
		price, err := strconv.Atoi(v)
		if err != nil || price < 1 {
			return nil, errors.New("config: TICKET_PRICE must be a positive integer")
		}
		cfg.TicketPrice = price
	}

	if v := os.Getenv("SESSION_TTL_MIN"); v != "" {
		mins, err := strconv.Atoi(v)
		if err != nil || mins < 1 {
			return nil, errors.New("config: SESSION_TTL_MIN must be a positive integer")
		}
		cfg.SessionTTL = time.Duration(mins) * time.Minute
	}

	hash, err := adminCredentialHash()
	if err != nil {
		return nil, err
	}
	cfg.AdminCredentialHash = hash

	if cfg.PayeeID == "" {
		return nil, errors.New("config: UPI_PAYEE_ID is required")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("config: SESSION_SECRET is required")
	}

	return cfg, nil
}

// DSN returns the sqlite connection string. The busy timeout makes concurrent
// sessions wait on the file lock instead of failing with SQLITE_BUSY.
func (c *Config) DSN() string {
	return c.DBFile + "?_busy_timeout=5000"
}

// adminCredentialHash prefers a pre-computed bcrypt hash; a plain
// ADMIN_PASSWORD is accepted for dev setups and hashed at startup.
func adminCredentialHash() (string, error) {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return hash, nil
	}
	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		return "", errors.New("config: ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
