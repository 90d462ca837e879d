package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("UPI_PAYEE_ID", "9813589884@ybl")
	t.Setenv("SESSION_SECRET", "test-session-secret")
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADDR", "")
	t.Setenv("BOOKING_DB_FILE", "")
	t.Setenv("TICKET_PRICE", "")
	t.Setenv("SESSION_TTL_MIN", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "booking_db.sqlite", cfg.DBFile)
	assert.Equal(t, 299, cfg.TicketPrice)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "9813589884@ybl", cfg.PayeeID)
}

func TestLoadConfigHashesPlainPassword(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.NotEqual(t, "admin123", cfg.AdminCredentialHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cfg.AdminCredentialHash), []byte("admin123")))
}

func TestLoadConfigPrefersHash(t *testing.T) {
	setRequiredEnv(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, string(hash), cfg.AdminCredentialHash)
}

func TestLoadConfigRequiredValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UPI_PAYEE_ID", "")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "UPI_PAYEE_ID")

	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "SESSION_SECRET")

	setRequiredEnv(t)
	t.Setenv("ADMIN_PASSWORD", "")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "ADMIN_PASSWORD")
}

func TestLoadConfigRejectsBadPrice(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TICKET_PRICE", "free")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "TICKET_PRICE")

	t.Setenv("TICKET_PRICE", "0")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "TICKET_PRICE")
}

func TestDSNCarriesBusyTimeout(t *testing.T) {
	cfg := &Config{DBFile: "booking_db.sqlite"}
	assert.Equal(t, "booking_db.sqlite?_busy_timeout=5000", cfg.DSN())
}
