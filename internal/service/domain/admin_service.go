package domain

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidSession rejects a missing, malformed, or expired session token.
var ErrInvalidSession = errors.New("admin: invalid session")

type AdminService interface {
	Authenticate(password string) bool
	NewSessionToken() (token string, expiresAt time.Time, err error)
	VerifySessionToken(token string) error
}

type adminService struct {
	credentialHash string
	sessionSecret  string
	sessionTTL     time.Duration
}

var _ AdminService = (*adminService)(nil)

func NewAdminService(credentialHash, sessionSecret string, sessionTTL time.Duration) *adminService {
	return &adminService{
		credentialHash: credentialHash,
		sessionSecret:  sessionSecret,
		sessionTTL:     sessionTTL,
	}
}

// Authenticate compares the submitted password against the configured bcrypt
// hash. bcrypt's comparison is constant-time; nothing about the credential
// leaks beyond accept/reject.
func (s *adminService) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.credentialHash), []byte(password)) == nil
}

// NewSessionToken mints a short-lived HS256 token so the password travels
// once per session instead of once per page view.
func (s *adminService) NewSessionToken() (string, time.Time, error) {
	exp := time.Now().UTC().Add(s.sessionTTL)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.sessionSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *adminService) VerifySessionToken(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidSession
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return ErrInvalidSession
	}
	return nil
}
