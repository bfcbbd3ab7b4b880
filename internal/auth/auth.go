package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims are carried in owner access tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// Service logs the site owner in and verifies the bearer tokens it issues.
type Service struct {
	secret       []byte
	passwordHash string
	ttl          time.Duration
	now          func() time.Time
}

// NewService builds the admin gate from an HMAC secret and a bcrypt password hash.
func NewService(secret, passwordHash string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("admin jwt secret is required")
	}
	if passwordHash == "" {
		return nil, errors.New("admin password hash is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{secret: []byte(secret), passwordHash: passwordHash, ttl: ttl, now: time.Now}, nil
}

// Login checks password against the configured hash and returns a signed access token.
func (s *Service) Login(password string) (string, error) {
	if !CheckPasswordHash(password, s.passwordHash) {
		return "", ErrInvalidCredentials
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses an access token and checks signature, expiry and subject.
func (s *Service) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithSubject(adminSubject),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword generates a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CheckPasswordHash reports whether password matches hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
