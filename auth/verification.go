package auth

import (
	"context"
	"fmt"
	"ink-functions/errors"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer            = "ink-functions"
	purposeVerifyMail = "verifyEmail"
)

// VerificationClaims defines the structure of the data stored inside the oobCode.
type VerificationClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// VerificationLinker mints email verification links signed with HS256.
// It satisfies contract.LinkGenerator.
type VerificationLinker struct {
	baseURL *url.URL
	key     []byte
	ttl     time.Duration
	now     func() time.Time
}

type Option func(*VerificationLinker)

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *VerificationLinker) { l.now = now }
}

func NewVerificationLinker(baseURL, signingKey string, ttl time.Duration, opts ...Option) (*VerificationLinker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("verification base url must be absolute, got %q", baseURL)
	}
	if signingKey == "" {
		return nil, fmt.Errorf("verification signing key is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("verification ttl must be positive, got %s", ttl)
	}

	l := &VerificationLinker{baseURL: u, key: []byte(signingKey), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// EmailVerificationLink returns baseURL?mode=verifyEmail&oobCode=<token> for the address.
func (l *VerificationLinker) EmailVerificationLink(_ context.Context, email string) (string, error) {
	if email == "" {
		return "", &errors.ValidationError{Field: "email", Reason: "is required"}
	}
	now := l.now()
	claims := &VerificationClaims{
		Email:   email,
		Purpose: purposeVerifyMail,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(l.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(l.key)
	if err != nil {
		return "", fmt.Errorf("signing verification token: %w", err)
	}

	link := *l.baseURL
	q := link.Query()
	q.Set("mode", purposeVerifyMail)
	q.Set("oobCode", token)
	link.RawQuery = q.Encode()
	return link.String(), nil
}

// Verify parses and validates an oobCode and returns the address it was minted for.
func (l *VerificationLinker) Verify(oobCode string) (string, error) {
	token, err := jwt.ParseWithClaims(oobCode, &VerificationClaims{},
		func(*jwt.Token) (interface{}, error) { return l.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(l.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*VerificationClaims)
	if !ok || !token.Valid || claims.Purpose != purposeVerifyMail || claims.Email == "" {
		return "", errors.ErrInvalidToken
	}
	return claims.Email, nil
}
