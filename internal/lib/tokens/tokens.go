// Package tokens issues and verifies signed, expiring JWTs that carry a
// subject and a token class. Verification is stateless: nothing about issued
// tokens is stored, so a rotated refresh token stays usable until it expires.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"contacts/internal/config"
)

type Class string

const (
	ClassAccess       Class = "access"
	ClassRefresh      Class = "refresh"
	ClassVerification Class = "verification"
	ClassReset        Class = "reset"
)

const TokenType = "bearer"

var (
	ErrSigning          = errors.New("token signing failed")
	ErrExpired          = errors.New("token is expired")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrMalformed        = errors.New("token is malformed")
	ErrWrongClass       = errors.New("token class mismatch")
	ErrUnknownAlgorithm = errors.New("unsupported signing algorithm")
	ErrInvalidTTL       = errors.New("token ttl must be at least one second")
)

// Claims is the identity carried by a token.
type Claims struct {
	ID        string
	Subject   string
	Class     Class
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Pair is returned by login and refresh.
type Pair struct {
	Subject      string
	AccessToken  string
	RefreshToken string
}

type payload struct {
	jwt.RegisteredClaims
	Class Class `json:"class"`
}

type Service struct {
	secret []byte
	method jwt.SigningMethod
	ttl    map[Class]time.Duration
}

func New(cfg config.JWT) (*Service, error) {
	const op = "lib.tokens.New"

	var method jwt.SigningMethod
	switch cfg.Algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownAlgorithm, cfg.Algorithm)
	}

	ttl := map[Class]time.Duration{
		ClassAccess:       cfg.AccessExpires,
		ClassRefresh:      cfg.RefreshExpires,
		ClassVerification: cfg.VerificationExpires,
		ClassReset:        cfg.ResetExpires,
	}
	for class, d := range ttl {
		if d < time.Second {
			return nil, fmt.Errorf("%s: %w: %s", op, ErrInvalidTTL, class)
		}
	}

	return &Service{
		secret: []byte(cfg.SecretKey),
		method: method,
		ttl:    ttl,
	}, nil
}

// TTL reports how long tokens of class stay valid.
func (s *Service) TTL(class Class) time.Duration {
	return s.ttl[class]
}

// Issue signs a token of class for subject. now is truncated to the second,
// the precision of JWT timestamps, so the returned token's expiry is exactly
// now+TTL.
func (s *Service) Issue(subject string, class Class, now time.Time) (string, error) {
	const op = "lib.tokens.Issue"

	if len(s.secret) == 0 {
		return "", fmt.Errorf("%s: %w: empty secret", op, ErrSigning)
	}

	ttl, ok := s.ttl[class]
	if !ok {
		return "", fmt.Errorf("%s: %w: unknown class %q", op, ErrSigning, class)
	}

	issuedAt := now.Truncate(time.Second)

	token := jwt.NewWithClaims(s.method, payload{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		Class: class,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, ErrSigning, err)
	}

	return signed, nil
}

// IssuePair signs a fresh access and refresh token for subject.
func (s *Service) IssuePair(subject string, now time.Time) (Pair, error) {
	access, err := s.Issue(subject, ClassAccess, now)
	if err != nil {
		return Pair{}, err
	}

	refresh, err := s.Issue(subject, ClassRefresh, now)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Subject: subject, AccessToken: access, RefreshToken: refresh}, nil
}

// Verify checks signature, algorithm, class and expiry, in that order. A
// token is valid up to and including its expiry second.
func (s *Service) Verify(token string, expected Class, now time.Time) (Claims, error) {
	const op = "lib.tokens.Verify"

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var p payload
	_, err := parser.ParseWithClaims(token, &p, func(t *jwt.Token) (interface{}, error) {
		if len(s.secret) == 0 {
			return nil, errors.New("empty secret")
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, fmt.Errorf("%s: %w: %v", op, ErrMalformed, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, fmt.Errorf("%s: %w: %v", op, ErrInvalidSignature, err)
		default:
			return Claims{}, fmt.Errorf("%s: %w: %v", op, ErrMalformed, err)
		}
	}

	if p.Subject == "" || p.Class == "" || p.ExpiresAt == nil || p.IssuedAt == nil {
		return Claims{}, fmt.Errorf("%s: %w: missing required claims", op, ErrMalformed)
	}

	if p.Class != expected {
		return Claims{}, fmt.Errorf("%s: %w: got %q, want %q", op, ErrWrongClass, p.Class, expected)
	}

	if now.After(p.ExpiresAt.Time) {
		return Claims{}, fmt.Errorf("%s: %w", op, ErrExpired)
	}

	return Claims{
		ID:        p.ID,
		Subject:   p.Subject,
		Class:     p.Class,
		IssuedAt:  p.IssuedAt.Time,
		ExpiresAt: p.ExpiresAt.Time,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair. The presented token
// is not invalidated.
func (s *Service) Refresh(refreshToken string, now time.Time) (Pair, error) {
	claims, err := s.Verify(refreshToken, ClassRefresh, now)
	if err != nil {
		return Pair{}, err
	}

	return s.IssuePair(claims.Subject, now)
}
