// Package auth authenticates requests carrying a bearer access token and
// exposes the resolved user to the handlers behind it.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/database"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
	"contacts/internal/lib/tokens"
)

var (
	ErrNoToken     = errors.New("authorization header is missing")
	ErrBadScheme   = errors.New("authorization scheme is not bearer")
	ErrUnknownUser = errors.New("token subject is not a user")
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=UserProvider
type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (database.User, error)
}

type TokenVerifier interface {
	Verify(token string, expected tokens.Class, now time.Time) (tokens.Claims, error)
}

// New resolves the user of an access token. Every failure ends the request
// with 401 and a message naming the cause, except inactive users which get 400.
func New(log *slog.Logger, users UserProvider, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.auth.New"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token, err := BearerToken(r)
			if err != nil {
				log.Info("Request is not authenticated", sl.Err(err))
				Unauthorized(w, r, Message(err))
				return
			}

			claims, err := verifier.Verify(token, tokens.ClassAccess, time.Now())
			if err != nil {
				log.Info("Failed to verify access token", sl.Err(err))
				Unauthorized(w, r, Message(err))
				return
			}

			user, err := users.UserByEmail(r.Context(), claims.Subject)
			if errors.Is(err, database.ErrUserNotFound) {
				log.Info("Token subject not found", slog.String("subject", claims.Subject))
				Unauthorized(w, r, Message(ErrUnknownUser))
				return
			}

			if err != nil {
				log.Error("Failed to get user", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, resp.Error("Failed to get user"))
				return
			}

			if !user.IsActive {
				log.Info("User is inactive", slog.Int64("user_id", user.ID))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error("Inactive user"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

// Admin lets through only users with the admin role. It must run after New.
func Admin(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user.Role != database.RoleAdmin {
				log.Info("Operation not permitted", slog.String("op", "middleware.auth.Admin"),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, resp.Error("Operation not permitted"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrBadScheme
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoToken
	}

	return token, nil
}

// Message is the client facing text for an authentication error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNoToken):
		return "Not authenticated"
	case errors.Is(err, ErrBadScheme):
		return "Invalid authorization header"
	case errors.Is(err, tokens.ErrExpired):
		return "Token has expired"
	case errors.Is(err, tokens.ErrInvalidSignature):
		return "Invalid token signature"
	case errors.Is(err, tokens.ErrMalformed):
		return "Malformed token"
	case errors.Is(err, tokens.ErrWrongClass):
		return "Invalid token type"
	case errors.Is(err, ErrUnknownUser):
		return "User not found"
	default:
		return "Could not validate credentials"
	}
}

func Unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, resp.Error(msg))
}

func WithUser(ctx context.Context, user database.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

func UserFromContext(ctx context.Context) (database.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(database.User)
	return user, ok
}
