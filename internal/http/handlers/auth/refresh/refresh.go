package refresh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/database"
	"contacts/internal/http/handlers/auth/login"
	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
	"contacts/internal/lib/tokens"
)

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=UserProvider
type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (database.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=TokenRefresher
type TokenRefresher interface {
	Refresh(refreshToken string, now time.Time) (tokens.Pair, error)
}

// New exchanges the bearer refresh token for a new pair. The presented token
// stays valid until it expires.
func New(log *slog.Logger, users UserProvider, refresher TokenRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.refresh.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		refreshToken, err := auth.BearerToken(r)
		if err != nil {
			log.Info("Refresh token is missing", sl.Err(err))
			auth.Unauthorized(w, r, auth.Message(err))
			return
		}

		pair, err := refresher.Refresh(refreshToken, time.Now())
		if err != nil {
			log.Info("Failed to refresh tokens", sl.Err(err))
			auth.Unauthorized(w, r, auth.Message(err))
			return
		}

		user, err := users.UserByEmail(r.Context(), pair.Subject)
		if errors.Is(err, database.ErrUserNotFound) {
			log.Info("Token subject not found", slog.String("subject", pair.Subject))
			auth.Unauthorized(w, r, auth.Message(auth.ErrUnknownUser))
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

		login.ResponseOK(w, r, pair)
	}
}
