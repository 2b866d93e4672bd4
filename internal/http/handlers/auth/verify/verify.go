package verify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/database"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
	"contacts/internal/lib/tokens"
)

type Response struct {
	resp.Response
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=UserVerifier
type UserVerifier interface {
	VerifyUser(ctx context.Context, email string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string, expected tokens.Class, now time.Time) (tokens.Claims, error)
}

func New(log *slog.Logger, users UserVerifier, verifier TokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.verify.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		claims, err := verifier.Verify(chi.URLParam(r, "token"), tokens.ClassVerification, time.Now())
		if errors.Is(err, tokens.ErrExpired) {
			log.Info("Verification token has expired")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Verification token has expired"))
			return
		}

		if err != nil {
			log.Info("Invalid verification token", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid verification token"))
			return
		}

		err = users.VerifyUser(r.Context(), claims.Subject)
		if errors.Is(err, database.ErrUserNotFound) {
			log.Info("User not found", slog.String("email", claims.Subject))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Error("User not found"))
			return
		}

		if err != nil {
			log.Error("Failed to verify user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to verify user"))
			return
		}

		log.Info("Email verified")

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Message:  "Email verified successfully",
		})
	}
}
