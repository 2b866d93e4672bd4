// Package reset implements the two steps of a password reset: mailing a
// signed link and setting the new password from it.
package reset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"contacts/internal/database"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
	"contacts/internal/lib/passwords"
	"contacts/internal/lib/tokens"
)

const requestedMessage = "If the email is registered, a password reset link has been sent"

type RequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmBody struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type Response struct {
	resp.Response
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=UserProvider
type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (database.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=PasswordUpdater
type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=TokenService
type TokenService interface {
	Issue(subject string, class tokens.Class, now time.Time) (string, error)
	Verify(token string, expected tokens.Class, now time.Time) (tokens.Claims, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=ResetSender
type ResetSender interface {
	SendPasswordReset(to, link string) error
}

// NewRequest mails a reset link. The answer is the same whether or not the
// email belongs to a user.
func NewRequest(log *slog.Logger, users UserProvider, tokenService TokenService, mailer ResetSender, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.reset.NewRequest"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req RequestBody
		if !decode(log, w, r, &req) {
			return
		}

		user, err := users.UserByEmail(r.Context(), req.Email)
		if errors.Is(err, database.ErrUserNotFound) {
			log.Info("Password reset for unknown email")
			responseOK(w, r, requestedMessage)
			return
		}

		if err != nil {
			log.Error("Failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to get user"))
			return
		}

		token, err := tokenService.Issue(user.Email, tokens.ClassReset, time.Now())
		if err != nil {
			log.Error("Failed to issue reset token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to generate reset token"))
			return
		}

		link := strings.TrimRight(baseURL, "/") + "/reset-password?token=" + url.QueryEscape(token)

		if err := mailer.SendPasswordReset(user.Email, link); err != nil {
			log.Error("Failed to send password reset email", sl.Err(err))
		}

		responseOK(w, r, requestedMessage)
	}
}

func NewConfirm(log *slog.Logger, users PasswordUpdater, tokenService TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.reset.NewConfirm"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req ConfirmBody
		if !decode(log, w, r, &req) {
			return
		}

		claims, err := tokenService.Verify(req.Token, tokens.ClassReset, time.Now())
		if err != nil {
			log.Info("Invalid reset token", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid or expired reset token"))
			return
		}

		hash, err := passwords.Hash(req.NewPassword)
		if err != nil {
			log.Error("Failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to reset password"))
			return
		}

		err = users.UpdatePassword(r.Context(), claims.Subject, hash)
		if errors.Is(err, database.ErrUserNotFound) {
			log.Info("User not found", slog.String("email", claims.Subject))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("User not found"))
			return
		}

		if err != nil {
			log.Error("Failed to update password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to reset password"))
			return
		}

		log.Info("Password reset")

		responseOK(w, r, "Password has been reset successfully")
	}
}

func decode(log *slog.Logger, w http.ResponseWriter, r *http.Request, req any) bool {
	err := render.DecodeJSON(r.Body, req)
	if errors.Is(err, io.EOF) {
		log.Error("Request body is empty")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("Empty request"))
		return false
	}

	if err != nil {
		log.Error("Failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("Failed to decode request"))
		return false
	}

	if err := validator.New().Struct(req); err != nil {
		log.Info("Invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.ValidationError(err))
		return false
	}

	return true
}

func responseOK(w http.ResponseWriter, r *http.Request, msg string) {
	render.JSON(w, r, Response{
		Response: resp.OK(),
		Message:  msg,
	})
}
