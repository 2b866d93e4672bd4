package register

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
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

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type Response struct {
	resp.Response
	User *resp.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=UserSaver
type UserSaver interface {
	SaveUser(ctx context.Context, email, passwordHash string) (database.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=TokenIssuer
type TokenIssuer interface {
	Issue(subject string, class tokens.Class, now time.Time) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=VerificationSender
type VerificationSender interface {
	SendVerification(to, link string) error
}

// New creates the user and mails a verification link. A failed mail does not
// fail the registration.
func New(log *slog.Logger, users UserSaver, issuer TokenIssuer, mailer VerificationSender, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Error("Request body is empty")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Empty request"))
			return
		}

		if err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			log.Info("Invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError(err))
			return
		}

		hash, err := passwords.Hash(req.Password)
		if err != nil {
			log.Error("Failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to register user"))
			return
		}

		user, err := users.SaveUser(r.Context(), req.Email, hash)
		if errors.Is(err, database.ErrUserExists) {
			log.Info("User already exists", slog.String("email", req.Email))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, resp.Error("Email already registered"))
			return
		}

		if err != nil {
			log.Error("Failed to save user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to register user"))
			return
		}

		log.Info("User registered", slog.Int64("user_id", user.ID))

		sendVerification(log, issuer, mailer, baseURL, user.Email)

		view := resp.NewUser(user)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: resp.OK(),
			User:     &view,
		})
	}
}

func sendVerification(log *slog.Logger, issuer TokenIssuer, mailer VerificationSender, baseURL, email string) {
	token, err := issuer.Issue(email, tokens.ClassVerification, time.Now())
	if err != nil {
		log.Error("Failed to issue verification token", sl.Err(err))
		return
	}

	link := strings.TrimRight(baseURL, "/") + "/api/v1/auth/verify-email/" + token

	if err := mailer.SendVerification(email, link); err != nil {
		log.Warn("Failed to send verification email", sl.Err(err))
		return
	}

	log.Info("Verification email sent")
}
