package login

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"contacts/internal/database"
	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
	"contacts/internal/lib/passwords"
	"contacts/internal/lib/tokens"
)

// Request accepts the JSON body. Form posts use the username and password
// fields instead.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	resp.Response
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=UserProvider
type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (database.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=PairIssuer
type PairIssuer interface {
	IssuePair(subject string, now time.Time) (tokens.Pair, error)
}

func New(log *slog.Logger, users UserProvider, issuer PairIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		req, err := decode(r)
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

		user, err := users.UserByEmail(r.Context(), req.Email)
		if err != nil && !errors.Is(err, database.ErrUserNotFound) {
			log.Error("Failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to get user"))
			return
		}

		if err != nil || !passwords.Compare(user.PasswordHash, req.Password) {
			log.Info("Invalid credentials", slog.String("email", req.Email))
			auth.Unauthorized(w, r, "Incorrect email or password")
			return
		}

		pair, err := issuer.IssuePair(user.Email, time.Now())
		if err != nil {
			log.Error("Failed to issue tokens", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to generate tokens"))
			return
		}

		log.Info("User logged in", slog.Int64("user_id", user.ID))

		ResponseOK(w, r, pair)
	}
}

// ResponseOK renders a token pair.
func ResponseOK(w http.ResponseWriter, r *http.Request, pair tokens.Pair) {
	render.JSON(w, r, Response{
		Response:     resp.OK(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    tokens.TokenType,
	})
}

func decode(r *http.Request) (Request, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return Request{}, err
		}

		return Request{
			Email:    r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	}

	var req Request
	err := render.DecodeJSON(r.Body, &req)

	return req, err
}
