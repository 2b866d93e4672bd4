package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
)

type Response struct {
	resp.Response
	User *resp.User `json:"user,omitempty"`
}

// New returns the user resolved by the auth middleware.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			log.Error("User is missing from context", slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())))
			auth.Unauthorized(w, r, "Not authenticated")
			return
		}

		view := resp.NewUser(user)

		render.JSON(w, r, Response{
			Response: resp.OK(),
			User:     &view,
		})
	}
}
