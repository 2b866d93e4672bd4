package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/database"
	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

type Response struct {
	resp.Response
	Contacts []resp.Contact `json:"contacts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=ContactLister
type ContactLister interface {
	Contacts(ctx context.Context, ownerID int64, filter database.ContactFilter) ([]database.Contact, error)
}

// New lists the contacts of the current user. Query parameters: skip, limit
// (at most MaxLimit) and search.
func New(log *slog.Logger, contacts ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contacts.list.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			log.Error("User is missing from context")
			auth.Unauthorized(w, r, "Not authenticated")
			return
		}

		query := r.URL.Query()

		skip, err := intParam(query.Get("skip"), 0)
		if err != nil || skip < 0 {
			log.Info("Invalid skip", slog.String("skip", query.Get("skip")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("skip must be a non-negative integer"))
			return
		}

		limit, err := intParam(query.Get("limit"), DefaultLimit)
		if err != nil || limit < 1 || limit > MaxLimit {
			log.Info("Invalid limit", slog.String("limit", query.Get("limit")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("limit must be an integer between 1 and 100"))
			return
		}

		found, err := contacts.Contacts(r.Context(), user.ID, database.ContactFilter{
			Search: query.Get("search"),
			Skip:   skip,
			Limit:  limit,
		})
		if err != nil {
			log.Error("Failed to list contacts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to get contacts"))
			return
		}

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Contacts: resp.NewContacts(found),
		})
	}
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	return strconv.Atoi(raw)
}
