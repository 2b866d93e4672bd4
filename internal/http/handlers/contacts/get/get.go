package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/database"
	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
)

type Response struct {
	resp.Response
	Contact *resp.Contact `json:"contact,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=ContactProvider
type ContactProvider interface {
	Contact(ctx context.Context, ownerID, id int64) (database.Contact, error)
}

func New(log *slog.Logger, contacts ContactProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contacts.get.New"

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

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Info("Failed to parse contact id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid contact ID"))
			return
		}

		contact, err := contacts.Contact(r.Context(), user.ID, id)
		if errors.Is(err, database.ErrContactNotFound) {
			log.Info("Contact not found", slog.Int64("contact_id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Error("Contact not found"))
			return
		}

		if err != nil {
			log.Error("Failed to get contact", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to get contact"))
			return
		}

		view := resp.NewContact(contact)

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Contact:  &view,
		})
	}
}
