package remove

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
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=ContactRemover
type ContactRemover interface {
	DeleteContact(ctx context.Context, ownerID, id int64) error
}

func New(log *slog.Logger, contacts ContactRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contacts.remove.New"

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

		err = contacts.DeleteContact(r.Context(), user.ID, id)
		if errors.Is(err, database.ErrContactNotFound) {
			log.Info("Contact not found", slog.Int64("contact_id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Error("Contact not found"))
			return
		}

		if err != nil {
			log.Error("Failed to delete contact", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to delete contact"))
			return
		}

		log.Info("Contact deleted", slog.Int64("contact_id", id))

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Message:  "Contact deleted successfully",
		})
	}
}
