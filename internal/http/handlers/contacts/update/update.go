package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"contacts/internal/database"
	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
)

// Request holds the fields to change. Absent fields keep their value.
type Request struct {
	FirstName      *string `json:"first_name" validate:"omitnil,min=1,max=50"`
	LastName       *string `json:"last_name" validate:"omitnil,min=1,max=50"`
	Email          *string `json:"email" validate:"omitnil,email,max=100"`
	Phone          *string `json:"phone" validate:"omitnil,min=1,max=20"`
	Birthday       *string `json:"birthday" validate:"omitnil,datetime=2006-01-02"`
	AdditionalData *string `json:"additional_data" validate:"omitnil,max=500"`
}

type Response struct {
	resp.Response
	Contact *resp.Contact `json:"contact,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=ContactUpdater
type ContactUpdater interface {
	Contact(ctx context.Context, ownerID, id int64) (database.Contact, error)
	UpdateContact(ctx context.Context, contact database.Contact) (database.Contact, error)
}

func New(log *slog.Logger, contacts ContactUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contacts.update.New"

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

		var req Request

		err = render.DecodeJSON(r.Body, &req)
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

		apply(&contact, req)

		contact, err = contacts.UpdateContact(r.Context(), contact)
		if errors.Is(err, database.ErrContactNotFound) {
			log.Info("Contact disappeared", slog.Int64("contact_id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Error("Contact not found"))
			return
		}

		if errors.Is(err, database.ErrContactExists) {
			log.Info("Contact email already used")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Contact with this email already exists"))
			return
		}

		if err != nil {
			log.Error("Failed to update contact", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to update contact"))
			return
		}

		log.Info("Contact updated", slog.Int64("contact_id", id))

		view := resp.NewContact(contact)

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Contact:  &view,
		})
	}
}

func apply(c *database.Contact, req Request) {
	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Birthday != nil {
		// Already checked by the datetime rule.
		c.Birthday, _ = time.Parse(resp.DateLayout, *req.Birthday)
	}
	if req.AdditionalData != nil {
		c.AdditionalData = *req.AdditionalData
	}
}
