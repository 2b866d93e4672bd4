package save

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"contacts/internal/database"
	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
)

type Request struct {
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,email,max=100"`
	Phone          string `json:"phone" validate:"required,max=20"`
	Birthday       string `json:"birthday" validate:"required,datetime=2006-01-02"`
	AdditionalData string `json:"additional_data,omitempty" validate:"max=500"`
}

type Response struct {
	resp.Response
	Contact *resp.Contact `json:"contact,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=ContactSaver
type ContactSaver interface {
	SaveContact(ctx context.Context, contact database.Contact) (database.Contact, error)
}

func New(log *slog.Logger, contacts ContactSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contacts.save.New"

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

		// Already checked by the datetime rule.
		birthday, _ := time.Parse(resp.DateLayout, req.Birthday)

		contact, err := contacts.SaveContact(r.Context(), database.Contact{
			OwnerID:        user.ID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			Birthday:       birthday,
			AdditionalData: req.AdditionalData,
		})
		if errors.Is(err, database.ErrContactExists) {
			log.Info("Contact already exists", slog.String("email", req.Email))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Contact with this email already exists"))
			return
		}

		if err != nil {
			log.Error("Failed to save contact", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to save contact"))
			return
		}

		log.Info("Contact saved", slog.Int64("contact_id", contact.ID))

		view := resp.NewContact(contact)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: resp.OK(),
			Contact:  &view,
		})
	}
}
