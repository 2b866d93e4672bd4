package birthdays

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/database"
	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/birthdays"
	"contacts/internal/lib/logger/sl"
)

type Upcoming struct {
	resp.Contact
	NextBirthday string `json:"next_birthday"`
	DaysUntil    int    `json:"days_until"`
}

type Response struct {
	resp.Response
	Days     int        `json:"days,omitempty"`
	Contacts []Upcoming `json:"contacts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=ContactsProvider
type ContactsProvider interface {
	ContactsByOwner(ctx context.Context, ownerID int64) ([]database.Contact, error)
}

// New lists contacts whose birthday falls within the next "days" days
// (default birthdays.DefaultWindow), today included. now supplies the
// reference date.
func New(log *slog.Logger, contacts ContactsProvider, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contacts.birthdays.New"

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

		days := birthdays.DefaultWindow
		if raw := r.URL.Query().Get("days"); raw != "" {
			var err error
			days, err = strconv.Atoi(raw)
			if err != nil {
				log.Info("Invalid days", slog.String("days", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error("days must be an integer"))
				return
			}
		}

		owned, err := contacts.ContactsByOwner(r.Context(), user.ID)
		if err != nil {
			log.Error("Failed to get contacts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to get contacts"))
			return
		}

		byID := make(map[int64]database.Contact, len(owned))
		entries := make([]birthdays.Entry, 0, len(owned))

		for _, c := range owned {
			byID[c.ID] = c
			entries = append(entries, birthdays.Entry{ID: c.ID, Month: c.Birthday.Month(), Day: c.Birthday.Day()})
		}

		today := now()

		matched, err := birthdays.Upcoming(entries, today, days)
		if errors.Is(err, birthdays.ErrInvalidWindow) {
			log.Info("Negative window", slog.Int("days", days))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("days must not be negative"))
			return
		}

		if err != nil {
			log.Error("Failed to match birthdays", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to get upcoming birthdays"))
			return
		}

		upcoming := make([]Upcoming, 0, len(matched))
		for _, e := range matched {
			upcoming = append(upcoming, Upcoming{
				Contact:      resp.NewContact(byID[e.ID]),
				NextBirthday: birthdays.Occurrence(e.Month, e.Day, today).Format(resp.DateLayout),
				DaysUntil:    birthdays.DaysUntil(e.Month, e.Day, today),
			})
		}

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Days:     days,
			Contacts: upcoming,
		})
	}
}
