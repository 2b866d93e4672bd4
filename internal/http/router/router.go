// Package router assembles the HTTP API.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"contacts/internal/database"
	"contacts/internal/http/handlers/auth/avatar"
	"contacts/internal/http/handlers/auth/login"
	"contacts/internal/http/handlers/auth/me"
	"contacts/internal/http/handlers/auth/refresh"
	"contacts/internal/http/handlers/auth/register"
	"contacts/internal/http/handlers/auth/reset"
	"contacts/internal/http/handlers/auth/verify"
	"contacts/internal/http/handlers/contacts/birthdays"
	"contacts/internal/http/handlers/contacts/get"
	"contacts/internal/http/handlers/contacts/list"
	"contacts/internal/http/handlers/contacts/remove"
	"contacts/internal/http/handlers/contacts/save"
	"contacts/internal/http/handlers/contacts/update"
	"contacts/internal/http/middleware/auth"
	"contacts/internal/http/middleware/ratelimit"
	"contacts/internal/lib/tokens"
)

const WelcomeMessage = "Welcome to Contact API"

type Users interface {
	SaveUser(ctx context.Context, email, passwordHash string) (database.User, error)
	UserByEmail(ctx context.Context, email string) (database.User, error)
	VerifyUser(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateAvatar(ctx context.Context, email, avatarURL string) error
}

type Contacts interface {
	SaveContact(ctx context.Context, contact database.Contact) (database.Contact, error)
	Contact(ctx context.Context, ownerID, id int64) (database.Contact, error)
	Contacts(ctx context.Context, ownerID int64, filter database.ContactFilter) ([]database.Contact, error)
	ContactsByOwner(ctx context.Context, ownerID int64) ([]database.Contact, error)
	UpdateContact(ctx context.Context, contact database.Contact) (database.Contact, error)
	DeleteContact(ctx context.Context, ownerID, id int64) error
}

type Mailer interface {
	SendVerification(to, link string) error
	SendPasswordReset(to, link string) error
}

type Deps struct {
	Users    Users
	Contacts Contacts
	Tokens   *tokens.Service
	Mailer   Mailer
	Avatars  avatar.Uploader
	Limiter  ratelimit.Limiter

	// BaseURL prefixes the links sent by mail.
	BaseURL       string
	MaxUploadSize int64

	// CORSOrigins defaults to any origin. Credentials are allowed only for
	// an explicit list.
	CORSOrigins []string
	// TrustProxy takes the client address from forwarded headers.
	TrustProxy bool

	// Now is the clock of the birthday listing. Defaults to time.Now.
	Now func() time.Time
}

// New routes every endpoint. middleware.URLFormat must stay off: it cuts
// verification tokens at their first dot.
func New(log *slog.Logger, deps Deps) http.Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()

	if deps.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: !slices.Contains(origins, "*"),
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"message": WelcomeMessage})
	})

	authenticated := auth.New(log, deps.Users, deps.Tokens)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(ratelimit.New(log, deps.Limiter))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", register.New(log, deps.Users, deps.Tokens, deps.Mailer, deps.BaseURL))
			r.Post("/login", login.New(log, deps.Users, deps.Tokens))
			r.Post("/refresh", refresh.New(log, deps.Users, deps.Tokens))
			r.Get("/verify-email/{token}", verify.New(log, deps.Users, deps.Tokens))
			r.Post("/request-password-reset", reset.NewRequest(log, deps.Users, deps.Tokens, deps.Mailer, deps.BaseURL))
			r.Post("/reset-password", reset.NewConfirm(log, deps.Users, deps.Tokens))

			r.With(authenticated).Get("/me", me.New(log))
			r.With(authenticated, auth.Admin(log)).
				Post("/avatar", avatar.New(log, deps.Users, deps.Avatars, deps.MaxUploadSize))
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Use(authenticated)

			r.Post("/", save.New(log, deps.Contacts))
			r.Get("/", list.New(log, deps.Contacts))
			r.Get("/birthdays/upcoming", birthdays.New(log, deps.Contacts, deps.Now))
			r.Get("/{id}", get.New(log, deps.Contacts))
			r.Put("/{id}", update.New(log, deps.Contacts))
			r.Delete("/{id}", remove.New(log, deps.Contacts))
		})
	})

	return router
}
