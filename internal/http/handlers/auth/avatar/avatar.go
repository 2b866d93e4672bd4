package avatar

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"contacts/internal/http/middleware/auth"
	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
	"contacts/internal/storage"
)

const (
	sniffLen     = 512
	formOverhead = 64 << 10
)

var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

type Response struct {
	resp.Response
	User *resp.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=AvatarUpdater
type AvatarUpdater interface {
	UpdateAvatar(ctx context.Context, email, avatarURL string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=Uploader
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// New stores the multipart "file" field as the avatar of the current user.
// Only images up to maxSize bytes are accepted.
func New(log *slog.Logger, users AvatarUpdater, uploader Uploader, maxSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.avatar.New"

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

		r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

		if err := r.ParseMultipartForm(maxSize); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Info("Avatar is too large")
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, resp.Error("File is too large"))
				return
			}

			log.Info("Failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Failed to parse form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Info("File field is missing", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("File is required"))
			return
		}
		defer file.Close()

		if header.Size > maxSize {
			log.Info("Avatar is too large", slog.Int64("size", header.Size))
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, resp.Error("File is too large"))
			return
		}

		head := make([]byte, sniffLen)
		n, err := io.ReadFull(file, head)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			log.Error("Failed to read file", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Failed to read file"))
			return
		}

		contentType := http.DetectContentType(head[:n])
		if base, _, _ := strings.Cut(contentType, ";"); !allowedTypes[base] {
			log.Info("Avatar is not an image", slog.String("content_type", contentType))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("File must be an image"))
			return
		}

		if _, err := file.Seek(0, io.SeekStart); err != nil {
			log.Error("Failed to rewind file", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to upload avatar"))
			return
		}

		url, err := uploader.Upload(r.Context(), storage.AvatarKey(user.ID), contentType, file, header.Size)
		if err != nil {
			log.Error("Failed to upload avatar", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to upload avatar"))
			return
		}

		if err := users.UpdateAvatar(r.Context(), user.Email, url); err != nil {
			log.Error("Failed to save avatar", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to save avatar"))
			return
		}

		log.Info("Avatar updated", slog.Int64("user_id", user.ID))

		user.Avatar = url
		view := resp.NewUser(user)

		render.JSON(w, r, Response{
			Response: resp.OK(),
			User:     &view,
		})
	}
}
