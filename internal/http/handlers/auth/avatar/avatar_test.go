package avatar_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contacts/internal/database"
	"contacts/internal/http/handlers/auth/avatar"
	"contacts/internal/http/handlers/auth/avatar/mocks"
	"contacts/internal/http/middleware/auth"
	"contacts/internal/lib/logger/sl/sldiscard"
)

const (
	maxSize   = 1024
	avatarURL = "https://cdn.example.com/avatars/3/x"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func png(size int) []byte {
	return append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, size-len(pngHeader))...)
}

func multipartBody(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(field, "avatar.png")
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestAvatarHandler(t *testing.T) {
	admin := database.User{ID: 3, Email: "admin@example.com", IsActive: true, Role: database.RoleAdmin}

	cases := []struct {
		name      string
		field     string
		content   []byte
		rawBody   string
		upload    bool
		uploadErr error
		update    bool
		updateErr error
		code      int
		respError string
	}{
		{
			name:    "Success",
			field:   "file",
			content: png(600),
			upload:  true,
			update:  true,
			code:    http.StatusOK,
		},
		{
			name:      "Not an image",
			field:     "file",
			content:   []byte("just some text"),
			code:      http.StatusBadRequest,
			respError: "File must be an image",
		},
		{
			name:      "Wrong field",
			field:     "picture",
			content:   png(100),
			code:      http.StatusBadRequest,
			respError: "File is required",
		},
		{
			name:      "Not multipart",
			rawBody:   `{"file":"x"}`,
			code:      http.StatusBadRequest,
			respError: "Failed to parse form",
		},
		{
			name:      "Too large",
			field:     "file",
			content:   png(maxSize + 1),
			code:      http.StatusRequestEntityTooLarge,
			respError: "File is too large",
		},
		{
			name:      "Storage failure",
			field:     "file",
			content:   png(600),
			upload:    true,
			uploadErr: errors.New("bucket not found"),
			code:      http.StatusInternalServerError,
			respError: "Failed to upload avatar",
		},
		{
			name:      "Database failure",
			field:     "file",
			content:   png(600),
			upload:    true,
			update:    true,
			updateErr: errors.New("connection refused"),
			code:      http.StatusInternalServerError,
			respError: "Failed to save avatar",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewAvatarUpdater(t)
			uploader := mocks.NewUploader(t)

			if tc.upload {
				url := avatarURL
				if tc.uploadErr != nil {
					url = ""
				}
				uploader.On("Upload", mock.Anything,
					mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "avatars/3/") }),
					"image/png", mock.Anything, int64(len(tc.content))).
					Return(url, tc.uploadErr).Once()
			}

			if tc.update {
				users.On("UpdateAvatar", mock.Anything, "admin@example.com", avatarURL).Return(tc.updateErr).Once()
			}

			var req *http.Request
			if tc.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/avatar", strings.NewReader(tc.rawBody))
				req.Header.Set("Content-Type", "application/json")
			} else {
				body, contentType := multipartBody(t, tc.field, tc.content)
				req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/avatar", body)
				req.Header.Set("Content-Type", contentType)
			}
			req = req.WithContext(auth.WithUser(req.Context(), admin))
			rr := httptest.NewRecorder()

			avatar.New(sldiscard.NewDiscardLogger(), users, uploader, maxSize).ServeHTTP(rr, req)

			require.Equal(t, tc.code, rr.Code)

			var resp avatar.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tc.respError, resp.Error)

			if tc.code == http.StatusOK {
				require.NotNil(t, resp.User)
				require.NotNil(t, resp.User.Avatar)
				require.Equal(t, avatarURL, *resp.User.Avatar)
			}
		})
	}
}
