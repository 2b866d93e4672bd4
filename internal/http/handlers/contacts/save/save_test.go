package save_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contacts/internal/database"
	"contacts/internal/http/handlers/contacts/save"
	"contacts/internal/http/handlers/contacts/save/mocks"
	"contacts/internal/http/middleware/auth"
	"contacts/internal/lib/logger/sl/sldiscard"
)

const validBody = `{"first_name":"Ann","last_name":"Lee","email":"ann@example.com",` +
	`"phone":"+100200300","birthday":"1990-06-15","additional_data":"met at work"}`

func TestSaveHandler(t *testing.T) {
	owner := database.User{ID: 1, Email: "user@example.com", IsActive: true}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	expected := database.Contact{
		OwnerID:        1,
		FirstName:      "Ann",
		LastName:       "Lee",
		Email:          "ann@example.com",
		Phone:          "+100200300",
		Birthday:       time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		AdditionalData: "met at work",
	}

	saved := expected
	saved.ID = 10
	saved.CreatedAt = now
	saved.UpdatedAt = now

	cases := []struct {
		name      string
		body      string
		save      bool
		saveErr   error
		code      int
		respError string
	}{
		{
			name: "Success",
			body: validBody,
			save: true,
			code: http.StatusCreated,
		},
		{
			name:      "Duplicate email",
			body:      validBody,
			save:      true,
			saveErr:   database.ErrContactExists,
			code:      http.StatusBadRequest,
			respError: "Contact with this email already exists",
		},
		{
			name:      "Database error",
			body:      validBody,
			save:      true,
			saveErr:   errors.New("connection refused"),
			code:      http.StatusInternalServerError,
			respError: "Failed to save contact",
		},
		{
			name:      "Bad birthday",
			body:      strings.Replace(validBody, "1990-06-15", "15.06.1990", 1),
			code:      http.StatusBadRequest,
			respError: "field Birthday must be a date in 2006-01-02 format",
		},
		{
			name:      "Bad email",
			body:      strings.Replace(validBody, "ann@example.com", "ann", 1),
			code:      http.StatusBadRequest,
			respError: "field Email is not a valid email",
		},
		{
			name:      "Missing first name",
			body:      strings.Replace(validBody, `"first_name":"Ann",`, "", 1),
			code:      http.StatusBadRequest,
			respError: "field FirstName is a required field",
		},
		{
			name:      "Empty body",
			code:      http.StatusBadRequest,
			respError: "Empty request",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contacts := mocks.NewContactSaver(t)

			if tc.save {
				returned := saved
				if tc.saveErr != nil {
					returned = database.Contact{}
				}
				contacts.On("SaveContact", mock.Anything, expected).Return(returned, tc.saveErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts", strings.NewReader(tc.body))
			req = req.WithContext(auth.WithUser(req.Context(), owner))
			rr := httptest.NewRecorder()

			save.New(sldiscard.NewDiscardLogger(), contacts).ServeHTTP(rr, req)

			require.Equal(t, tc.code, rr.Code)

			var resp save.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tc.respError, resp.Error)

			if tc.code == http.StatusCreated {
				require.NotNil(t, resp.Contact)
				require.Equal(t, int64(10), resp.Contact.ID)
				require.Equal(t, "1990-06-15", resp.Contact.Birthday)
				require.NotNil(t, resp.Contact.AdditionalData)
				require.Equal(t, "met at work", *resp.Contact.AdditionalData)
			}
		})
	}
}
