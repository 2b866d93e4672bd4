package list_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contacts/internal/database"
	"contacts/internal/http/handlers/contacts/list"
	"contacts/internal/http/handlers/contacts/list/mocks"
	"contacts/internal/http/middleware/auth"
	"contacts/internal/lib/logger/sl/sldiscard"
)

func TestListHandler(t *testing.T) {
	owner := database.User{ID: 1, IsActive: true}
	found := []database.Contact{
		{ID: 10, OwnerID: 1, FirstName: "Ann", Birthday: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 11, OwnerID: 1, FirstName: "Joanna", Birthday: time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	cases := []struct {
		name      string
		query     string
		filter    *database.ContactFilter
		result    []database.Contact
		listErr   error
		code      int
		respError string
		count     int
	}{
		{
			name:   "Defaults",
			filter: &database.ContactFilter{Limit: 100},
			result: found,
			code:   http.StatusOK,
			count:  2,
		},
		{
			name:   "Search and pagination",
			query:  "?skip=5&limit=10&search=ann",
			filter: &database.ContactFilter{Search: "ann", Skip: 5, Limit: 10},
			result: found[:1],
			code:   http.StatusOK,
			count:  1,
		},
		{
			name:   "Nothing found",
			query:  "?search=zed",
			filter: &database.ContactFilter{Search: "zed", Limit: 100},
			result: []database.Contact{},
			code:   http.StatusOK,
		},
		{
			name:      "Limit over maximum",
			query:     "?limit=101",
			code:      http.StatusBadRequest,
			respError: "limit must be an integer between 1 and 100",
		},
		{
			name:      "Zero limit",
			query:     "?limit=0",
			code:      http.StatusBadRequest,
			respError: "limit must be an integer between 1 and 100",
		},
		{
			name:      "Negative skip",
			query:     "?skip=-1",
			code:      http.StatusBadRequest,
			respError: "skip must be a non-negative integer",
		},
		{
			name:      "Non numeric skip",
			query:     "?skip=abc",
			code:      http.StatusBadRequest,
			respError: "skip must be a non-negative integer",
		},
		{
			name:      "Database error",
			filter:    &database.ContactFilter{Limit: 100},
			listErr:   errors.New("connection refused"),
			code:      http.StatusInternalServerError,
			respError: "Failed to get contacts",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contacts := mocks.NewContactLister(t)

			if tc.filter != nil {
				contacts.On("Contacts", mock.Anything, int64(1), *tc.filter).Return(tc.result, tc.listErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/contacts"+tc.query, nil)
			req = req.WithContext(auth.WithUser(req.Context(), owner))
			rr := httptest.NewRecorder()

			list.New(sldiscard.NewDiscardLogger(), contacts).ServeHTTP(rr, req)

			require.Equal(t, tc.code, rr.Code)

			var resp list.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tc.respError, resp.Error)

			if tc.code == http.StatusOK {
				require.Len(t, resp.Contacts, tc.count)
				require.Contains(t, rr.Body.String(), `"contacts":[`)
			}
		})
	}
}
