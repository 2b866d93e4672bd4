package refresh_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contacts/internal/config"
	"contacts/internal/database"
	"contacts/internal/http/handlers/auth/login"
	"contacts/internal/http/handlers/auth/refresh"
	"contacts/internal/http/handlers/auth/refresh/mocks"
	"contacts/internal/lib/logger/sl/sldiscard"
	"contacts/internal/lib/tokens"
)

var jwtCfg = config.JWT{
	SecretKey:           "secretkey",
	Algorithm:           "HS256",
	AccessExpires:       30 * time.Minute,
	RefreshExpires:      7 * 24 * time.Hour,
	VerificationExpires: 24 * time.Hour,
	ResetExpires:        time.Hour,
}

func TestRefreshHandler(t *testing.T) {
	pair := tokens.Pair{Subject: "user@example.com", AccessToken: "new-access", RefreshToken: "new-refresh"}
	active := database.User{ID: 1, Email: "user@example.com", IsActive: true}

	cases := []struct {
		name       string
		header     string
		refresh    bool
		refreshErr error
		lookup     bool
		user       database.User
		userErr    error
		code       int
		respError  string
	}{
		{
			name:    "Success",
			header:  "Bearer old-refresh",
			refresh: true,
			lookup:  true,
			user:    active,
			code:    http.StatusOK,
		},
		{
			name:      "No token",
			code:      http.StatusUnauthorized,
			respError: "Not authenticated",
		},
		{
			name:       "Expired",
			header:     "Bearer old-refresh",
			refresh:    true,
			refreshErr: fmt.Errorf("lib.tokens.Verify: %w", tokens.ErrExpired),
			code:       http.StatusUnauthorized,
			respError:  "Token has expired",
		},
		{
			name:       "Access token presented",
			header:     "Bearer old-refresh",
			refresh:    true,
			refreshErr: fmt.Errorf("lib.tokens.Verify: %w", tokens.ErrWrongClass),
			code:       http.StatusUnauthorized,
			respError:  "Invalid token type",
		},
		{
			name:       "Bad signature",
			header:     "Bearer old-refresh",
			refresh:    true,
			refreshErr: fmt.Errorf("lib.tokens.Verify: %w", tokens.ErrInvalidSignature),
			code:       http.StatusUnauthorized,
			respError:  "Invalid token signature",
		},
		{
			name:      "Unknown user",
			header:    "Bearer old-refresh",
			refresh:   true,
			lookup:    true,
			userErr:   database.ErrUserNotFound,
			code:      http.StatusUnauthorized,
			respError: "User not found",
		},
		{
			name:      "Database error",
			header:    "Bearer old-refresh",
			refresh:   true,
			lookup:    true,
			userErr:   errors.New("connection refused"),
			code:      http.StatusInternalServerError,
			respError: "Failed to get user",
		},
		{
			name:      "Inactive user",
			header:    "Bearer old-refresh",
			refresh:   true,
			lookup:    true,
			user:      database.User{ID: 1, Email: "user@example.com"},
			code:      http.StatusBadRequest,
			respError: "Inactive user",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewUserProvider(t)
			refresher := mocks.NewTokenRefresher(t)

			if tc.refresh {
				issued := pair
				if tc.refreshErr != nil {
					issued = tokens.Pair{}
				}
				refresher.On("Refresh", "old-refresh", mock.AnythingOfType("time.Time")).
					Return(issued, tc.refreshErr).Once()
			}

			if tc.lookup {
				users.On("UserByEmail", mock.Anything, "user@example.com").Return(tc.user, tc.userErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			refresh.New(sldiscard.NewDiscardLogger(), users, refresher).ServeHTTP(rr, req)

			require.Equal(t, tc.code, rr.Code)

			var resp login.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tc.respError, resp.Error)

			if tc.code == http.StatusOK {
				require.Equal(t, "new-access", resp.AccessToken)
				require.Equal(t, "new-refresh", resp.RefreshToken)
				require.Equal(t, tokens.TokenType, resp.TokenType)
			}
		})
	}
}

func TestRefreshWithTokenService(t *testing.T) {
	service, err := tokens.New(jwtCfg)
	require.NoError(t, err)

	users := mocks.NewUserProvider(t)
	users.On("UserByEmail", mock.Anything, "user@example.com").
		Return(database.User{ID: 1, Email: "user@example.com", IsActive: true}, nil).Once()

	issued, err := service.IssuePair("user@example.com", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+issued.RefreshToken)
	rr := httptest.NewRecorder()

	refresh.New(sldiscard.NewDiscardLogger(), users, service).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp login.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	claims, err := service.Verify(resp.AccessToken, tokens.ClassAccess, time.Now())
	require.NoError(t, err)
	require.Equal(t, "user@example.com", claims.Subject)
}
