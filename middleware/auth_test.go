package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func protected(t *testing.T) (http.Handler, *int) {
	t.Helper()
	var seen int
	h := Authenticate(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &seen
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	t.Parallel()

	h, seen := protected(t)
	token, err := IssueToken(secret, 42, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 42, *seen)
}

func TestAuthenticateRejects(t *testing.T) {
	t.Parallel()

	expired, err := IssueToken(secret, 42, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := IssueToken([]byte("other"), 42, time.Hour)
	require.NoError(t, err)
	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString(secret)
	require.NoError(t, err)

	tests := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"expired":        "Bearer " + expired,
		"wrong key":      "Bearer " + wrongKey,
		"no user claim":  "Bearer " + noUser,
		"garbage":        "Bearer not.a.token",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h, _ := protected(t)
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		claim   any
		want    int
		wantErr bool
	}{
		{"float", float64(7), 7, false},
		{"string", "9", 9, false},
		{"fraction", 1.5, 0, true},
		{"zero", float64(0), 0, true},
		{"bool", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := WithClaims(context.Background(), jwt.MapClaims{jwtClaimUserID: tt.claim})
			got, err := GetUserIDFromContext(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := GetUserIDFromContext(context.Background())
	assert.Error(t, err)
}
