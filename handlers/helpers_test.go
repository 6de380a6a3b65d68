package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shamsear/kickoff/services"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{services.ErrTournamentNotFound, http.StatusNotFound},
		{fmt.Errorf("load: %w", services.ErrMatchNotFound), http.StatusNotFound},
		{services.ErrForbiddenOperation, http.StatusForbidden},
		{services.ErrInvalidScore, http.StatusUnprocessableEntity},
		{services.ErrInsufficientEntrants, http.StatusUnprocessableEntity},
		{services.ErrValidationFailed, http.StatusUnprocessableEntity},
		{services.ErrFixturesAlreadyGenerated, http.StatusConflict},
		{services.ErrRoundIncomplete, http.StatusConflict},
		{services.ErrInvalidMatchTransition, http.StatusConflict},
		{services.ErrTournamentInvalidStatusTransition, http.StatusConflict},
		{services.ErrStandingsExportDisabled, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: %w", services.ErrPersistence, errors.New("conn reset")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			mapServiceErrorToHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	mapServiceErrorToHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestReadJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"Cup"}`, ""},
		{"empty", ``, "body must not be empty"},
		{"unknown field", `{"name":"Cup","colour":"red"}`, `unknown key "colour"`},
		{"wrong type", `{"name":7}`, `incorrect JSON type for field "name"`},
		{"two values", `{"name":"a"}{"name":"b"}`, "single JSON value"},
		{"broken", `{"name":`, "badly-formed JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := readJSON(httptest.NewRecorder(), r, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Cup", dst.Name)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetIDFromURL(t *testing.T) {
	t.Parallel()

	withParam := func(v string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("tournamentID", v)
		return httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))
	}

	id, err := getIDFromURL(withParam("42"), "tournamentID")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := getIDFromURL(withParam(bad), "tournamentID")
		assert.Error(t, err, bad)
	}
}
