package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAndHandler(t *testing.T) {
	t.Parallel()

	m := New()
	m.FixturesGenerated.WithLabelValues("knockout").Add(4)
	m.ResultsSaved.WithLabelValues("multi_leg").Inc()
	ObserveSince(m.StandingsComputeSec, time.Now())

	assert.InDelta(t, 4, testutil.ToFloat64(m.FixturesGenerated.WithLabelValues("knockout")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ResultsSaved.WithLabelValues("multi_leg")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kickoff_fixtures_generated_total")
	assert.Contains(t, rec.Body.String(), "kickoff_standings_compute_seconds_count 1")
}

func TestInstancesAreIsolated(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.TiebreakersCreated.Inc()
	assert.InDelta(t, 0, testutil.ToFloat64(b.TiebreakersCreated), 0)
}
