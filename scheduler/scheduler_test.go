package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Shamsear/kickoff/logging"
)

type fakeStarter struct {
	calls   atomic.Int32
	started int
	err     error
}

func (f *fakeStarter) StartDueTournaments(context.Context) (int, error) {
	f.calls.Add(1)
	return f.started, f.err
}

func TestNewRejectsBadSchedule(t *testing.T) {
	_, err := New("every now and then", &fakeStarter{}, logging.NewNop())
	assert.Error(t, err)
}

func TestRunOnceLogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := logging.FromZap(zap.New(core))

	ok := &fakeStarter{started: 2}
	s, err := New("@every 1h", ok, logger)
	require.NoError(t, err)
	s.RunOnce()
	assert.Equal(t, int32(1), ok.calls.Load())
	require.Equal(t, 1, logs.FilterMessage("tournaments started").Len())
	assert.Equal(t, int64(2), logs.FilterMessage("tournaments started").All()[0].ContextMap()["count"])

	failing := &fakeStarter{err: errors.New("db down")}
	s, err = New("@every 1h", failing, logger)
	require.NoError(t, err)
	s.RunOnce()
	assert.Equal(t, 1, logs.FilterMessage("starting due tournaments failed").Len())
}

func TestStartRunsImmediatelyAndStopsWithContext(t *testing.T) {
	starter := &fakeStarter{}
	s, err := New("@every 1h", starter, logging.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return starter.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
