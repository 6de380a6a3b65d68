package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shamsear/kickoff/logging"
)

func startHub(t *testing.T, opts HubOptions) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(opts)
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func TestHubBroadcastsToRoomOnly(t *testing.T) {
	t.Parallel()

	hub := startHub(t, HubOptions{})
	a := newClient(hub, nil, "tournament_1")
	b := newClient(hub, nil, "tournament_1")
	other := newClient(hub, nil, "tournament_2")
	for _, c := range []*Client{a, b, other} {
		require.True(t, hub.Register(c))
	}
	require.Eventually(t, func() bool { return hub.RoomSize("tournament_1") == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, 2, hub.BroadcastToRoom("tournament_1", []byte("hi")))
	assert.Equal(t, []byte("hi"), <-a.send)
	assert.Equal(t, []byte("hi"), <-b.send)
	assert.Empty(t, other.send)
	assert.Zero(t, hub.BroadcastToRoom("tournament_9", []byte("nobody")))
}

func TestHubDropsWhenClientIsSlow(t *testing.T) {
	t.Parallel()

	dropped := prometheus.NewCounter(prometheus.CounterOpts{Name: "dropped"})
	hub := startHub(t, HubOptions{Dropped: dropped})
	c := newClient(hub, nil, "r")
	require.True(t, hub.Register(c))
	require.Eventually(t, func() bool { return hub.RoomSize("r") == 1 }, time.Second, 5*time.Millisecond)

	for i := 0; i < sendBuffer+3; i++ {
		hub.BroadcastToRoom("r", []byte("x"))
	}
	assert.InDelta(t, 3, testutil.ToFloat64(dropped), 0)
}

func TestHubUnregisterClosesSend(t *testing.T) {
	t.Parallel()

	hub := startHub(t, HubOptions{})
	c := newClient(hub, nil, "r")
	require.True(t, hub.Register(c))
	hub.Unregister(c)

	require.Eventually(t, func() bool { return hub.RoomSize("r") == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.send
	assert.False(t, open)
}

func TestOriginCheck(t *testing.T) {
	t.Parallel()

	open := NewHub(HubOptions{AllowedOrigins: []string{"*"}})
	assert.True(t, open.originAllowed("https://anything.example"))

	strict := NewHub(HubOptions{AllowedOrigins: []string{"https://app.example"}})
	assert.True(t, strict.originAllowed("https://app.example"))
	assert.False(t, strict.originAllowed("https://evil.example"))
}

func TestNotifierReachesWebsocketViewer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(HubOptions{})
	go hub.Run(ctx)

	pubsub := NewPubSub(logging.NewNop())
	defer pubsub.Close()
	require.NoError(t, Relay(ctx, pubsub, hub))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r, "tournament_5")
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.RoomSize("tournament_5") == 1 }, time.Second, 5*time.Millisecond)

	notifier := NewWatermillNotifier(pubsub, logging.NewNop(), nil)
	notifier.Notify(ctx, 5, EventMatchScoreUpdated, map[string]int{"match_id": 3})
	notifier.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Type    EventType      `json:"type"`
		RoomID  string         `json:"room_id"`
		Payload map[string]int `json:"payload"`
	}
	require.NoError(t, sonic.Unmarshal(data, &got))
	assert.Equal(t, EventMatchScoreUpdated, got.Type)
	assert.Equal(t, "tournament_5", got.RoomID)
	assert.Equal(t, 3, got.Payload["match_id"])
}
