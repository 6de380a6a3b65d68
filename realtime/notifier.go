package realtime

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/models"
)

// Topic carries every tournament event between publishers and the hub relay.
const Topic = "tournament.events"

const roomMetadataKey = "room"

type EventType string

const (
	EventMatchScoreUpdated  EventType = "match_score_updated"
	EventStandingsUpdated   EventType = "standings_updated"
	EventMatchStarted       EventType = "match_started"
	EventMatchReset         EventType = "match_reset"
	EventMatchDeleted       EventType = "match_deleted"
	EventFixturesGenerated  EventType = "fixtures_generated"
	EventBracketAdvanced    EventType = "bracket_advanced"
	EventTiebreakersCreated EventType = "tiebreakers_created"
	EventTournamentStatus   EventType = "tournament_status_changed"
)

// Event is the JSON frame viewers receive.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
	RoomID  string    `json:"room_id"`
}

// Notifier publishes tournament events. Notify never blocks on delivery and
// never reports failure to the caller.
type Notifier interface {
	Notify(ctx context.Context, tournamentID int, event EventType, payload any)
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, int, EventType, any) {}

type WatermillNotifier struct {
	publisher message.Publisher
	logger    *logging.Logger
	dropped   prometheus.Counter
	wg        sync.WaitGroup
}

func NewWatermillNotifier(publisher message.Publisher, logger *logging.Logger, dropped prometheus.Counter) *WatermillNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &WatermillNotifier{publisher: publisher, logger: logger.With("component", "notifier"), dropped: dropped}
}

func (n *WatermillNotifier) Notify(ctx context.Context, tournamentID int, event EventType, payload any) {
	room := models.TournamentRoom(tournamentID)
	ctx = context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		data, err := sonic.Marshal(Event{Type: event, Payload: payload, RoomID: room})
		if err != nil {
			n.drop(ctx, "encode event", event, room, err)
			return
		}
		msg := message.NewMessage(watermill.NewUUID(), data)
		msg.Metadata.Set(roomMetadataKey, room)
		msg.SetContext(ctx)
		if err := n.publisher.Publish(Topic, msg); err != nil {
			n.drop(ctx, "publish event", event, room, err)
		}
	}()
}

// Wait blocks until every pending Notify has been handed to the publisher.
func (n *WatermillNotifier) Wait() {
	n.wg.Wait()
}

func (n *WatermillNotifier) drop(ctx context.Context, step string, event EventType, room string, err error) {
	if n.dropped != nil {
		n.dropped.Inc()
	}
	n.logger.WarnContext(ctx, "broadcast dropped", "step", step, "event", event, "room", room, "error", err)
}

// Relay subscribes to Topic and hands each message to the hub room named in
// its metadata. It returns once the subscription is open; delivery runs
// until ctx is cancelled or the subscriber is closed.
func Relay(ctx context.Context, subscriber message.Subscriber, hub *Hub) error {
	messages, err := subscriber.Subscribe(ctx, Topic)
	if err != nil {
		return err
	}
	go func() {
		for msg := range messages {
			hub.BroadcastToRoom(msg.Metadata.Get(roomMetadataKey), msg.Payload)
			msg.Ack()
		}
	}()
	return nil
}
