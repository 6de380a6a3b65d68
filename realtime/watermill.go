package realtime

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/Shamsear/kickoff/logging"
)

// NewPubSub returns the in-process pub/sub that connects notifiers to the hub.
func NewPubSub(logger *logging.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: sendBuffer}, NewWatermillLogger(logger))
}

type watermillLogger struct {
	logger *logging.Logger
}

// NewWatermillLogger routes watermill's own logs through logger.
func NewWatermillLogger(logger *logging.Logger) watermill.LoggerAdapter {
	if logger == nil {
		logger = logging.Default()
	}
	return watermillLogger{logger: logger.With("component", "watermill")}
}

func (l watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.logger.Error(msg, append(kv(fields), "error", err)...)
}

func (l watermillLogger) Info(msg string, fields watermill.LogFields) {
	l.logger.Info(msg, kv(fields)...)
}

func (l watermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.logger.Debug(msg, kv(fields)...)
}

func (l watermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.logger.Debug(msg, kv(fields)...)
}

func (l watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return watermillLogger{logger: l.logger.With(kv(fields)...)}
}

func kv(fields watermill.LogFields) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
