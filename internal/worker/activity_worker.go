package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/events"
)

// StartActivityWorker subscribes to the full event stream and writes a
// structured audit line per event. The desk UI has no notification channel;
// the log is the activity trail.
func StartActivityWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}
	handler := func(ctx context.Context, event events.Event) error {
		logger.Info("activity",
			zap.String("event", string(event.Type)),
			zap.String("entity_id", event.EntityID),
			zap.String("actor", event.Actor),
			zap.Any("payload", event.Payload),
		)
		return nil
	}
	for _, eventType := range events.All() {
		dispatcher.Subscribe(eventType, handler)
	}
}
