package journal

import (
	"context"
	"log/slog"
	"time"

	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

// Record appends one event to the journal. The journal is an audit trail;
// a failed append is logged and never undoes the change it describes.
func Record(ctx context.Context, repo ports.EventRepository, cityID, eventType string, at time.Time, payload map[string]any) {
	if repo == nil {
		return
	}
	evt := city.DomainEvent{Type: eventType, OccurredAt: at, Payload: payload}
	if err := repo.Append(ctx, cityID, []city.DomainEvent{evt}); err != nil {
		slog.Warn("journal append failed", "city_id", cityID, "type", eventType, "error", err)
	}
}

func Now(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}
