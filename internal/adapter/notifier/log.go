// Package notifier provides the admin-change notification sink.
package notifier

import (
	"context"
	"log/slog"

	"charity-ledger/internal/core/domain"
)

// LogNotifier publishes admin-change events to the structured log.
// Delivery is fire-and-forget; it never fails the transfer that
// produced the event.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier writing to the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// AdminChanged logs the (oldAdmin, newAdmin) transition.
func (n *LogNotifier) AdminChanged(_ context.Context, change domain.AdminChange) {
	n.logger.Info("admin role transferred",
		slog.String("event_id", change.EventID),
		slog.String("old_admin", string(change.OldAdmin)),
		slog.String("new_admin", string(change.NewAdmin)),
		slog.Time("at", change.At),
	)
}
