// Package notify delivers dispatch summaries to fulfillment channels.
// The structured-log notifier is the default channel; richer channels
// (email, chat webhooks) implement the same port.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"
)

// SlogDispatchNotifier writes the dispatch summary to the structured log,
// one record per store group plus a totals record. Downstream log shipping
// turns these into the fulfillment team's daily digest.
type SlogDispatchNotifier struct {
	logger *slog.Logger
}

// NewSlogDispatchNotifier creates a notifier writing to the given logger.
func NewSlogDispatchNotifier(logger *slog.Logger) *SlogDispatchNotifier {
	return &SlogDispatchNotifier{
		logger: logger.With("component", "dispatch_notifier"),
	}
}

// NotifyDispatch logs the day's dispatch summary. Never returns an error;
// the log sink is assumed reliable.
func (n *SlogDispatchNotifier) NotifyDispatch(
	ctx context.Context, day time.Time, summary services.DispatchSummary,
) error {
	n.logger.InfoContext(ctx, "Daily dispatch summary",
		"day", day.Format("2006-01-02"),
		"total_orders", summary.TotalOrders,
		"total_revenue", summary.TotalRevenue.String(),
		"total_fees", summary.TotalFees.String(),
		"skipped", summary.Skipped,
	)

	for _, group := range summary.Stores {
		n.logger.InfoContext(ctx, "Store dispatch",
			"day", day.Format("2006-01-02"),
			"store", group.Store,
			"orders", len(group.Orders),
		)

		for _, o := range group.Orders {
			n.logger.InfoContext(ctx, "Dispatch order",
				"store", group.Store,
				"order_id", o.ID().String(),
				"customer", o.Customer().Name(),
				"placed_at", o.PlacedAt().Format(time.RFC3339),
				"format", o.Format().String(),
				"total", o.Total().String(),
			)
		}
	}

	return nil
}
