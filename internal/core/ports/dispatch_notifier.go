package ports

import (
	"context"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"
)

// DispatchNotifier delivers a day's dispatch summary to fulfillment.
// Implementations decide the channel; the domain only hands over the
// aggregated summary and the day it covers.
type DispatchNotifier interface {
	NotifyDispatch(ctx context.Context, day time.Time, summary services.DispatchSummary) error
}
