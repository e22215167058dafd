package services

import (
	"sort"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
)

// StoreGroup is the slice of a day's orders placed at one store, in their
// relative arrival order.
type StoreGroup struct {
	Store  string
	Orders []*order.Order
}

// DispatchSummary is the aggregated view of one day's successfully
// interpreted orders, handed off to fulfillment. It is built fresh per
// aggregation run and read-only once returned.
//
// TotalRevenue sums subtotals, which only Itemized orders contribute to
// (Prepaid subtotals are structurally zero). TotalFees sums every order's
// fee unconditionally, since the fee is charged regardless of format.
// Skipped counts the rows that failed selection or parsing; they are omitted
// from the summary but stay observable for diagnostics.
type DispatchSummary struct {
	TotalOrders  int
	TotalRevenue kernel.Money
	TotalFees    kernel.Money

	// Orders holds the day's orders in original row order.
	Orders []*order.Order

	// Stores groups orders by store in first-seen store order.
	Stores []StoreGroup

	// Skipped is the count of rows dropped by selection or parse failures.
	Skipped int
}

// OrdersByTime returns the day's orders sorted ascending by submission
// timestamp, regardless of input row order. Dispatch listings are
// chronological; Orders preserves arrival order for everything else.
func (s DispatchSummary) OrdersByTime() []*order.Order {
	sorted := append([]*order.Order(nil), s.Orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlacedAt().Before(sorted[j].PlacedAt())
	})
	return sorted
}

// DailyAggregator folds a collection of raw submission rows into a
// DispatchSummary. Each row runs through the same selector -> parser -> fee
// pipeline as single-order intake; rows that fail are counted and skipped,
// never aborting the run. One bad row must not prevent the summary for the
// rest.
type DailyAggregator struct {
	builder OrderBuilder
	newID   func() kernel.UUID
}

// NewDailyAggregator creates a DailyAggregator over the given builder.
func NewDailyAggregator(builder OrderBuilder) DailyAggregator {
	return DailyAggregator{
		builder: builder,
		newID:   kernel.NewUUID,
	}
}

// Aggregate folds submission rows into a dispatch summary. Orders accumulate
// in row order; store groups preserve first-seen store ordering with each
// store's orders in their relative arrival order. The now parameter is the
// aggregation run time, passed through to order building.
func (a DailyAggregator) Aggregate(rows []submission.Submission, now time.Time) DispatchSummary {
	summary := DispatchSummary{
		TotalRevenue: kernel.ZeroMoney(),
		TotalFees:    kernel.ZeroMoney(),
		Orders:       make([]*order.Order, 0, len(rows)),
		Stores:       make([]StoreGroup, 0),
	}

	storeIndex := make(map[string]int)

	for _, row := range rows {
		o, err := a.builder.Build(a.newID(), row, now)
		if err != nil {
			summary.Skipped++
			continue
		}

		summary.Orders = append(summary.Orders, o)
		summary.TotalOrders++

		if revenue, addErr := summary.TotalRevenue.Add(o.Subtotal()); addErr == nil {
			summary.TotalRevenue = revenue
		}
		if fees, addErr := summary.TotalFees.Add(o.Fee()); addErr == nil {
			summary.TotalFees = fees
		}

		if idx, seen := storeIndex[o.Store()]; seen {
			summary.Stores[idx].Orders = append(summary.Stores[idx].Orders, o)
		} else {
			storeIndex[o.Store()] = len(summary.Stores)
			summary.Stores = append(summary.Stores, StoreGroup{
				Store:  o.Store(),
				Orders: []*order.Order{o},
			})
		}
	}

	return summary
}
