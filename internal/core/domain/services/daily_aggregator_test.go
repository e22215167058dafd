package services_test

import (
	"testing"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionAt(t *testing.T, hour int, store, orderText string) submission.Submission {
	t.Helper()
	sub := validSubmission()
	sub.SubmittedAt = time.Date(2026, 3, 14, hour, 0, 0, 0, time.UTC)
	sub.Store = store
	sub.Field1 = orderText
	return sub
}

func TestDailyAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewDailyAggregator(newBuilder(t))
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	rows := []submission.Submission{
		submissionAt(t, 9, "AUP Cafeteria", "Burger 2 @80"),
		submissionAt(t, 10, "SM City Sta. Rosa", "nonsense without numbers"),
		submissionAt(t, 11, "Tagaytay Bulalo House", "Bulalo 1 @350 Rice 2 @15"),
	}

	summary := aggregator.Aggregate(rows, now)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Orders, 2)

	// 160 + 380 subtotals, 69 + 99 fees.
	assert.Equal(t, "540.00", summary.TotalRevenue.String())
	assert.Equal(t, "168.00", summary.TotalFees.String())

	assert.Equal(t, "AUP Cafeteria", summary.Orders[0].Store())
	assert.Equal(t, "Tagaytay Bulalo House", summary.Orders[1].Store())
}

func TestDailyAggregator_Aggregate_GroupsByStoreFirstSeen(t *testing.T) {
	aggregator := services.NewDailyAggregator(newBuilder(t))
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	rows := []submission.Submission{
		submissionAt(t, 9, "AUP Cafeteria", "Burger 1 @80"),
		submissionAt(t, 10, "Silang Bakery", "Pandesal 10 @5"),
		submissionAt(t, 11, "AUP Cafeteria", "Fries 2 @45"),
	}

	summary := aggregator.Aggregate(rows, now)

	require.Len(t, summary.Stores, 2)
	assert.Equal(t, "AUP Cafeteria", summary.Stores[0].Store)
	assert.Equal(t, "Silang Bakery", summary.Stores[1].Store)
	require.Len(t, summary.Stores[0].Orders, 2)
	require.Len(t, summary.Stores[1].Orders, 1)

	// Within a store, orders keep their relative arrival order.
	assert.Equal(t, "Burger", summary.Stores[0].Orders[0].Items()[0].Name())
	assert.Equal(t, "Fries", summary.Stores[0].Orders[1].Items()[0].Name())
}

func TestDailyAggregator_Aggregate_MixedFormats(t *testing.T) {
	aggregator := services.NewDailyAggregator(newBuilder(t))
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	rows := []submission.Submission{
		submissionAt(t, 9, "AUP Cafeteria", "Burger 2 @80"),
		submissionAt(t, 10, "AUP Cafeteria", "Siomai Rice 2"),
	}

	summary := aggregator.Aggregate(rows, now)

	assert.Equal(t, 2, summary.TotalOrders)
	// Only the itemized order contributes revenue; both contribute fees.
	assert.Equal(t, "160.00", summary.TotalRevenue.String())
	assert.Equal(t, "138.00", summary.TotalFees.String())
}

func TestDailyAggregator_Aggregate_Empty(t *testing.T) {
	aggregator := services.NewDailyAggregator(newBuilder(t))

	summary := aggregator.Aggregate(nil, time.Now())

	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.Skipped)
	assert.Empty(t, summary.Orders)
	assert.Empty(t, summary.Stores)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.TotalFees.IsZero())
}

func TestDispatchSummary_OrdersByTime(t *testing.T) {
	aggregator := services.NewDailyAggregator(newBuilder(t))
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	rows := []submission.Submission{
		submissionAt(t, 14, "AUP Cafeteria", "Burger 1 @80"),
		submissionAt(t, 9, "Silang Bakery", "Pandesal 10 @5"),
		submissionAt(t, 11, "AUP Cafeteria", "Fries 2 @45"),
	}

	summary := aggregator.Aggregate(rows, now)

	sorted := summary.OrdersByTime()
	require.Len(t, sorted, 3)
	assert.Equal(t, 9, sorted[0].PlacedAt().Hour())
	assert.Equal(t, 11, sorted[1].PlacedAt().Hour())
	assert.Equal(t, 14, sorted[2].PlacedAt().Hour())

	// The arrival-ordered slice is left untouched.
	assert.Equal(t, 14, summary.Orders[0].PlacedAt().Hour())
}
