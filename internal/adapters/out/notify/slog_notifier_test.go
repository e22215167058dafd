package notify_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/adapters/out/notify"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogDispatchNotifier_NotifyDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	notifier := notify.NewSlogDispatchNotifier(logger)

	summary := buildSummary(t)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	err := notifier.NotifyDispatch(t.Context(), day, summary)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	// One summary record, one per store group, one per order.
	require.Len(t, lines, 1+len(summary.Stores)+summary.TotalOrders)

	var header map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &header))
	assert.Equal(t, "Daily dispatch summary", header["msg"])
	assert.Equal(t, "2026-03-14", header["day"])
	assert.Equal(t, float64(summary.TotalOrders), header["total_orders"])
	assert.Equal(t, summary.TotalRevenue.String(), header["total_revenue"])

	var store map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &store))
	assert.Equal(t, "Store dispatch", store["msg"])
	assert.Equal(t, "AUP Cafeteria", store["store"])
}

func TestSlogDispatchNotifier_EmptyDay(t *testing.T) {
	var buf bytes.Buffer
	notifier := notify.NewSlogDispatchNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := notifier.NotifyDispatch(t.Context(),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), services.DispatchSummary{
			TotalRevenue: kernel.ZeroMoney(),
			TotalFees:    kernel.ZeroMoney(),
		})

	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 1)
}

func buildSummary(t *testing.T) services.DispatchSummary {
	t.Helper()

	builder, err := services.NewOrderBuilder(services.DefaultFeeSchedule())
	require.NoError(t, err)
	aggregator := services.NewDailyAggregator(builder)

	rows := []submission.Submission{{
		SubmittedAt:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Name:          "Juan Dela Cruz",
		Email:         "juan@example.com",
		Field1:        "Burger 2 @80",
		Store:         "AUP Cafeteria",
		TermsAccepted: "yes",
	}}

	summary := aggregator.Aggregate(rows, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC))
	require.Equal(t, 1, summary.TotalOrders)
	require.Equal(t, order.Itemized, summary.Orders[0].Format())
	return summary
}
