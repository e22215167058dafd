package order_test

import (
	"testing"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Juan Dela Cruz", "juan@example.com", "0917", "Dorm A", "204")
	require.NoError(t, err)
	return customer
}

func TestNewOrder_ItemizedTotals(t *testing.T) {
	placedAt := time.Date(2026, 8, 29, 11, 30, 0, 0, time.UTC)
	items := []order.LineItem{
		mustLineItem(t, "Burger", 2, "80"),
		mustLineItem(t, "Fries", 1, "45.50"),
	}
	fee := mustMoney(t, "69")

	o, err := order.NewOrder(
		kernel.NewUUID(), validCustomer(t), placedAt, placedAt.Add(time.Minute),
		"AUP Cafeteria", submission.SourceField1, items, order.Itemized, fee,
		order.NewPayment("GCash", "REF-1"),
	)

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.Equal(t, "205.50", o.Subtotal().String())
	assert.Equal(t, "69.00", o.Fee().String())
	assert.Equal(t, "274.50", o.Total().String())
	assert.Equal(t, order.Itemized, o.Format())
	assert.Equal(t, "AUP Cafeteria", o.Store())
	assert.Len(t, o.Items(), 2)
}

func TestNewOrder_TotalEqualsSubtotalPlusFee(t *testing.T) {
	// Amounts chosen to expose binary floating point drift if it existed.
	placedAt := time.Date(2026, 8, 29, 11, 30, 0, 0, time.UTC)
	items := []order.LineItem{mustLineItem(t, "Halo Halo", 3, "0.10")}
	fee := mustMoney(t, "0.20")

	o, err := order.NewOrder(
		kernel.NewUUID(), validCustomer(t), placedAt, placedAt,
		"Store", submission.SourceField2, items, order.Itemized, fee,
		order.NewPayment("", ""),
	)

	require.NoError(t, err)
	sum, err := o.Subtotal().Add(o.Fee())
	require.NoError(t, err)
	equal, err := o.Total().IsEqual(sum)
	require.NoError(t, err)
	assert.True(t, equal)
	assert.Equal(t, "0.50", o.Total().String())
}

func TestNewOrder_PrepaidSubtotalIsZero(t *testing.T) {
	placedAt := time.Date(2026, 8, 29, 11, 30, 0, 0, time.UTC)
	items := []order.LineItem{
		mustLineItem(t, "Siomai Rice", 2, "0"),
		mustLineItem(t, "Gulaman", 1, "0"),
	}
	fee := mustMoney(t, "99")

	o, err := order.NewOrder(
		kernel.NewUUID(), validCustomer(t), placedAt, placedAt,
		"Store", submission.SourceField2, items, order.Prepaid, fee,
		order.NewPayment("Cash", ""),
	)

	require.NoError(t, err)
	assert.True(t, o.Subtotal().IsZero())
	assert.Equal(t, "99.00", o.Total().String())
}

func TestNewOrder_PrepaidRejectsPricedItems(t *testing.T) {
	placedAt := time.Date(2026, 8, 29, 11, 30, 0, 0, time.UTC)
	items := []order.LineItem{mustLineItem(t, "Burger", 1, "80")}

	_, err := order.NewOrder(
		kernel.NewUUID(), validCustomer(t), placedAt, placedAt,
		"Store", submission.SourceField1, items, order.Prepaid, kernel.ZeroMoney(),
		order.NewPayment("", ""),
	)

	assert.ErrorIs(t, err, order.ErrPrepaidItemHasPrice)
}

func TestNewOrder_ValidationFailures(t *testing.T) {
	placedAt := time.Date(2026, 8, 29, 11, 30, 0, 0, time.UTC)
	items := []order.LineItem{mustLineItem(t, "Burger", 1, "80")}

	t.Run("invalid id", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, validCustomer(t), placedAt, placedAt,
			"Store", submission.SourceField1, items, order.Itemized, kernel.ZeroMoney(),
			order.NewPayment("", ""),
		)
		assert.Error(t, err)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), validCustomer(t), placedAt, placedAt,
			"Store", submission.SourceField1, nil, order.Itemized, kernel.ZeroMoney(),
			order.NewPayment("", ""),
		)
		assert.ErrorIs(t, err, order.ErrNoLineItems)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), validCustomer(t), placedAt, placedAt,
			"Store", submission.SourceUnknown, items, order.Itemized, kernel.ZeroMoney(),
			order.NewPayment("", ""),
		)
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), validCustomer(t), placedAt, placedAt,
			"Store", submission.SourceField1, items, order.FormatUnknown, kernel.ZeroMoney(),
			order.NewPayment("", ""),
		)
		assert.Error(t, err)
	})

	t.Run("zero placedAt", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), validCustomer(t), time.Time{}, placedAt,
			"Store", submission.SourceField1, items, order.Itemized, kernel.ZeroMoney(),
			order.NewPayment("", ""),
		)
		assert.Error(t, err)
	})
}

func TestNewCustomer(t *testing.T) {
	t.Run("requires name", func(t *testing.T) {
		_, err := order.NewCustomer("  ", "juan@example.com", "", "", "")
		assert.Error(t, err)
	})

	t.Run("requires email with at sign", func(t *testing.T) {
		_, err := order.NewCustomer("Juan", "juan.example.com", "", "", "")
		assert.Error(t, err)
	})

	t.Run("trims optional fields", func(t *testing.T) {
		customer, err := order.NewCustomer("Juan", "juan@example.com", " 0917 ", " Dorm A ", " 204 ")
		require.NoError(t, err)
		assert.Equal(t, "0917", customer.Phone())
		assert.Equal(t, "Dorm A", customer.Location())
		assert.Equal(t, "204", customer.Room())
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	notConstructed := &order.Order{}
	assert.ErrorIs(t, notConstructed.Validate(), order.ErrOrderIsNotConstructed)
}

func mustLineItem(t *testing.T, name string, quantity int, price string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(name, quantity, mustMoney(t, price))
	require.NoError(t, err)
	return item
}
