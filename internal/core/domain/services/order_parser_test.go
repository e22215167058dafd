package services_test

import (
	"errors"
	"testing"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wantItem struct {
	name     string
	quantity int
	price    string
}

func TestOrderParser_Parse_Itemized(t *testing.T) {
	parser := services.NewOrderParser()

	tests := []struct {
		name  string
		text  string
		items []wantItem
	}{
		{
			name:  "single item",
			text:  "Burger 2 @80",
			items: []wantItem{{"Burger", 2, "80.00"}},
		},
		{
			name:  "decimal price",
			text:  "Burger 2 @80.50",
			items: []wantItem{{"Burger", 2, "80.50"}},
		},
		{
			name: "multiple items on one line",
			text: "Burger 2 @80 Fries 1 @45.50",
			items: []wantItem{
				{"Burger", 2, "80.00"},
				{"Fries", 1, "45.50"},
			},
		},
		{
			name: "items across lines",
			text: "Cheese Burger 1 @ 120\nIced Tea 2 @25",
			items: []wantItem{
				{"Cheese Burger", 1, "120.00"},
				{"Iced Tea", 2, "25.00"},
			},
		},
		{
			name:  "spaces around the at sign",
			text:  "Siomai Rice 3 @ 55",
			items: []wantItem{{"Siomai Rice", 3, "55.00"}},
		},
		{
			name:  "zero price is allowed",
			text:  "Water 1 @0",
			items: []wantItem{{"Water", 1, "0.00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, format, err := parser.Parse(tt.text)

			require.NoError(t, err)
			assert.Equal(t, order.Itemized, format)
			require.Len(t, items, len(tt.items))
			for i, want := range tt.items {
				assert.Equal(t, want.name, items[i].Name())
				assert.Equal(t, want.quantity, items[i].Quantity())
				assert.Equal(t, want.price, items[i].Price().String())
			}
		})
	}
}

func TestOrderParser_Parse_Prepaid(t *testing.T) {
	parser := services.NewOrderParser()

	tests := []struct {
		name  string
		text  string
		items []wantItem
	}{
		{
			name:  "single item",
			text:  "Burger 2",
			items: []wantItem{{"Burger", 2, "0.00"}},
		},
		{
			name: "multiple items",
			text: "Siomai Rice 2 Gulaman 1",
			items: []wantItem{
				{"Siomai Rice", 2, "0.00"},
				{"Gulaman", 1, "0.00"},
			},
		},
		{
			name:  "multi word name",
			text:  "Pickup Fries 1",
			items: []wantItem{{"Pickup Fries", 1, "0.00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, format, err := parser.Parse(tt.text)

			require.NoError(t, err)
			assert.Equal(t, order.Prepaid, format)
			require.Len(t, items, len(tt.items))
			for i, want := range tt.items {
				assert.Equal(t, want.name, items[i].Name())
				assert.Equal(t, want.quantity, items[i].Quantity())
				assert.True(t, items[i].Price().IsZero())
			}
		})
	}
}

func TestOrderParser_Parse_Failures(t *testing.T) {
	parser := services.NewOrderParser()

	tests := []struct {
		name string
		text string
		kind services.ParseFailure
	}{
		{name: "empty text", text: "", kind: services.EmptyOrder},
		{name: "whitespace only", text: "   \n\t", kind: services.EmptyOrder},
		{name: "price without quantity", text: "Burger @80", kind: services.InvalidItemizedFormat},
		{name: "zero quantity with price", text: "Burger 0 @80", kind: services.InvalidItemizedFormat},
		{name: "garbled price", text: "Burger 2 @cheap", kind: services.InvalidItemizedFormat},
		{name: "zero quantity without price", text: "Burger 0", kind: services.InvalidPrepaidFormat},
		{name: "digits without names", text: "2 3 4", kind: services.InvalidPrepaidFormat},
		{name: "no digits at all", text: "just some words", kind: services.UnrecognizableFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, format, err := parser.Parse(tt.text)

			require.Error(t, err)
			assert.Nil(t, items)
			assert.Equal(t, order.FormatUnknown, format)

			var parseErr *services.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.kind, parseErr.Kind)
		})
	}
}

func TestOrderParser_Parse_NoPartialItems(t *testing.T) {
	parser := services.NewOrderParser()

	// A malformed price must not silently degrade into a prepaid item set.
	items, format, err := parser.Parse("Burger 2 @eighty")

	require.Error(t, err)
	assert.Nil(t, items)
	assert.Equal(t, order.FormatUnknown, format)

	var parseErr *services.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, services.InvalidItemizedFormat, parseErr.Kind)
}

func TestOrderParser_Parse_ItemizedWinsOverPrepaid(t *testing.T) {
	parser := services.NewOrderParser()

	// Text with a valid priced item parses as Itemized even though a bare
	// name-quantity reading also exists.
	items, format, err := parser.Parse("Burger 2 @80")

	require.NoError(t, err)
	assert.Equal(t, order.Itemized, format)
	require.Len(t, items, 1)
	assert.Equal(t, "80.00", items[0].Price().String())
}

func TestParseFailure_String(t *testing.T) {
	assert.Equal(t, "EmptyOrder", services.EmptyOrder.String())
	assert.Equal(t, "InvalidItemizedFormat", services.InvalidItemizedFormat.String())
	assert.Equal(t, "InvalidPrepaidFormat", services.InvalidPrepaidFormat.String())
	assert.Equal(t, "UnrecognizableFormat", services.UnrecognizableFormat.String())
	assert.Equal(t, "Unknown", services.ParseFailure(42).String())
}
