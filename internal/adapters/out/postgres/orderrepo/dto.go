// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns use numeric(12,2) so stored amounts round-trip exactly;
// line items are kept as a JSON column since they are only ever read back as
// part of the whole order.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Customer    CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	PlacedAt    time.Time   `gorm:"index"`
	ProcessedAt time.Time
	Store       string `gorm:"index"`
	Source      string
	Items       LineItemsDTO    `gorm:"serializer:json;type:jsonb"`
	Format      string
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Fee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Payment     PaymentDTO      `gorm:"embedded;embeddedPrefix:payment_"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded submitter identity within the order table.
type CustomerDTO struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Room     string
}

// PaymentDTO represents the embedded payment metadata within the order table.
type PaymentDTO struct {
	Method string
	Ref    string
}

// LineItemDTO represents one parsed line item within the JSON items column.
type LineItemDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LineItemsDTO is the JSON-serialized items column.
type LineItemsDTO []LineItemDTO

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(LineItemsDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Customer: CustomerDTO{
			Name:     aggregate.Customer().Name(),
			Email:    aggregate.Customer().Email(),
			Phone:    aggregate.Customer().Phone(),
			Location: aggregate.Customer().Location(),
			Room:     aggregate.Customer().Room(),
		},
		PlacedAt:    aggregate.PlacedAt(),
		ProcessedAt: aggregate.ProcessedAt(),
		Store:       aggregate.Store(),
		Source:      aggregate.Source().String(),
		Items:       items,
		Format:      aggregate.Format().String(),
		Subtotal:    aggregate.Subtotal().Decimal(),
		Fee:         aggregate.Fee().Decimal(),
		Total:       aggregate.Total().Decimal(),
		Payment: PaymentDTO{
			Method: aggregate.Payment().Method(),
			Ref:    aggregate.Payment().Ref(),
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstruction goes through NewOrder, so the aggregate's invariants are
// re-checked and the totals recomputed from the stored items and fee.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.Customer.Name,
		dto.Customer.Email,
		dto.Customer.Phone,
		dto.Customer.Location,
		dto.Customer.Room,
	)
	if err != nil {
		return nil, err
	}

	source, err := submission.SourceFromString(dto.Source)
	if err != nil {
		return nil, err
	}

	format, err := order.FormatFromString(dto.Format)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoneyFromDecimal(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewLineItem(itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	fee, err := kernel.NewMoneyFromDecimal(dto.Fee)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		id,
		customer,
		dto.PlacedAt,
		dto.ProcessedAt,
		dto.Store,
		source,
		items,
		format,
		fee,
		order.NewPayment(dto.Payment.Method, dto.Payment.Ref),
	)
}
