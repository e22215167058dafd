// Package queries contains read-only operations against stored state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and never mutate aggregates.
package queries

import (
	"errors"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/pkg/guard"
)

var (
	ErrGetDailyDispatchQueryIsNotConstructed = errors.New(
		"GetDailyDispatchQuery must be created via NewGetDailyDispatchQuery constructor",
	)
	ErrDayIsRequired = errors.New("day is required")
)

// GetDailyDispatchQuery requests the dispatch summary for one calendar day.
// The day's submissions are re-read from storage and re-interpreted, so the
// summary always reflects the current fee schedule and parser behavior.
//
// Example:
//
//	query, err := NewGetDailyDispatchQuery(time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid dispatch query: %w", err)
//	}
//
//	summary, err := handler.Handle(ctx, query)
type GetDailyDispatchQuery struct { //nolint:recvcheck //using for validation
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyDispatchQuery creates a query for the given day. The time of
// day is discarded; only the calendar date in the given location matters.
func NewGetDailyDispatchQuery(day time.Time) (GetDailyDispatchQuery, error) {
	if day.IsZero() {
		return GetDailyDispatchQuery{}, ErrDayIsRequired
	}

	year, month, dayOfMonth := day.Date()
	return GetDailyDispatchQuery{
		day:   time.Date(year, month, dayOfMonth, 0, 0, 0, 0, day.Location()),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailyDispatchQueryIsNotConstructed if validation fails.
func (q GetDailyDispatchQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyDispatchQueryIsNotConstructed)
}

// Day returns the midnight start of the requested day.
func (q GetDailyDispatchQuery) Day() time.Time {
	return q.day
}
