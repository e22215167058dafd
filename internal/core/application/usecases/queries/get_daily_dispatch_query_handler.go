package queries

import (
	"context"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDailyDispatchQueryHandler builds the dispatch summary for one day from
// the stored submission rows. Rows are read in the order they were recorded
// and folded through the daily aggregator, so rows that failed interpretation
// at intake surface in the summary's Skipped count.
//
// Example:
//
//	handler := NewGetDailyDispatchQueryHandler(db, aggregator)
//	query, _ := NewGetDailyDispatchQuery(time.Now())
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, %d skipped\n", summary.TotalOrders, summary.Skipped)
type GetDailyDispatchQueryHandler struct {
	db         *gorm.DB
	aggregator services.DailyAggregator
	clock      func() time.Time
}

// NewGetDailyDispatchQueryHandler creates a handler for daily dispatch queries.
// Requires a GORM database connection and the daily aggregator.
func NewGetDailyDispatchQueryHandler(
	db *gorm.DB, aggregator services.DailyAggregator,
) GetDailyDispatchQueryHandler {
	return GetDailyDispatchQueryHandler{
		db:         db,
		aggregator: aggregator,
		clock:      time.Now,
	}
}

// Handle executes the query. It reads every submission whose timestamp falls
// on the requested day, in recorded order, and aggregates them into a
// DispatchSummary.
func (h GetDailyDispatchQueryHandler) Handle(
	ctx context.Context,
	query GetDailyDispatchQuery,
) (services.DispatchSummary, error) {
	if err := query.Validate(); err != nil {
		return services.DispatchSummary{}, err
	}

	dayStart := query.Day()
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			submitted_at,
			name,
			email,
			phone,
			location,
			room,
			declared_type,
			field1,
			field2,
			store,
			payment_method,
			payment_ref,
			terms_accepted
		FROM submissions
		WHERE submitted_at >= ? AND submitted_at < ?
		ORDER BY recorded_at
	`, dayStart, dayEnd).Rows()
	if err != nil {
		return services.DispatchSummary{}, err
	}
	defer rows.Close()

	records := make([]submission.Submission, 0)
	for rows.Next() {
		var record submission.Submission

		err = rows.Scan(
			&record.SubmittedAt,
			&record.Name,
			&record.Email,
			&record.Phone,
			&record.Location,
			&record.Room,
			&record.DeclaredType,
			&record.Field1,
			&record.Field2,
			&record.Store,
			&record.PaymentMethod,
			&record.PaymentRef,
			&record.TermsAccepted,
		)
		if err != nil {
			return services.DispatchSummary{}, err
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return services.DispatchSummary{}, err
	}

	return h.aggregator.Aggregate(records, h.clock()), nil
}
