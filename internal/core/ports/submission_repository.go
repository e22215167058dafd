// Package ports defines repository and outbound interfaces for the order
// intake domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
)

// SubmissionRepository defines the persistence contract for raw submission
// rows. Every row is kept as received, including ones that failed
// interpretation, so daily aggregation re-reads the day from source.
type SubmissionRepository interface {
	// Add persists one raw submission row.
	Add(ctx context.Context, record submission.Submission) error
}
