package submissionrepo

import (
	"context"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSubmissionRepository implements SubmissionRepository using GORM.
type GormSubmissionRepository struct {
	db    *gorm.DB
	clock func() time.Time
}

// NewGormSubmissionRepository creates a new GORM submission repository.
func NewGormSubmissionRepository(db *gorm.DB) *GormSubmissionRepository {
	return &GormSubmissionRepository{
		db:    db,
		clock: time.Now,
	}
}

// Add saves one raw submission row. The row identifier and the recording
// timestamp are generated here; submissions carry no domain identity.
// A zero SubmittedAt defaults to the recording time, so every stored row
// falls inside exactly one day window.
func (r *GormSubmissionRepository) Add(ctx context.Context, record submission.Submission) error {
	dto := fromDomain(record)
	dto.ID = uuid.New()
	dto.RecordedAt = r.clock().UTC()
	if dto.SubmittedAt.IsZero() {
		dto.SubmittedAt = dto.RecordedAt
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
