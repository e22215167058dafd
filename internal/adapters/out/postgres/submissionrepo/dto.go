// Package submissionrepo persists raw form submission rows. Rows are stored
// exactly as received, including ones that failed interpretation, so the
// daily aggregation can re-read a day from source.
package submissionrepo

import (
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"

	"github.com/google/uuid"
)

// SubmissionDTO represents the database structure for one raw submission row.
// The identifier and RecordedAt are assigned at persistence time; everything
// else is the submitter's input verbatim. RecordedAt preserves arrival order
// for aggregation, independent of the form's own timestamp.
type SubmissionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordedAt    time.Time `gorm:"index"`
	SubmittedAt   time.Time `gorm:"index"`
	Name          string
	Email         string
	Phone         string
	Location      string
	Room          string
	DeclaredType  string
	Field1        string `gorm:"column:field1"`
	Field2        string `gorm:"column:field2"`
	Store         string
	PaymentMethod string
	PaymentRef    string
	TermsAccepted string
}

// TableName specifies the database table name for submission rows.
func (SubmissionDTO) TableName() string {
	return "submissions"
}

// fromDomain converts a submission record to its database representation.
// The row identifier and recording timestamp are filled in by the repository.
func fromDomain(record submission.Submission) SubmissionDTO {
	return SubmissionDTO{
		SubmittedAt:   record.SubmittedAt,
		Name:          record.Name,
		Email:         record.Email,
		Phone:         record.Phone,
		Location:      record.Location,
		Room:          record.Room,
		DeclaredType:  record.DeclaredType,
		Field1:        record.Field1,
		Field2:        record.Field2,
		Store:         record.Store,
		PaymentMethod: record.PaymentMethod,
		PaymentRef:    record.PaymentRef,
		TermsAccepted: record.TermsAccepted,
	}
}
