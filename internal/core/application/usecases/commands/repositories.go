// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/Gmpatem/campus-cart-v2/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SubmissionRepoFactory provides access to the submission repository
	// within a transaction.
	SubmissionRepoFactory interface {
		SubmissionRepository() ports.SubmissionRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// IntakeUoW manages transactions for submission intake. Intake writes the
	// raw submission row and, when interpretation succeeds, the order built
	// from it, atomically.
	IntakeUoW interface {
		TxManager
		SubmissionRepoFactory
		OrderRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}
)
