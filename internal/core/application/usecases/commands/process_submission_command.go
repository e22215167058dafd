package commands

import (
	"errors"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/guard"
)

var ErrProcessSubmissionCommandIsNotConstructed = errors.New(
	"ProcessSubmissionCommand must be created via NewProcessSubmissionCommand constructor",
)

// ProcessSubmissionCommand represents a request to interpret one raw form
// submission into an order. The submission record is carried as received:
// its fields may be empty or malformed, and rejecting them is the handler's
// job, not the command's. Only the order identifier is validated here.
//
// Example:
//
//	cmd, err := NewProcessSubmissionCommand(kernel.NewUUID(), record)
//	if err != nil {
//	    return fmt.Errorf("invalid submission command: %w", err)
//	}
//
//	order, err := handler.Handle(ctx, cmd)
type ProcessSubmissionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	record  submission.Submission

	guard guard.ConstructorGuard
}

// NewProcessSubmissionCommand creates a command to process a raw submission.
// Validates that the order ID is valid; the submission record itself is
// accepted as-is.
func NewProcessSubmissionCommand(
	orderID kernel.UUID, record submission.Submission,
) (ProcessSubmissionCommand, error) {
	cmd := ProcessSubmissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ProcessSubmissionCommand{}, err
	}
	cmd.record = record

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessSubmissionCommandIsNotConstructed if validation fails.
func (c ProcessSubmissionCommand) Validate() error {
	return c.guard.Validate(ErrProcessSubmissionCommandIsNotConstructed)
}

// OrderID returns the identifier the order will carry if interpretation
// succeeds.
func (c ProcessSubmissionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Record returns the raw submission row.
func (c ProcessSubmissionCommand) Record() submission.Submission {
	return c.record
}

func (c *ProcessSubmissionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
