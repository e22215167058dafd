package commands

import (
	"context"
	"errors"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"
)

// ProcessSubmissionCommandHandler runs one submission through the
// interpretation pipeline and persists the outcome.
//
// The raw submission row is stored in every case, even when interpretation
// fails, so daily aggregation and diagnostics see the full day exactly as it
// arrived. A *services.ValidationError from the builder is therefore not a
// transaction failure: the submission commit still happens and the error is
// returned to the caller for the correction message.
type ProcessSubmissionCommandHandler struct {
	uowFactory IntakeUoWFactory
	builder    services.OrderBuilder
	clock      func() time.Time
}

// NewProcessSubmissionCommandHandler creates a handler for submission intake.
// Requires an IntakeUoWFactory for transactional persistence and the order
// builder holding the fee schedule.
func NewProcessSubmissionCommandHandler(
	uowFactory IntakeUoWFactory, builder services.OrderBuilder,
) ProcessSubmissionCommandHandler {
	return ProcessSubmissionCommandHandler{
		uowFactory: uowFactory,
		builder:    builder,
		clock:      time.Now,
	}
}

// Handle processes the submission command. On success it returns the built
// order after persisting both the raw row and the order. On interpretation
// failure it persists the raw row alone and returns the
// *services.ValidationError classifying the failure.
func (h *ProcessSubmissionCommandHandler) Handle(
	ctx context.Context, cmd ProcessSubmissionCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SubmissionRepository().Add(ctx, cmd.Record()); err != nil {
		return nil, err
	}

	built, buildErr := h.builder.Build(cmd.OrderID(), cmd.Record(), h.clock())
	if buildErr != nil {
		var validationErr *services.ValidationError
		if !errors.As(buildErr, &validationErr) {
			return nil, buildErr
		}

		if err := uow.Commit(ctx); err != nil {
			return nil, err
		}
		return nil, validationErr
	}

	if err := uow.OrderRepository().Add(ctx, built); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return built, nil
}
