package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/core/ports"
	"deliverytracker/internal/pkg/errs"
)

// DefaultMaxActionAttempts bounds the read-decide-write cycle when
// ApplyActionSettings.MaxAttempts is not set.
const DefaultMaxActionAttempts = 3

// ApplyActionSettings configures ApplyActionCommandHandler.
type ApplyActionSettings struct {
	// Topic receives a workorder.ChangedEvent after every applied action.
	Topic string
	// MaxAttempts is how many times a lost conditional update is retried
	// from a fresh read before the conflict is reported.
	MaxAttempts int
	// Location decides the calendar day used for date guards and audit
	// entries. Defaults to UTC.
	Location *time.Location
}

// ApplyActionCommandHandler runs the read-decide-write cycle for lifecycle
// actions: load the record, let the engine compute a patch, and write it
// with a conditional update. A lost race restarts the cycle from a fresh read.
type ApplyActionCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	engine     *workorder.Engine
	publisher  ports.EventPublisher
	observer   ActionObserver
	now        Clock
	settings   ApplyActionSettings
	logger     *slog.Logger
}

func NewApplyActionCommandHandler(
	uowFactory WorkOrderUoWFactory,
	engine *workorder.Engine,
	publisher ports.EventPublisher,
	observer ActionObserver,
	now Clock,
	settings ApplyActionSettings,
	logger *slog.Logger,
) ApplyActionCommandHandler {
	if settings.MaxAttempts < 1 {
		settings.MaxAttempts = DefaultMaxActionAttempts
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return ApplyActionCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		publisher:  publisher,
		observer:   observer,
		now:        now,
		settings:   settings,
		logger:     logger.With("component", "apply-action"),
	}
}

// Handle applies the action and returns the work order as stored. Guard
// violations, validation errors and missing records are returned unchanged;
// exhausting the attempts yields *errs.ConflictError.
func (h *ApplyActionCommandHandler) Handle(ctx context.Context, cmd ApplyActionCommand) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tag := cmd.Action().Tag()
	for attempt := 1; attempt <= h.settings.MaxAttempts; attempt++ {
		wo, err := h.attempt(ctx, cmd)
		if err == nil {
			h.observer.ObserveAction(tag, OutcomeApplied)
			return wo, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			h.observer.ObserveAction(tag, outcomeOf(err))
			return nil, err
		}

		h.observer.ObserveConflictRetry(tag)
		h.logger.WarnContext(ctx, "conditional update lost, retrying",
			"workOrderId", cmd.WorkOrderID().String(),
			"action", string(tag),
			"attempt", attempt)
	}

	h.observer.ObserveAction(tag, OutcomeConflict)
	return nil, errs.NewConflictErrorAfterAttempts("workOrder", cmd.WorkOrderID().String(), h.settings.MaxAttempts)
}

func (h *ApplyActionCommandHandler) attempt(ctx context.Context, cmd ApplyActionCommand) (*workorder.WorkOrder, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	current, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return nil, err
	}

	patch, err := h.engine.Apply(current, cmd.Action(), h.now().In(h.settings.Location))
	if err != nil {
		return nil, err
	}

	next, err := repo.UpdateIfUnchanged(ctx, current, patch)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, changed := range uow.TrackedWorkOrders() {
		h.publisher.Publish(ctx, h.settings.Topic, workorder.NewChangedEvent(changed, patch))
	}

	h.logger.InfoContext(ctx, "action applied",
		"workOrderId", next.ID().String(),
		"action", string(patch.Action),
		"from", patch.ExpectedStatus.String(),
		"to", next.Status().String(),
		"version", next.Version())

	return next, nil
}

func outcomeOf(err error) Outcome {
	switch {
	case errors.Is(err, errs.ErrGuardViolation):
		return OutcomeRejected
	case errors.Is(err, errs.ErrObjectNotFound):
		return OutcomeNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
