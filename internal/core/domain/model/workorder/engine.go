package workorder

import (
	"errors"
	"fmt"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/pkg/errs"
)

// Patch is the outcome of a successful action: the fields to write and the
// state the record must still be in for the write to apply.
type Patch struct {
	Action ActionTag

	ExpectedStatus  Status
	ExpectedVersion int64

	Status       Status
	DriverNotes  string
	VisitDate    *kernel.Date
	CancelReason *string
	CanceledAt   *time.Time
	Completion   *CompletionInfo
	UpdatedAt    time.Time
}

// Engine computes patches. It holds no state and is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Apply decides whether action is legal for wo at time now and returns the
// resulting patch. "Today" for date guards and audit entries is now's
// calendar day in now's location. wo is never modified.
func (e *Engine) Apply(wo *WorkOrder, action Action, now time.Time) (Patch, error) {
	if err := wo.Validate(); err != nil {
		return Patch{}, err
	}
	if action == nil {
		return Patch{}, errs.NewValueIsRequiredError("action")
	}
	if err := action.validate(); err != nil {
		return Patch{}, err
	}

	today := kernel.DateOf(now)
	patch := Patch{
		Action:          action.Tag(),
		ExpectedStatus:  wo.Status(),
		ExpectedVersion: wo.Version(),
		DriverNotes:     wo.DriverNotes(),
		UpdatedAt:       now,
	}

	var (
		detail string
		err    error
	)
	switch a := action.(type) {
	case DispatchAction:
		detail, err = e.dispatch(wo, &patch)
	case LoadAction:
		detail, err = e.load(wo, &patch)
	case CompleteAction:
		detail, err = e.complete(wo, a, now, &patch)
	case CancelAction:
		detail, err = e.cancel(wo, a, now, &patch)
	case PostponeAction:
		detail, err = e.postpone(wo, a, today, &patch)
	case OverrideStatusAction:
		detail, err = e.override(wo, a, &patch)
	default:
		return Patch{}, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unsupported action %T", action))
	}
	if err != nil {
		return Patch{}, err
	}

	patch.DriverNotes = AppendAuditEntry(wo.DriverNotes(), action.Tag(), today, detail)
	return patch, nil
}

func (e *Engine) dispatch(wo *WorkOrder, p *Patch) (string, error) {
	if err := CanDispatch(wo.Status()); err != nil {
		return "", err
	}
	p.Status = Dispatched
	return transitionDetail(wo.Status(), Dispatched), nil
}

func (e *Engine) load(wo *WorkOrder, p *Patch) (string, error) {
	if err := CanLoad(wo.Status()); err != nil {
		return "", err
	}
	next, err := ActiveStatus(wo.Category())
	if err != nil {
		return "", unknownCategory(TagLoad, wo, err)
	}
	p.Status = next
	return transitionDetail(wo.Status(), next), nil
}

func (e *Engine) complete(wo *WorkOrder, a CompleteAction, now time.Time, p *Patch) (string, error) {
	if err := CanComplete(wo.Status()); err != nil {
		return "", err
	}
	next, err := CompletedStatus(wo.Category())
	if err != nil {
		return "", unknownCategory(TagComplete, wo, err)
	}
	completion := RecordCompletion(a.Detail, now)
	p.Status = next
	p.Completion = &completion

	if completion.DriverNotes != "" {
		return completion.DriverNotes, nil
	}
	return transitionDetail(wo.Status(), next), nil
}

func (e *Engine) cancel(wo *WorkOrder, a CancelAction, now time.Time, p *Patch) (string, error) {
	if err := CanCancel(wo.Status()); err != nil {
		return "", err
	}
	reason := a.Reason
	canceledAt := now
	p.Status = Cancelled
	p.CancelReason = &reason
	p.CanceledAt = &canceledAt
	return reason, nil
}

func (e *Engine) postpone(wo *WorkOrder, a PostponeAction, today kernel.Date, p *Patch) (string, error) {
	if err := CanPostpone(wo.Status(), a.NewDate, today); err != nil {
		return "", err
	}
	newDate := a.NewDate
	p.Status = Postponed
	p.VisitDate = &newDate
	return fmt.Sprintf("%s -> %s: %s", wo.VisitDate(), newDate, a.Reason), nil
}

func (e *Engine) override(wo *WorkOrder, a OverrideStatusAction, p *Patch) (string, error) {
	if err := CanOverride(wo.Status(), a.Status, wo.Category()); err != nil {
		return "", err
	}
	p.Status = a.Status
	detail := transitionDetail(wo.Status(), a.Status)
	if a.Reason != "" {
		detail += ": " + a.Reason
	}
	return detail, nil
}

func transitionDetail(from, to Status) string {
	return fmt.Sprintf("%s -> %s", from, to)
}

func unknownCategory(tag ActionTag, wo *WorkOrder, cause error) error {
	if !errors.Is(cause, ErrCategoryIsUnknown) {
		return cause
	}
	return errs.NewGuardViolationError(
		errs.ReasonUnknownCategory,
		string(tag),
		wo.Status().String(),
		fmt.Sprintf("request type %q has no status mapping", wo.RequestType()),
	)
}
