package workorder

import (
	"errors"
	"strings"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/pkg/errs"
)

// ActionTag names an action in audit-trail entries, events and metrics.
type ActionTag string

const (
	TagDispatch       ActionTag = "Dispatch"
	TagLoad           ActionTag = "Load"
	TagComplete       ActionTag = "Complete"
	TagCancel         ActionTag = "Cancel"
	TagPostpone       ActionTag = "Postpone"
	TagOverrideStatus ActionTag = "StatusOverride"
)

// Action is one of DispatchAction, LoadAction, CompleteAction, CancelAction,
// PostponeAction or OverrideStatusAction. The set is closed.
type Action interface {
	Tag() ActionTag
	validate() error
}

// DispatchAction records that a received (or postponed) order was handed out.
type DispatchAction struct{}

func (DispatchAction) Tag() ActionTag { return TagDispatch }

func (DispatchAction) validate() error { return nil }

// LoadAction records that the order physically entered fulfillment.
type LoadAction struct{}

func (LoadAction) Tag() ActionTag { return TagLoad }

func (LoadAction) validate() error { return nil }

// CompleteAction finishes the order with attribution flags and optional evidence.
type CompleteAction struct {
	Detail CompletionDetail
}

func (CompleteAction) Tag() ActionTag { return TagComplete }

func (a CompleteAction) validate() error {
	if a.Detail.CompletedAt != nil && a.Detail.CompletedAt.IsZero() {
		return errs.NewValueIsInvalidError("completedAt")
	}
	return nil
}

// CancelAction cancels the order; Reason is required.
type CancelAction struct {
	Reason string
}

// NewCancelAction trims and checks the reason.
func NewCancelAction(reason string) (CancelAction, error) {
	a := CancelAction{Reason: strings.TrimSpace(reason)}
	if err := a.validate(); err != nil {
		return CancelAction{}, err
	}
	return a, nil
}

func (CancelAction) Tag() ActionTag { return TagCancel }

func (a CancelAction) validate() error {
	if strings.TrimSpace(a.Reason) == "" {
		return errs.NewValueIsRequiredError("cancelReason")
	}
	return nil
}

// PostponeAction moves the visit to NewDate, which must be after the day the
// action is applied.
type PostponeAction struct {
	NewDate kernel.Date
	Reason  string
}

// NewPostponeAction checks the shape of the request. Whether NewDate is in
// the future is a guard evaluated by the engine.
func NewPostponeAction(newDate kernel.Date, reason string) (PostponeAction, error) {
	a := PostponeAction{NewDate: newDate, Reason: strings.TrimSpace(reason)}
	if err := a.validate(); err != nil {
		return PostponeAction{}, err
	}
	return a, nil
}

func (PostponeAction) Tag() ActionTag { return TagPostpone }

func (a PostponeAction) validate() error {
	var dateErr, reasonErr error
	if a.NewDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("newDate")
	}
	if strings.TrimSpace(a.Reason) == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	return errors.Join(dateErr, reasonErr)
}

// OverrideStatusAction backs the legacy manual status endpoint. It is still
// subject to terminal absorption and category consistency.
type OverrideStatusAction struct {
	Status Status
	Reason string
}

func (OverrideStatusAction) Tag() ActionTag { return TagOverrideStatus }

func (a OverrideStatusAction) validate() error {
	return a.Status.Validate()
}

// CompletionDetail is the input of a Complete action.
type CompletionDetail struct {
	DriverNotes               string
	CustomerRequested         bool
	FurnitureCompanyRequested bool
	AudioEvidenceRef          string
	CompletedAt               *time.Time
}
