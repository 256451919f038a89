package workorder

import (
	"fmt"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/pkg/errs"
)

// ensureNotTerminal is the terminal absorption rule shared by every guard.
func ensureNotTerminal(tag ActionTag, s Status) error {
	if err := s.Validate(); err != nil {
		return errs.NewGuardViolationError(errs.ReasonInvalidTransition, string(tag), s.String(), "current status is not valid")
	}
	if s.IsTerminal() {
		return errs.NewGuardViolationError(errs.ReasonAlreadyTerminal, string(tag), s.String(), "")
	}
	return nil
}

func ensureOneOf(tag ActionTag, s Status, allowed ...Status) error {
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return errs.NewGuardViolationError(errs.ReasonInvalidTransition, string(tag), s.String(), "")
}

// CanDispatch allows Dispatch from Received and Postponed.
func CanDispatch(s Status) error {
	if err := ensureNotTerminal(TagDispatch, s); err != nil {
		return err
	}
	return ensureOneOf(TagDispatch, s, Received, Postponed)
}

// CanLoad allows Load from any non-terminal status. Loading an order that is
// already active puts it back into its category's active status.
func CanLoad(s Status) error {
	return ensureNotTerminal(TagLoad, s)
}

// CanComplete allows Complete from any non-terminal status.
func CanComplete(s Status) error {
	return ensureNotTerminal(TagComplete, s)
}

// CanCancel allows Cancel from any non-terminal status.
func CanCancel(s Status) error {
	return ensureNotTerminal(TagCancel, s)
}

// CanPostpone allows Postpone from any non-terminal status when newDate is
// strictly after today.
func CanPostpone(s Status, newDate, today kernel.Date) error {
	if err := ensureNotTerminal(TagPostpone, s); err != nil {
		return err
	}
	if !newDate.After(today) {
		return errs.NewGuardViolationError(
			errs.ReasonInvalidDate,
			string(TagPostpone),
			s.String(),
			fmt.Sprintf("new date %s must be after %s", newDate, today),
		)
	}
	return nil
}

// CanOverride allows a manual status change from any non-terminal status to a
// different non-terminal status that is consistent with category c. Terminal
// statuses are only reachable through Complete and Cancel, which record the
// completion and cancellation details.
func CanOverride(s Status, target Status, c Category) error {
	if err := ensureNotTerminal(TagOverrideStatus, s); err != nil {
		return err
	}
	if target == s {
		return errs.NewGuardViolationError(
			errs.ReasonInvalidTransition, string(TagOverrideStatus), s.String(), "status is unchanged",
		)
	}
	if target.IsTerminal() {
		return errs.NewGuardViolationError(
			errs.ReasonInvalidTransition,
			string(TagOverrideStatus),
			s.String(),
			fmt.Sprintf("%s is only reachable through Complete or Cancel", target),
		)
	}
	if targetCategory, specific := categoryOf(target); specific && targetCategory != c {
		return errs.NewGuardViolationError(
			errs.ReasonInvalidTransition,
			string(TagOverrideStatus),
			s.String(),
			fmt.Sprintf("%s does not belong to category %s", target, c),
		)
	}
	return nil
}
