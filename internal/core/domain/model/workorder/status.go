package workorder

import (
	"fmt"
	"strings"

	"deliverytracker/internal/pkg/errs"
)

// Status is the lifecycle state of a work order. The set is closed; storage
// and the HTTP boundary only ever exchange these values.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Received is the initial status of every work order.
	Received

	// Dispatched means the order was handed to a driver but has not started.
	Dispatched

	// InDelivery is the active status of Standard orders.
	InDelivery

	// InCollection is the active status of Collection orders.
	InCollection

	// InProcessing is the active status of Remediation orders.
	InProcessing

	// Postponed means the visit was moved to a later date. Not terminal.
	Postponed

	// Cancelled is terminal for every category.
	Cancelled

	// CompletedStandard is terminal for Standard orders.
	CompletedStandard

	// CompletedCollection is terminal for Collection orders.
	CompletedCollection

	// CompletedRemediation is terminal for Remediation orders.
	CompletedRemediation
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		Received:             "Received",
		Dispatched:           "Dispatched",
		InDelivery:           "InDelivery",
		InCollection:         "InCollection",
		InProcessing:         "InProcessing",
		Postponed:            "Postponed",
		Cancelled:            "Cancelled",
		CompletedStandard:    "CompletedStandard",
		CompletedCollection:  "CompletedCollection",
		CompletedRemediation: "CompletedRemediation",
	}
}

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{
		Received,
		Dispatched,
		InDelivery,
		InCollection,
		InProcessing,
		Postponed,
		Cancelled,
		CompletedStandard,
		CompletedCollection,
		CompletedRemediation,
	}
}

// ParseStatus accepts a status name, ignoring case and "_"/"-" separators
// (so "in_delivery" and "InDelivery" are the same).
func ParseStatus(s string) (Status, error) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if strings.EqualFold(status.String(), key) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate returns an error for Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if s <= Unknown || s > CompletedRemediation {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCompleted reports whether s is one of the Completed* variants.
func (s Status) IsCompleted() bool {
	return s == CompletedStandard || s == CompletedCollection || s == CompletedRemediation
}

// IsTerminal reports whether s absorbs every further action.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s.IsCompleted()
}

// TerminalStatuses returns Cancelled and every Completed* variant.
func TerminalStatuses() []Status {
	terminal := make([]Status, 0, 4)
	for _, s := range AllStatuses() {
		if s.IsTerminal() {
			terminal = append(terminal, s)
		}
	}
	return terminal
}
