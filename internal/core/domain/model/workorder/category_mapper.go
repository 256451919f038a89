package workorder

import (
	"fmt"

	"deliverytracker/internal/pkg/errs"
)

// ErrCategoryIsUnknown is returned by the mapper for a category outside the table.
var ErrCategoryIsUnknown = errs.NewValueIsInvalidError("category is unknown")

type categoryStatusPair struct {
	active    Status
	completed Status
}

// categoryStatuses is the single place that ties a category to its status
// variants. Adding a category means adding one row here.
var categoryStatuses = map[Category]categoryStatusPair{
	Standard:    {active: InDelivery, completed: CompletedStandard},
	Collection:  {active: InCollection, completed: CompletedCollection},
	Remediation: {active: InProcessing, completed: CompletedRemediation},
}

// ActiveStatus returns the status an order of category c enters on Load.
func ActiveStatus(c Category) (Status, error) {
	pair, ok := categoryStatuses[c]
	if !ok {
		return Unknown, fmt.Errorf("%w: %d", ErrCategoryIsUnknown, c)
	}
	return pair.active, nil
}

// CompletedStatus returns the terminal status an order of category c enters on Complete.
func CompletedStatus(c Category) (Status, error) {
	pair, ok := categoryStatuses[c]
	if !ok {
		return Unknown, fmt.Errorf("%w: %d", ErrCategoryIsUnknown, c)
	}
	return pair.completed, nil
}

// categoryOf returns the category a category-specific status belongs to.
// Shared statuses (Received, Dispatched, Postponed, Cancelled) report false.
func categoryOf(s Status) (Category, bool) {
	for c, pair := range categoryStatuses {
		if pair.active == s || pair.completed == s {
			return c, true
		}
	}
	return UnknownCategory, false
}
