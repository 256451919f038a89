package queries

import (
	"errors"
	"strings"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/pkg/errs"
	"deliverytracker/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderByIDQuery or NewGetWorkOrderByTrackingNumberQuery",
)

// GetWorkOrderQuery loads one work order by id or by tracking number.
type GetWorkOrderQuery struct {
	id             kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewGetWorkOrderByIDQuery(id kernel.UUID) (GetWorkOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}
	return GetWorkOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func NewGetWorkOrderByTrackingNumberQuery(trackingNumber string) (GetWorkOrderQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return GetWorkOrderQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	return GetWorkOrderQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// ByTrackingNumber reports whether the lookup key is the tracking number.
func (q GetWorkOrderQuery) ByTrackingNumber() bool {
	return q.trackingNumber != ""
}
