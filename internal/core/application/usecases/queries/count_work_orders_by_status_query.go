package queries

import (
	"errors"

	"deliverytracker/internal/pkg/guard"
)

var ErrCountWorkOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountWorkOrdersByStatusQuery must be created via NewCountWorkOrdersByStatusQuery constructor",
)

// CountWorkOrdersByStatusQuery counts work orders per status. Statuses
// without any order are reported with a zero count.
type CountWorkOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountWorkOrdersByStatusQuery() CountWorkOrdersByStatusQuery {
	return CountWorkOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountWorkOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountWorkOrdersByStatusQueryIsNotConstructed)
}
