package commands

import (
	"errors"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/pkg/errs"
	"deliverytracker/internal/pkg/guard"
)

var ErrApplyActionCommandIsNotConstructed = errors.New(
	"ApplyActionCommand must be created via NewApplyActionCommand constructor",
)

// ApplyActionCommand asks for one lifecycle action on one work order.
//
// Example:
//
//	cancel, _ := workorder.NewCancelAction("out of stock")
//	cmd, _ := NewApplyActionCommand(id, cancel)
//	wo, err := handler.Handle(ctx, cmd)
type ApplyActionCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	action      workorder.Action

	guard guard.ConstructorGuard
}

func NewApplyActionCommand(workOrderID kernel.UUID, action workorder.Action) (ApplyActionCommand, error) {
	cmd := ApplyActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setAction(action),
	); err != nil {
		return ApplyActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyActionCommandIsNotConstructed)
}

func (c ApplyActionCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c ApplyActionCommand) Action() workorder.Action {
	return c.action
}

func (c *ApplyActionCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.workOrderID = id
	return nil
}

func (c *ApplyActionCommand) setAction(action workorder.Action) error {
	if action == nil {
		return errs.NewValueIsRequiredError("action")
	}

	c.action = action
	return nil
}
