package commands

import (
	"errors"
	"strings"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/pkg/errs"
	"deliverytracker/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand registers a new work order in Received.
//
// Example:
//
//	visit, _ := kernel.ParseDate("2026-10-25")
//	cmd, err := NewCreateWorkOrderCommand(kernel.NewUUID(), "", "marketplace-A", visit)
//	if err != nil {
//	    return fmt.Errorf("invalid work order: %w", err)
//	}
//	wo, err := handler.Handle(ctx, cmd)
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID    kernel.UUID
	trackingNumber string
	requestType    string
	visitDate      kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand validates the intake request. An empty tracking
// number is allowed and replaced by a generated one.
func NewCreateWorkOrderCommand(
	workOrderID kernel.UUID,
	trackingNumber string,
	requestType string,
	visitDate kernel.Date,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		trackingNumber: strings.TrimSpace(trackingNumber),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setRequestType(requestType),
		cmd.setVisitDate(visitDate),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c CreateWorkOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c CreateWorkOrderCommand) RequestType() string {
	return c.requestType
}

func (c CreateWorkOrderCommand) VisitDate() kernel.Date {
	return c.visitDate
}

func (c *CreateWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.workOrderID = id
	return nil
}

func (c *CreateWorkOrderCommand) setRequestType(requestType string) error {
	requestType = strings.TrimSpace(requestType)
	if requestType == "" {
		return errs.NewValueIsRequiredError("requestCategory")
	}

	c.requestType = requestType
	return nil
}

func (c *CreateWorkOrderCommand) setVisitDate(visitDate kernel.Date) error {
	if err := visitDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("visitDate", err)
	}

	c.visitDate = visitDate
	return nil
}
