// Package servers provides primitives to interact with the openapi HTTP API.
//
// Maintained by hand in the layout oapi-codegen v2.4.1 emits for api/openapi.yml.
// Running the go:generate line in api/api.go replaces it; check mapping.go and
// server.go in internal/adapters/in/http against the regenerated types.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for Category.
const (
	Collection  Category = "Collection"
	Remediation Category = "Remediation"
	Standard    Category = "Standard"
	Unknown     Category = "Unknown"
)

// Defines values for Status.
const (
	Cancelled            Status = "Cancelled"
	CompletedCollection  Status = "CompletedCollection"
	CompletedRemediation Status = "CompletedRemediation"
	CompletedStandard    Status = "CompletedStandard"
	Dispatched           Status = "Dispatched"
	InCollection         Status = "InCollection"
	InDelivery           Status = "InDelivery"
	InProcessing         Status = "InProcessing"
	Postponed            Status = "Postponed"
	Received             Status = "Received"
)

// CancelRequest defines model for CancelRequest.
type CancelRequest struct {
	CancelReason string `json:"cancelReason"`
}

// Category defines model for Category.
type Category string

// CompleteRequest defines model for CompleteRequest.
type CompleteRequest struct {
	CompletedAt                         *time.Time `json:"completedAt,omitempty"`
	CompletionAudioFile                 *string    `json:"completionAudioFile,omitempty"`
	CustomerRequestedCompletion         bool       `json:"customerRequestedCompletion"`
	DriverNotes                         *string    `json:"driverNotes,omitempty"`
	FurnitureCompanyRequestedCompletion bool       `json:"furnitureCompanyRequestedCompletion"`
}

// Completion defines model for Completion.
type Completion struct {
	CompletedAt                         time.Time `json:"completedAt"`
	CompletionAudioFile                 *string   `json:"completionAudioFile,omitempty"`
	CustomerRequestedCompletion         bool      `json:"customerRequestedCompletion"`
	DriverNotes                         string    `json:"driverNotes"`
	FurnitureCompanyRequestedCompletion bool      `json:"furnitureCompanyRequestedCompletion"`
}

// Error defines model for Error.
type Error struct {
	Code    int32   `json:"code"`
	Message string  `json:"message"`
	Reason  *string `json:"reason,omitempty"`
}

// NewWorkOrder defines model for NewWorkOrder.
type NewWorkOrder struct {
	RequestCategory string             `json:"requestCategory"`
	TrackingNumber  *string            `json:"trackingNumber,omitempty"`
	VisitDate       openapi_types.Date `json:"visitDate"`
}

// PostponeRequest defines model for PostponeRequest.
type PostponeRequest struct {
	NewDate openapi_types.Date `json:"newDate"`
	Reason  string             `json:"reason"`
}

// Status defines model for Status.
type Status string

// StatusOverrideRequest defines model for StatusOverrideRequest.
type StatusOverrideRequest struct {
	Reason *string `json:"reason,omitempty"`
	Status Status  `json:"status"`
}

// WorkOrder defines model for WorkOrder.
type WorkOrder struct {
	AuditTrail      []string           `json:"auditTrail"`
	CanceledAt      *time.Time         `json:"canceledAt,omitempty"`
	CancelReason    *string            `json:"cancelReason,omitempty"`
	Category        Category           `json:"category"`
	Completion      *Completion        `json:"completion,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	DriverNotes     string             `json:"driverNotes"`
	Id              openapi_types.UUID `json:"id"`
	RequestCategory string             `json:"requestCategory"`
	Status          Status             `json:"status"`
	TrackingNumber  string             `json:"trackingNumber"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Version         int64              `json:"version"`
	VisitDate       openapi_types.Date `json:"visitDate"`
}

// WorkOrderSummary defines model for WorkOrderSummary.
type WorkOrderSummary struct {
	Category       Category           `json:"category"`
	Id             openapi_types.UUID `json:"id"`
	Status         Status             `json:"status"`
	TrackingNumber string             `json:"trackingNumber"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	VisitDate      openapi_types.Date `json:"visitDate"`
}

// WorkOrderID defines model for WorkOrderID.
type WorkOrderID = openapi_types.UUID

// CreateWorkOrderJSONRequestBody defines body for CreateWorkOrder for application/json ContentType.
type CreateWorkOrderJSONRequestBody = NewWorkOrder

// CancelWorkOrderJSONRequestBody defines body for CancelWorkOrder for application/json ContentType.
type CancelWorkOrderJSONRequestBody = CancelRequest

// CompleteWorkOrderJSONRequestBody defines body for CompleteWorkOrder for application/json ContentType.
type CompleteWorkOrderJSONRequestBody = CompleteRequest

// PostponeWorkOrderJSONRequestBody defines body for PostponeWorkOrder for application/json ContentType.
type PostponeWorkOrderJSONRequestBody = PostponeRequest

// OverrideWorkOrderStatusJSONRequestBody defines body for OverrideWorkOrderStatus for application/json ContentType.
type OverrideWorkOrderStatusJSONRequestBody = StatusOverrideRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a work order
	// (POST /api/v1/workorders)
	CreateWorkOrder(ctx echo.Context) error
	// List work orders that are not in a terminal status
	// (GET /api/v1/workorders/active)
	ListActiveWorkOrders(ctx echo.Context) error
	// Look up a work order by tracking number
	// (GET /api/v1/workorders/tracking/{trackingNumber})
	GetWorkOrderByTrackingNumber(ctx echo.Context, trackingNumber string) error
	// Get a work order
	// (GET /api/v1/workorders/{id})
	GetWorkOrder(ctx echo.Context, id WorkOrderID) error
	// Cancel the work order
	// (POST /api/v1/workorders/{id}/cancel)
	CancelWorkOrder(ctx echo.Context, id WorkOrderID) error
	// Complete the work order
	// (POST /api/v1/workorders/{id}/complete)
	CompleteWorkOrder(ctx echo.Context, id WorkOrderID) error
	// Hand the work order to a driver
	// (POST /api/v1/workorders/{id}/dispatch)
	DispatchWorkOrder(ctx echo.Context, id WorkOrderID) error
	// Move the work order into its category's active status
	// (POST /api/v1/workorders/{id}/load)
	LoadWorkOrder(ctx echo.Context, id WorkOrderID) error
	// Move the visit to a later date
	// (POST /api/v1/workorders/{id}/postpone)
	PostponeWorkOrder(ctx echo.Context, id WorkOrderID) error
	// Set a non-terminal status manually
	// (PUT /api/v1/workorders/{id}/status)
	OverrideWorkOrderStatus(ctx echo.Context, id WorkOrderID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateWorkOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateWorkOrder(ctx)
	return err
}

// ListActiveWorkOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListActiveWorkOrders(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListActiveWorkOrders(ctx)
	return err
}

// GetWorkOrderByTrackingNumber converts echo context to params.
func (w *ServerInterfaceWrapper) GetWorkOrderByTrackingNumber(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "trackingNumber" -------------
	var trackingNumber string

	err = runtime.BindStyledParameterWithOptions("simple", "trackingNumber", ctx.Param("trackingNumber"), &trackingNumber, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter trackingNumber: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWorkOrderByTrackingNumber(ctx, trackingNumber)
	return err
}

// GetWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetWorkOrder(ctx echo.Context) error {
	id, err := bindWorkOrderID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWorkOrder(ctx, id)
	return err
}

// CancelWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelWorkOrder(ctx echo.Context) error {
	id, err := bindWorkOrderID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelWorkOrder(ctx, id)
	return err
}

// CompleteWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteWorkOrder(ctx echo.Context) error {
	id, err := bindWorkOrderID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompleteWorkOrder(ctx, id)
	return err
}

// DispatchWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DispatchWorkOrder(ctx echo.Context) error {
	id, err := bindWorkOrderID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DispatchWorkOrder(ctx, id)
	return err
}

// LoadWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) LoadWorkOrder(ctx echo.Context) error {
	id, err := bindWorkOrderID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.LoadWorkOrder(ctx, id)
	return err
}

// PostponeWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PostponeWorkOrder(ctx echo.Context) error {
	id, err := bindWorkOrderID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostponeWorkOrder(ctx, id)
	return err
}

// OverrideWorkOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) OverrideWorkOrderStatus(ctx echo.Context) error {
	id, err := bindWorkOrderID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.OverrideWorkOrderStatus(ctx, id)
	return err
}

func bindWorkOrderID(ctx echo.Context) (WorkOrderID, error) {
	// ------------- Path parameter "id" -------------
	var id WorkOrderID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/workorders", wrapper.CreateWorkOrder)
	router.GET(baseURL+"/api/v1/workorders/active", wrapper.ListActiveWorkOrders)
	router.GET(baseURL+"/api/v1/workorders/tracking/:trackingNumber", wrapper.GetWorkOrderByTrackingNumber)
	router.GET(baseURL+"/api/v1/workorders/:id", wrapper.GetWorkOrder)
	router.POST(baseURL+"/api/v1/workorders/:id/cancel", wrapper.CancelWorkOrder)
	router.POST(baseURL+"/api/v1/workorders/:id/complete", wrapper.CompleteWorkOrder)
	router.POST(baseURL+"/api/v1/workorders/:id/dispatch", wrapper.DispatchWorkOrder)
	router.POST(baseURL+"/api/v1/workorders/:id/load", wrapper.LoadWorkOrder)
	router.POST(baseURL+"/api/v1/workorders/:id/postpone", wrapper.PostponeWorkOrder)
	router.PUT(baseURL+"/api/v1/workorders/:id/status", wrapper.OverrideWorkOrderStatus)
}
