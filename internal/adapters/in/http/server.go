package http

import (
	"context"
	"log/slog"
	"net/http"

	"deliverytracker/internal/core/application/usecases/commands"
	"deliverytracker/internal/core/application/usecases/queries"
	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type WorkOrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateWorkOrderCommand) (*workorder.WorkOrder, error)
}

type ActionApplier interface {
	Handle(ctx context.Context, cmd commands.ApplyActionCommand) (*workorder.WorkOrder, error)
}

type WorkOrderFinder interface {
	Handle(ctx context.Context, query queries.GetWorkOrderQuery) (*workorder.WorkOrder, error)
}

type ActiveWorkOrderLister interface {
	Handle(ctx context.Context, query queries.GetActiveWorkOrdersQuery) ([]queries.WorkOrderSummary, error)
}

// Server implements servers.ServerInterface on top of the work order
// command and query handlers.
type Server struct {
	createHandler     WorkOrderCreator
	applyHandler      ActionApplier
	getHandler        WorkOrderFinder
	listActiveHandler ActiveWorkOrderLister
	logger            *slog.Logger
}

func NewServer(
	createHandler WorkOrderCreator,
	applyHandler ActionApplier,
	getHandler WorkOrderFinder,
	listActiveHandler ActiveWorkOrderLister,
	logger *slog.Logger,
) *Server {
	return &Server{
		createHandler:     createHandler,
		applyHandler:      applyHandler,
		getHandler:        getHandler,
		listActiveHandler: listActiveHandler,
		logger:            logger.With("component", "http_server"),
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// CreateWorkOrder handles POST /api/v1/workorders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var body servers.CreateWorkOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trackingNumber := ""
	if body.TrackingNumber != nil {
		trackingNumber = *body.TrackingNumber
	}

	cmd, err := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(),
		trackingNumber,
		body.RequestCategory,
		kernel.DateOf(body.VisitDate.Time),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	wo, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toWorkOrder(wo))
}

// ListActiveWorkOrders handles GET /api/v1/workorders/active.
func (s *Server) ListActiveWorkOrders(ctx echo.Context) error {
	summaries, err := s.listActiveHandler.Handle(ctx.Request().Context(), queries.NewGetActiveWorkOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.WorkOrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = toSummary(summary)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetWorkOrderByTrackingNumber handles GET /api/v1/workorders/tracking/{trackingNumber}.
func (s *Server) GetWorkOrderByTrackingNumber(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewGetWorkOrderByTrackingNumberQuery(trackingNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.find(ctx, query)
}

// GetWorkOrder handles GET /api/v1/workorders/{id}.
func (s *Server) GetWorkOrder(ctx echo.Context, id servers.WorkOrderID) error {
	woID, err := toKernelID(id)
	if err != nil {
		return s.respondError(ctx, err)
	}
	query, err := queries.NewGetWorkOrderByIDQuery(woID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.find(ctx, query)
}

// DispatchWorkOrder handles POST /api/v1/workorders/{id}/dispatch.
func (s *Server) DispatchWorkOrder(ctx echo.Context, id servers.WorkOrderID) error {
	return s.apply(ctx, id, workorder.DispatchAction{})
}

// LoadWorkOrder handles POST /api/v1/workorders/{id}/load.
func (s *Server) LoadWorkOrder(ctx echo.Context, id servers.WorkOrderID) error {
	return s.apply(ctx, id, workorder.LoadAction{})
}

// CompleteWorkOrder handles POST /api/v1/workorders/{id}/complete.
func (s *Server) CompleteWorkOrder(ctx echo.Context, id servers.WorkOrderID) error {
	var body servers.CompleteWorkOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	detail := workorder.CompletionDetail{
		CustomerRequested:         body.CustomerRequestedCompletion,
		FurnitureCompanyRequested: body.FurnitureCompanyRequestedCompletion,
		CompletedAt:               body.CompletedAt,
	}
	if body.DriverNotes != nil {
		detail.DriverNotes = *body.DriverNotes
	}
	if body.CompletionAudioFile != nil {
		detail.AudioEvidenceRef = *body.CompletionAudioFile
	}

	return s.apply(ctx, id, workorder.CompleteAction{Detail: detail})
}

// CancelWorkOrder handles POST /api/v1/workorders/{id}/cancel.
func (s *Server) CancelWorkOrder(ctx echo.Context, id servers.WorkOrderID) error {
	var body servers.CancelWorkOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := workorder.NewCancelAction(body.CancelReason)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.apply(ctx, id, action)
}

// PostponeWorkOrder handles POST /api/v1/workorders/{id}/postpone.
func (s *Server) PostponeWorkOrder(ctx echo.Context, id servers.WorkOrderID) error {
	var body servers.PostponeWorkOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := workorder.NewPostponeAction(kernel.DateOf(body.NewDate.Time), body.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.apply(ctx, id, action)
}

// OverrideWorkOrderStatus handles PUT /api/v1/workorders/{id}/status.
func (s *Server) OverrideWorkOrderStatus(ctx echo.Context, id servers.WorkOrderID) error {
	var body servers.OverrideWorkOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := workorder.ParseStatus(string(body.Status))
	if err != nil {
		return s.respondError(ctx, err)
	}
	action := workorder.OverrideStatusAction{Status: status}
	if body.Reason != nil {
		action.Reason = *body.Reason
	}
	return s.apply(ctx, id, action)
}

func (s *Server) find(ctx echo.Context, query queries.GetWorkOrderQuery) error {
	wo, err := s.getHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWorkOrder(wo))
}

func (s *Server) apply(ctx echo.Context, id servers.WorkOrderID, action workorder.Action) error {
	woID, err := toKernelID(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewApplyActionCommand(woID, action)
	if err != nil {
		return s.respondError(ctx, err)
	}

	wo, err := s.applyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWorkOrder(wo))
}
