package queries_test

import (
	"context"
	"testing"
	"time"

	"deliverytracker/internal/adapters/out/postgres"
	"deliverytracker/internal/adapters/out/postgres/pgtest"
	"deliverytracker/internal/adapters/out/postgres/workorderrepo"
	"deliverytracker/internal/core/application/usecases/queries"
	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/suite"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type WorkOrderQueriesTestSuite struct {
	suite.Suite
	database *pgtest.Database
	repo     *workorderrepo.GormWorkOrderRepository
	engine   *workorder.Engine
	now      time.Time
}

func (suite *WorkOrderQueriesTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres.Migrate(database.DB))
	suite.repo = workorderrepo.NewGormWorkOrderRepository(database.DB, nopTracker{})
	suite.engine = workorder.NewEngine()
	suite.now = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
}

func (suite *WorkOrderQueriesTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *WorkOrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.DB.Exec("TRUNCATE TABLE work_orders").Error)
}

// seed stores a work order and drives it through actions.
func (suite *WorkOrderQueriesTestSuite) seed(tracking, requestType, visit string, actions ...workorder.Action) *workorder.WorkOrder {
	ctx := context.Background()
	date, err := kernel.ParseDate(visit)
	suite.Require().NoError(err)
	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), tracking, requestType, date, suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, wo))

	for _, action := range actions {
		patch, applyErr := suite.engine.Apply(wo, action, suite.now)
		suite.Require().NoError(applyErr)
		wo, err = suite.repo.UpdateIfUnchanged(ctx, wo, patch)
		suite.Require().NoError(err)
	}
	return wo
}

func (suite *WorkOrderQueriesTestSuite) TestGetActiveWorkOrders_EmptyDatabase() {
	result, err := queries.NewGetActiveWorkOrdersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetActiveWorkOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *WorkOrderQueriesTestSuite) TestGetActiveWorkOrders_SkipsTerminalAndSortsByVisit() {
	cancel, err := workorder.NewCancelAction("duplicate")
	suite.Require().NoError(err)

	late := suite.seed("TRK-B", "general", "2026-10-30")
	early := suite.seed("TRK-A", "return", "2026-10-21", workorder.DispatchAction{}, workorder.LoadAction{})
	suite.seed("TRK-C", "general", "2026-10-19", cancel)
	suite.seed("TRK-D", "repair", "2026-10-20", workorder.LoadAction{}, workorder.CompleteAction{})

	result, err := queries.NewGetActiveWorkOrdersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetActiveWorkOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(early.ID()))
	suite.Equal("TRK-A", result[0].TrackingNumber)
	suite.Equal(workorder.Collection, result[0].Category)
	suite.Equal(workorder.InCollection, result[0].Status)
	suite.Equal("2026-10-21", result[0].VisitDate.String())
	suite.True(result[1].ID.IsEqual(late.ID()))
}

func (suite *WorkOrderQueriesTestSuite) TestGetActiveWorkOrders_InvalidQuery() {
	result, err := queries.NewGetActiveWorkOrdersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.GetActiveWorkOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetActiveWorkOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *WorkOrderQueriesTestSuite) TestCountByStatus() {
	suite.seed("TRK-1", "general", "2026-10-25")
	suite.seed("TRK-2", "general", "2026-10-25")
	suite.seed("TRK-3", "pickup", "2026-10-25", workorder.DispatchAction{})

	counts, err := queries.NewCountWorkOrdersByStatusQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewCountWorkOrdersByStatusQuery())

	suite.Require().NoError(err)
	suite.Len(counts, len(workorder.AllStatuses()))
	suite.Equal(int64(2), counts[workorder.Received])
	suite.Equal(int64(1), counts[workorder.Dispatched])
	suite.Equal(int64(0), counts[workorder.Cancelled])
}

func (suite *WorkOrderQueriesTestSuite) TestGetWorkOrder_ThroughRepository() {
	stored := suite.seed("TRK-42", "processing", "2026-10-25")
	handler := queries.NewGetWorkOrderQueryHandler(suite.repo)

	byNumber, err := queries.NewGetWorkOrderByTrackingNumberQuery("TRK-42")
	suite.Require().NoError(err)
	wo, err := handler.Handle(context.Background(), byNumber)
	suite.Require().NoError(err)
	suite.True(wo.ID().IsEqual(stored.ID()))
}

func TestWorkOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderQueriesTestSuite))
}
