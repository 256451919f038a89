package cmd

import (
	"log/slog"
	"strings"
	"time"

	httpadapter "deliverytracker/internal/adapters/in/http"
	"deliverytracker/internal/adapters/out/kafka"
	"deliverytracker/internal/adapters/out/logpublisher"
	"deliverytracker/internal/adapters/out/postgres"
	"deliverytracker/internal/adapters/out/rabbitmq"
	"deliverytracker/internal/core/application/usecases/commands"
	"deliverytracker/internal/core/application/usecases/queries"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/core/ports"
	"deliverytracker/internal/jobs"
	"deliverytracker/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	engine     *workorder.Engine
	publisher  ports.EventPublisher
	registry   *prometheus.Registry
	metrics    *metrics.WorkOrderMetrics
	logger     *slog.Logger
	closers    []func() error
}

// NewCompositionRoot connects the configured event broker and builds the
// shared dependencies. Close releases the broker connections.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     workorder.NewEngine(),
		registry:   registry,
		metrics:    metrics.NewWorkOrderMetrics(registry),
		logger:     logger,
	}

	publisher, err := c.newEventPublisher()
	if err != nil {
		return nil, err
	}
	c.publisher = publisher
	return c, nil
}

func (c *CompositionRoot) newEventPublisher() (ports.EventPublisher, error) {
	switch c.cfg.EventBroker {
	case BrokerKafka:
		p := kafka.NewPublisher(kafka.NewWriter(strings.Split(c.cfg.KafkaHost, ",")...), c.logger)
		c.closers = append(c.closers, p.Close)
		return p, nil
	case BrokerRabbitMQ:
		conn, ch, err := rabbitmq.Dial(c.cfg.RabbitMQURL)
		if err != nil {
			return nil, err
		}
		p, err := rabbitmq.NewPublisher(ch, c.cfg.RabbitMQExchange, c.logger)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		c.closers = append(c.closers, p.Close, conn.Close)
		return p, nil
	default:
		return logpublisher.NewPublisher(c.logger), nil
	}
}

// Close releases broker resources in the order they were acquired.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Warn("Failed to close resource", "error", err)
		}
	}
}

func (c *CompositionRoot) workOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(
		c.workOrderUoWFactory(),
		c.publisher,
		c.cfg.KafkaWorkOrderChangedTopic,
		time.Now,
		c.logger,
	)
}

func (c *CompositionRoot) CreateApplyActionCommandHandler() commands.ApplyActionCommandHandler {
	return commands.NewApplyActionCommandHandler(
		c.workOrderUoWFactory(),
		c.engine,
		c.publisher,
		c.metrics,
		time.Now,
		commands.ApplyActionSettings{
			Topic:       c.cfg.KafkaWorkOrderChangedTopic,
			MaxAttempts: c.cfg.MaxActionAttempts,
			Location:    c.cfg.Timezone,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.uowFactory.Create().WorkOrderRepository())
}

func (c *CompositionRoot) CreateGetActiveWorkOrdersQueryHandler() queries.GetActiveWorkOrdersQueryHandler {
	return queries.NewGetActiveWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountWorkOrdersByStatusQueryHandler() queries.CountWorkOrdersByStatusQueryHandler {
	return queries.NewCountWorkOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createHandler := c.CreateCreateWorkOrderCommandHandler()
	applyHandler := c.CreateApplyActionCommandHandler()
	return httpadapter.NewServer(
		&createHandler,
		&applyHandler,
		c.CreateGetWorkOrderQueryHandler(),
		c.CreateGetActiveWorkOrdersQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	snapshot := jobs.NewStatusSnapshotJob(
		c.CreateCountWorkOrdersByStatusQueryHandler(),
		c.metrics,
		c.cfg.StatusSnapshotSchedule,
		c.logger,
	)
	return jobs.NewJobManager(c.logger, snapshot)
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}
