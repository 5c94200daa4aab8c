package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/notifications"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(),
		dispatcher: notifications.NewDispatcher(notifier, configs.NotificationQueueSize, logger),
		logger:     logger,
	}
}

// Close drains the notifications still queued for delivery.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return c.dispatcher.Close(ctx)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher, c.configs.FeePercent)
}

func (c *CompositionRoot) CreateSubmitProofCommandHandler() commands.SubmitProofCommandHandler {
	return commands.NewSubmitProofCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher)
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() commands.ConfirmReceiptCommandHandler {
	return commands.NewConfirmReceiptCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	return commands.NewOpenDisputeCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	return commands.NewSubmitReviewCommandHandler(c.reviewUoWFactory(), c.clock, services.NewRatingAggregator())
}

func (c *CompositionRoot) CreateEscalateOverdueOrdersCommandHandler() commands.EscalateOverdueOrdersCommandHandler {
	return commands.NewEscalateOverdueOrdersCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher)
}

func (c *CompositionRoot) CreateSendPaymentRemindersCommandHandler() commands.SendPaymentRemindersCommandHandler {
	return commands.NewSendPaymentRemindersCommandHandler(c.orderUoWFactory(), c.clock, c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserRatingQueryHandler() queries.GetUserRatingQueryHandler {
	return queries.NewGetUserRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUserReviewsQueryHandler() queries.ListUserReviewsQueryHandler {
	return queries.NewListUserReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	submitProof := c.CreateSubmitProofCommandHandler()
	confirmReceipt := c.CreateConfirmReceiptCommandHandler()
	confirmDelivery := c.CreateConfirmDeliveryCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	openDispute := c.CreateOpenDisputeCommandHandler()
	submitReview := c.CreateSubmitReviewCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     &createOrder,
		SubmitProof:     &submitProof,
		ConfirmReceipt:  &confirmReceipt,
		ConfirmDelivery: &confirmDelivery,
		CancelOrder:     &cancelOrder,
		OpenDispute:     &openDispute,
		SubmitReview:    &submitReview,
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListUserOrders:  c.CreateListUserOrdersQueryHandler(),
		GetUserRating:   c.CreateGetUserRatingQueryHandler(),
		ListUserReviews: c.CreateListUserReviewsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	escalate := c.CreateEscalateOverdueOrdersCommandHandler()
	remind := c.CreateSendPaymentRemindersCommandHandler()

	return jobs.NewJobManager(
		jobs.NewEscalationJob(&escalate, c.configs.EscalationSchedule, c.configs.EscalationBatchSize, c.logger),
		jobs.NewPaymentReminderJob(&remind, c.configs.ReminderSchedule, c.configs.EscalationBatchSize, c.logger),
	)
}

// NewNotifier publishes to Kafka, de-duplicated through Redis when
// REDIS_ADDR is set. The returned func releases both clients.
func NewNotifier(ctx context.Context, configs Config) (ports.Notifier, func() error, error) {
	publisher := kafka.NewNotifier(configs.KafkaBrokers, configs.KafkaNotificationsTopic)
	if configs.RedisAddr == "" {
		return publisher, publisher.Close, nil
	}

	client, err := redis.NewClient(ctx, configs.RedisAddr)
	if err != nil {
		_ = publisher.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closeAll := func() error {
		return errors.Join(publisher.Close(), client.Close())
	}
	return redis.NewDedupNotifier(client, publisher), closeAll, nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
