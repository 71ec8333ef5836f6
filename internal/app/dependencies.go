package app

import (
	"io"

	"github.com/avc/storefront-demo/internal/config"
	"github.com/avc/storefront-demo/internal/domain"
	"github.com/avc/storefront-demo/internal/events"
	"github.com/avc/storefront-demo/internal/repository/memory"
	"github.com/avc/storefront-demo/internal/service"
	"github.com/avc/storefront-demo/internal/worker"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	accounts   *service.AccountService
	catalog    *service.CatalogService
	orders     *service.OrderService
	payments   *service.PaymentService
	deliveries *service.DeliveryService
	reviews    *service.ReviewService
}

// fulfillment - результат обработки доставки воркером
type fulfillment struct {
	deliveryID int64
	err        error
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	store      *memory.Store
	services   *services
	workerPool *worker.Pool
	fulfilled  chan fulfillment
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, rt service.Runtime, logger *zap.Logger) *dependencies {
	// Хранилище сущностей
	store := memory.NewStore()

	// Создание сервисов
	svcs := &services{
		accounts: service.NewAccountService(store, rt, logger),
		catalog:  service.NewCatalogService(store, store, rt),
		orders: service.NewOrderService(service.OrderRepositories{
			Orders:     store,
			Users:      store,
			Products:   store,
			Promos:     store,
			Payments:   store,
			Deliveries: store,
		}, rt),
		payments:   service.NewPaymentService(store, rt),
		deliveries: service.NewDeliveryService(store, store, rt),
		reviews:    service.NewReviewService(store, store, store, rt),
	}

	deps := &dependencies{
		store:    store,
		services: svcs,
	}

	// Worker pool нужен только в асинхронном режиме
	if cfg.ScenarioMode == config.ModeAsync && cfg.FulfillmentWorkers > 0 {
		deps.fulfilled = make(chan fulfillment, cfg.FulfillmentQueueSize)
		deps.workerPool = worker.NewPool(
			cfg.FulfillmentWorkers,
			cfg.FulfillmentQueueSize,
			svcs.deliveries,
			logger.Named("fulfillment"),
			worker.WithScanInterval(cfg.FulfillmentScanInterval),
			worker.WithOnDone(func(deliveryID int64, err error) {
				select {
				case deps.fulfilled <- fulfillment{deliveryID: deliveryID, err: err}:
				default:
				}
			}),
		)
	}

	return deps
}

// initPublisher выбирает издателя событий: Kafka, если заданы брокеры, иначе Nop
func initPublisher(cfg *config.Config, logger *zap.Logger) (domain.EventPublisher, io.Closer, error) {
	brokers := events.ParseBrokers(cfg.KafkaBrokers)
	if len(brokers) == 0 {
		logger.Debug("kafka brokers not configured, events are discarded")
		return events.Nop{}, events.Nop{}, nil
	}

	publisher, err := events.NewKafkaPublisher(brokers, cfg.KafkaTopic)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("publishing events to kafka", zap.Strings("brokers", brokers))
	return publisher, publisher, nil
}
