package service

import (
	"context"
	"time"

	"github.com/avc/storefront-demo/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Observer публикует события и пишет метрики после операций сервисов.
// Нулевой Observer (nil) ничего не делает.
type Observer struct {
	publisher domain.EventPublisher
	metrics   domain.MetricsRecorder
	logger    *zap.Logger
	runID     string
	now       func() time.Time
}

// NewObserver создает Observer. Любая из зависимостей может быть nil.
func NewObserver(publisher domain.EventPublisher, metrics domain.MetricsRecorder, logger *zap.Logger, runID string) *Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Observer{
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		runID:     runID,
		now:       time.Now,
	}
}

func (o *Observer) RunID() string {
	if o == nil {
		return ""
	}
	return o.runID
}

func (o *Observer) record(entity, operation string, err error) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.RecordOperation(entity, operation, err)
}

func (o *Observer) observeTotal(total decimal.Decimal) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.ObserveOrderTotal(total)
}

// publish отправляет событие. Ошибка публикации только логируется:
// операция над сущностью к этому моменту уже сохранена.
func (o *Observer) publish(ctx context.Context, eventType domain.EventType, entityID int64, payload map[string]any) {
	if o == nil || o.publisher == nil {
		return
	}

	event := domain.Event{
		ID:         uuid.NewString(),
		RunID:      o.runID,
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: o.now(),
		Payload:    payload,
	}
	if err := o.publisher.Publish(ctx, event); err != nil {
		o.logger.Warn("Failed to publish event",
			zap.String("type", string(eventType)),
			zap.Int64("entity_id", entityID),
			zap.Error(err),
		)
	}
}
