package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/storefront-demo/internal/domain"
	"go.uber.org/zap"
)

// Fulfiller - операции доставки, которые выполняет пул
type Fulfiller interface {
	GetDelivery(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
	Send(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
	Track(ctx context.Context, deliveryID int64) (domain.DeliveryStatus, error)
	Complete(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
	PendingDeliveries(ctx context.Context) ([]*domain.Delivery, error)
}

// Option настраивает Pool
type Option func(*Pool)

// WithScanInterval задает период сканирования незавершенных доставок
func WithScanInterval(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.scanInterval = d
		}
	}
}

// WithOnDone задает функцию, которую воркер вызывает после обработки доставки
func WithOnDone(fn func(deliveryID int64, err error)) Option {
	return func(p *Pool) {
		p.onDone = fn
	}
}

// Pool представляет пул воркеров, которые доводят доставки до Completed
type Pool struct {
	workers      int
	queue        chan int64
	fulfiller    Fulfiller
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	onDone       func(deliveryID int64, err error)

	mu       sync.Mutex
	inFlight map[int64]struct{}
	cancel   context.CancelFunc
	stopped  bool
}

// NewPool создает новый worker pool
func NewPool(workers, queueSize int, fulfiller Fulfiller, logger *zap.Logger, opts ...Option) *Pool {
	p := &Pool{
		workers:      workers,
		queue:        make(chan int64, queueSize),
		fulfiller:    fulfiller,
		logger:       logger,
		scanInterval: 10 * time.Second,
		inFlight:     make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер незавершенных доставок
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool и ждет завершения воркеров.
// Доставки, оставшиеся в очереди, не обрабатываются.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.stopped = true
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Enqueue ставит доставку в очередь. Возвращает false, если доставка
// уже обрабатывается, очередь заполнена или пул остановлен.
func (p *Pool) Enqueue(deliveryID int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return false
	}
	if _, ok := p.inFlight[deliveryID]; ok {
		return false
	}

	select {
	case p.queue <- deliveryID:
		p.inFlight[deliveryID] = struct{}{}
		return true
	default:
		p.logger.Warn("queue is full, skipping delivery", zap.Int64("delivery_id", deliveryID))
		return false
	}
}

func (p *Pool) release(deliveryID int64) {
	p.mu.Lock()
	delete(p.inFlight, deliveryID)
	p.mu.Unlock()
}

// worker обрабатывает доставки из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Debug("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("worker stopping", zap.Int("worker_id", id))
			return
		case deliveryID := <-p.queue:
			err := p.processDelivery(ctx, deliveryID)
			p.release(deliveryID)
			if p.onDone != nil {
				p.onDone(deliveryID, err)
			}
		}
	}
}

// scanner периодически сканирует незавершенные доставки
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("scanner stopping")
			return
		case <-ticker.C:
			p.scanPendingDeliveries(ctx)
		}
	}
}

// scanPendingDeliveries ставит в очередь доставки оплаченных заказов
func (p *Pool) scanPendingDeliveries(ctx context.Context) {
	deliveries, err := p.fulfiller.PendingDeliveries(ctx)
	if err != nil {
		p.logger.Error("failed to get pending deliveries", zap.Error(err))
		return
	}

	for _, delivery := range deliveries {
		if ctx.Err() != nil {
			return
		}
		p.Enqueue(delivery.ID)
	}
}

// processDelivery отправляет доставку, если она еще не отправлена,
// сообщает ее статус и завершает
func (p *Pool) processDelivery(ctx context.Context, deliveryID int64) error {
	p.logger.Debug("processing delivery", zap.Int64("delivery_id", deliveryID))

	delivery, err := p.fulfiller.GetDelivery(ctx, deliveryID)
	if err != nil {
		p.logger.Error("failed to get delivery", zap.Int64("delivery_id", deliveryID), zap.Error(err))
		return err
	}

	if delivery.Status == domain.DeliveryStatusProcessing {
		if _, err := p.fulfiller.Send(ctx, deliveryID); err != nil {
			p.logger.Error("failed to send delivery", zap.Int64("delivery_id", deliveryID), zap.Error(err))
			return err
		}
	}

	if _, err := p.fulfiller.Track(ctx, deliveryID); err != nil {
		p.logger.Error("failed to track delivery", zap.Int64("delivery_id", deliveryID), zap.Error(err))
		return err
	}

	if _, err := p.fulfiller.Complete(ctx, deliveryID); err != nil {
		p.logger.Error("failed to complete delivery", zap.Int64("delivery_id", deliveryID), zap.Error(err))
		return err
	}

	p.logger.Info("delivery completed", zap.Int64("delivery_id", deliveryID))
	return nil
}
