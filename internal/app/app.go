package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc/storefront-demo/internal/config"
	"github.com/avc/storefront-demo/internal/domain"
	"github.com/avc/storefront-demo/internal/metrics"
	"github.com/avc/storefront-demo/internal/narration"
	"github.com/avc/storefront-demo/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config  *config.Config
	logger  *zap.Logger
	runID   string
	metrics *metrics.Recorder
	deps    *dependencies
	closers []io.Closer
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, os.Stdout, logger)
}

// newApp собирает приложение, строки статуса пишутся в out
func newApp(cfg *config.Config, out io.Writer, logger *zap.Logger) (*App, error) {
	a := &App{
		config:  cfg,
		logger:  logger,
		runID:   uuid.NewString(),
		metrics: metrics.NewRecorder(),
	}

	sink, err := a.initNarration(out)
	if err != nil {
		a.close()
		return nil, err
	}

	publisher, closer, err := initPublisher(cfg, logger)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to init event publisher: %w", err)
	}
	a.closers = append(a.closers, closer)

	rt := service.Runtime{
		Guard:    domain.NewGuard(cfg.StrictLifecycle),
		Sink:     sink,
		Observer: service.NewObserver(publisher, a.metrics, logger, a.runID),
	}
	a.deps = initDependencies(cfg, rt, logger)

	return a, nil
}

// initNarration собирает приемник строк статуса: консоль, файл и лог
func (a *App) initNarration(out io.Writer) (domain.Sink, error) {
	sinks := []narration.Sink{narration.NewWriterSink(out)}

	if a.config.NarrationLog != "" {
		f, err := os.OpenFile(a.config.NarrationLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open narration log: %w", err)
		}
		a.closers = append(a.closers, f)
		sinks = append(sinks, narration.NewWriterSink(f))
	}

	if a.config.LogLevel == "debug" {
		sinks = append(sinks, narration.NewZapSink(a.logger.Named("narration")))
	}

	return narration.Tee(sinks...), nil
}

// Run запускает приложение и прерывает прогон по SIGINT/SIGTERM
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info("storefront run started",
		zap.String("run_id", a.runID),
		zap.String("mode", a.config.ScenarioMode),
		zap.Bool("strict", a.config.StrictLifecycle),
	)

	// Запуск worker pool
	if a.deps.workerPool != nil {
		a.deps.workerPool.Start(ctx)
		a.logger.Info("fulfillment pool started", zap.Int("workers", a.config.FulfillmentWorkers))
	}

	err := runScenario(ctx, a.deps)

	a.shutdown()
	if err != nil {
		a.logger.Error("storefront run failed", zap.String("run_id", a.runID), zap.Error(err))
		return err
	}

	a.logger.Info("storefront run finished", zap.String("run_id", a.runID))
	return nil
}

// shutdown останавливает пул, пишет итоги метрик и освобождает ресурсы
func (a *App) shutdown() {
	if a.deps.workerPool != nil {
		a.deps.workerPool.Stop()
		a.logger.Info("fulfillment pool stopped")
	}

	a.logSummary()
	a.close()
	_ = a.logger.Sync()
}

func (a *App) logSummary() {
	counts, err := a.metrics.Summary()
	if err != nil {
		a.logger.Warn("failed to summarise metrics", zap.Error(err))
		return
	}

	fields := make([]string, 0, len(counts))
	for _, c := range counts {
		fields = append(fields, c.String())
	}
	a.logger.Info("operations summary", zap.Strings("operations", fields))
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil
}
