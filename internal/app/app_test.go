package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avc/storefront-demo/internal/config"
	"github.com/avc/storefront-demo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var expectedNarration = []string{
	"Alibek registered.",
	"Order placed. Total: 450000.0",
	"Payment processed: 450000.0",
	"Delivery sent.",
	"Delivery status: Sent",
	"Delivery completed.",
}

func testConfig(mode string, strict bool) *config.Config {
	return &config.Config{
		LogLevel:                "info",
		StrictLifecycle:         strict,
		ScenarioMode:            mode,
		FulfillmentWorkers:      2,
		FulfillmentQueueSize:    10,
		FulfillmentScanInterval: time.Hour,
	}
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestApp_Run(t *testing.T) {
	cases := []struct {
		name   string
		mode   string
		strict bool
	}{
		{name: "Sync permissive", mode: config.ModeSync},
		{name: "Sync strict", mode: config.ModeSync, strict: true},
		{name: "Async permissive", mode: config.ModeAsync},
		{name: "Async strict", mode: config.ModeAsync, strict: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			a, err := newApp(testConfig(tc.mode, tc.strict), &out, zap.NewNop())
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			require.NoError(t, a.run(ctx))
			assert.Equal(t, expectedNarration, lines(&out))

			order, err := a.deps.store.GetOrder(ctx, demoOrderID)
			require.NoError(t, err)
			assert.Equal(t, domain.OrderStatusPaid, order.Status)
			assert.Equal(t, "450000", order.TotalSum.String())

			delivery, err := a.deps.store.GetDelivery(ctx, demoDeliveryID)
			require.NoError(t, err)
			assert.Equal(t, domain.DeliveryStatusCompleted, delivery.Status)
		})
	}
}

func TestApp_NarrationLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narration.log")
	cfg := testConfig(config.ModeSync, false)
	cfg.NarrationLog = path

	var out bytes.Buffer
	a, err := newApp(cfg, &out, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, a.run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(data))
}

func TestApp_Summary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var out bytes.Buffer
	a, err := newApp(testConfig(config.ModeSync, false), &out, zap.New(core))
	require.NoError(t, err)
	require.NoError(t, a.run(context.Background()))

	entries := logs.FilterMessage("operations summary").All()
	require.Len(t, entries, 1)
	operations := entries[0].ContextMap()["operations"]
	assert.Contains(t, operations, "order.place[success]=1")
	assert.Contains(t, operations, "delivery.complete[success]=1")
}
