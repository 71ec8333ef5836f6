package narration

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriterSink_Emit(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	sink.Emit("Delivery sent.")
	sink.Emit("Delivery status: Sent")

	assert.Equal(t, "Delivery sent.\nDelivery status: Sent\n", buf.String())
}

func TestRecorder(t *testing.T) {
	t.Run("Keeps insertion order", func(t *testing.T) {
		rec := NewRecorder()
		rec.Emit("first")
		rec.Emit("second")

		assert.Equal(t, []string{"first", "second"}, rec.Lines())
	})

	t.Run("Lines returns a copy", func(t *testing.T) {
		rec := NewRecorder()
		rec.Emit("line")

		lines := rec.Lines()
		lines[0] = "changed"

		assert.Equal(t, []string{"line"}, rec.Lines())
	})

	t.Run("Reset", func(t *testing.T) {
		rec := NewRecorder()
		rec.Emit("line")
		rec.Reset()

		assert.Empty(t, rec.Lines())
	})

	t.Run("Concurrent emits", func(t *testing.T) {
		rec := NewRecorder()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec.Emit("x")
			}()
		}
		wg.Wait()

		assert.Len(t, rec.Lines(), 50)
	})
}

func TestZapSink_Emit(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewZapSink(zap.New(core))

	sink.Emit("Order cancelled.")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "narration", entries[0].Message)
		assert.Equal(t, "Order cancelled.", entries[0].ContextMap()["line"])
	}
}

func TestTee(t *testing.T) {
	first := NewRecorder()
	second := NewRecorder()

	sink := Tee(first, nil, second)
	sink.Emit("Product deleted.")

	assert.Equal(t, []string{"Product deleted."}, first.Lines())
	assert.Equal(t, []string{"Product deleted."}, second.Lines())
}
