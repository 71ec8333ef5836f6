// Package metrics считает операции витрины в Prometheus.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Recorder реализует domain.MetricsRecorder на собственном реестре,
// чтобы несколько прогонов в одном процессе не конфликтовали
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	orderTotal prometheus.Histogram
}

// NewRecorder создает Recorder и регистрирует метрики
func NewRecorder() *Recorder {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "operations_total",
		Help:      "Total number of storefront operations.",
	}, []string{"entity", "operation", "status"})
	orderTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "order_total",
		Help:      "Order total at placement.",
		Buckets:   []float64{1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(operations, orderTotal)

	return &Recorder{
		registry:   registry,
		operations: operations,
		orderTotal: orderTotal,
	}
}

// RecordOperation увеличивает счетчик операции со статусом success или error
func (r *Recorder) RecordOperation(entity, operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	r.operations.WithLabelValues(entity, operation, status).Inc()
}

func (r *Recorder) ObserveOrderTotal(total decimal.Decimal) {
	r.orderTotal.Observe(total.InexactFloat64())
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// OperationCount - значение счетчика для одного набора меток
type OperationCount struct {
	Entity    string
	Operation string
	Status    string
	Count     uint64
}

func (c OperationCount) String() string {
	return fmt.Sprintf("%s.%s[%s]=%d", c.Entity, c.Operation, c.Status, c.Count)
}

// Summary собирает счетчики операций, отсортированные по меткам
func (r *Recorder) Summary() ([]OperationCount, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to gather: %w", err)
	}

	var counts []OperationCount
	for _, family := range families {
		if family.GetName() != "storefront_operations_total" || family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range family.GetMetric() {
			c := OperationCount{Count: uint64(m.GetCounter().GetValue())}
			for _, label := range m.GetLabel() {
				switch label.GetName() {
				case "entity":
					c.Entity = label.GetValue()
				case "operation":
					c.Operation = label.GetValue()
				case "status":
					c.Status = label.GetValue()
				}
			}
			counts = append(counts, c)
		}
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Entity != counts[j].Entity {
			return counts[i].Entity < counts[j].Entity
		}
		if counts[i].Operation != counts[j].Operation {
			return counts[i].Operation < counts[j].Operation
		}
		return counts[i].Status < counts[j].Status
	})
	return counts, nil
}
