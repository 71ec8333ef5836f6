// Package events публикует события жизненного цикла витрины.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avc/storefront-demo/internal/domain"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic используется, если топик не задан в конфигурации
const DefaultTopic = "storefront_events"

var ErrDisabled = errors.New("kafka disabled")

// messageWriter - часть kafka.Writer, которая нужна издателю
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события в Kafka в виде JSON, ключ - ID сущности
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// ParseBrokers разбирает список брокеров через запятую
func ParseBrokers(brokersCSV string) []string {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewKafkaPublisher создает издателя для списка брокеров
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, ErrDisabled
	}
	if topic == "" {
		topic = DefaultTopic
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer, topic: topic}, nil
}

// Publish сериализует событие и отправляет его в топик
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	msg, err := Encode(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: failed to publish %s to %s: %w", event.Type, p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Encode превращает событие в сообщение Kafka
func Encode(event domain.Event) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.EntityID, 10)),
		Value: data,
		Time:  event.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}, nil
}

// Nop отбрасывает события. Используется, когда брокеры не настроены.
type Nop struct{}

func (Nop) Publish(context.Context, domain.Event) error { return nil }

func (Nop) Close() error { return nil }

// Memory запоминает опубликованные события
type Memory struct {
	mu     sync.Mutex
	events []domain.Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Publish(_ context.Context, event domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *Memory) Close() error { return nil }

// Events возвращает копию опубликованных событий
func (m *Memory) Events() []domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Event(nil), m.events...)
}

// Types возвращает типы опубликованных событий по порядку
func (m *Memory) Types() []domain.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]domain.EventType, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type)
	}
	return types
}
