package domain

import "time"

// EventType представляет тип события жизненного цикла
type EventType string

const (
	EventUserRegistered    EventType = "user.registered"
	EventProductCreated    EventType = "product.created"
	EventOrderCreated      EventType = "order.created"
	EventOrderPlaced       EventType = "order.placed"
	EventOrderPaid         EventType = "order.paid"
	EventOrderCancelled    EventType = "order.cancelled"
	EventPaymentRefunded   EventType = "payment.refunded"
	EventDeliverySent      EventType = "delivery.sent"
	EventDeliveryCompleted EventType = "delivery.completed"
	EventReviewLeft        EventType = "review.left"
)

// Event описывает событие, которое публикуется после успешной операции
type Event struct {
	ID         string         `json:"event_id"`
	RunID      string         `json:"run_id"`
	Type       EventType      `json:"type"`
	EntityID   int64          `json:"entity_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}
