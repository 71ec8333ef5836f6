package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}

// ProductRepository определяет методы для работы с каталогом
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id int64) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

// PromoRepository определяет методы для работы с промокодами
type PromoRepository interface {
	CreatePromoCode(ctx context.Context, promo *PromoCode) error
	GetPromoCode(ctx context.Context, code string) (*PromoCode, error)
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrder(ctx context.Context, id int64) (*Order, error)
	UpdateOrder(ctx context.Context, order *Order) error
}

// PaymentRepository определяет методы для работы с платежами
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPayment(ctx context.Context, id int64) (*Payment, error)
	UpdatePayment(ctx context.Context, payment *Payment) error
}

// CourierRepository определяет методы для работы с курьерами
type CourierRepository interface {
	CreateCourier(ctx context.Context, courier *Courier) error
	GetCourier(ctx context.Context, id int64) (*Courier, error)
}

// DeliveryRepository определяет методы для работы с доставками
type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery *Delivery) error
	GetDelivery(ctx context.Context, id int64) (*Delivery, error)
	UpdateDelivery(ctx context.Context, delivery *Delivery) error
	GetPendingDeliveries(ctx context.Context) ([]*Delivery, error)
}

// ReviewRepository определяет методы для работы с отзывами
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReviewsByProduct(ctx context.Context, productID int64) ([]*Review, error)
}

// EventPublisher публикует события жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// MetricsRecorder учитывает выполненные операции
type MetricsRecorder interface {
	RecordOperation(entity, operation string, err error)
	ObserveOrderTotal(total decimal.Decimal)
}
