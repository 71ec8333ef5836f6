// Package memory реализует репозитории витрины поверх map-ов в памяти.
// Store разрешает идентификаторы сущностей и отдает копии, так что
// вызывающая сторона сохраняет изменения явно через Update*.
package memory

import (
	"sync"

	"github.com/avc/storefront-demo/internal/domain"
)

// Store хранит все сущности витрины
type Store struct {
	mu sync.RWMutex

	users      map[int64]domain.User
	products   map[int64]domain.Product
	promos     map[string]domain.PromoCode
	orders     map[int64]*domain.Order
	payments   map[int64]domain.Payment
	couriers   map[int64]domain.Courier
	deliveries map[int64]domain.Delivery
	reviews    map[int64]domain.Review
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		users:      make(map[int64]domain.User),
		products:   make(map[int64]domain.Product),
		promos:     make(map[string]domain.PromoCode),
		orders:     make(map[int64]*domain.Order),
		payments:   make(map[int64]domain.Payment),
		couriers:   make(map[int64]domain.Courier),
		deliveries: make(map[int64]domain.Delivery),
		reviews:    make(map[int64]domain.Review),
	}
}

var (
	_ domain.UserRepository     = (*Store)(nil)
	_ domain.ProductRepository  = (*Store)(nil)
	_ domain.PromoRepository    = (*Store)(nil)
	_ domain.OrderRepository    = (*Store)(nil)
	_ domain.PaymentRepository  = (*Store)(nil)
	_ domain.CourierRepository  = (*Store)(nil)
	_ domain.DeliveryRepository = (*Store)(nil)
	_ domain.ReviewRepository   = (*Store)(nil)
)
