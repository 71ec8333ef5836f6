package memory

import (
	"context"
	"sort"

	"github.com/avc/storefront-demo/internal/domain"
)

func (s *Store) CreatePayment(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[payment.ID]; ok {
		return domain.ErrPaymentExists
	}
	s.payments[payment.ID] = *payment
	return nil
}

func (s *Store) GetPayment(_ context.Context, id int64) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return &payment, nil
}

func (s *Store) UpdatePayment(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[payment.ID]; !ok {
		return domain.ErrPaymentNotFound
	}
	s.payments[payment.ID] = *payment
	return nil
}

func (s *Store) CreateCourier(_ context.Context, courier *domain.Courier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.couriers[courier.ID]; ok {
		return domain.ErrCourierExists
	}
	s.couriers[courier.ID] = *courier
	return nil
}

func (s *Store) GetCourier(_ context.Context, id int64) (*domain.Courier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courier, ok := s.couriers[id]
	if !ok {
		return nil, domain.ErrCourierNotFound
	}
	return &courier, nil
}

func (s *Store) CreateDelivery(_ context.Context, delivery *domain.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deliveries[delivery.ID]; ok {
		return domain.ErrDeliveryExists
	}
	s.deliveries[delivery.ID] = *delivery
	return nil
}

func (s *Store) GetDelivery(_ context.Context, id int64) (*domain.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	delivery, ok := s.deliveries[id]
	if !ok {
		return nil, domain.ErrDeliveryNotFound
	}
	return &delivery, nil
}

func (s *Store) UpdateDelivery(_ context.Context, delivery *domain.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deliveries[delivery.ID]; !ok {
		return domain.ErrDeliveryNotFound
	}
	s.deliveries[delivery.ID] = *delivery
	return nil
}

// GetPendingDeliveries возвращает незавершенные доставки оплаченных заказов,
// отсортированные по ID
func (s *Store) GetPendingDeliveries(_ context.Context) ([]*domain.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []*domain.Delivery
	for _, order := range s.orders {
		if order.Status != domain.OrderStatusPaid || order.DeliveryID == nil {
			continue
		}
		delivery, ok := s.deliveries[*order.DeliveryID]
		if !ok || !delivery.Pending() {
			continue
		}
		pending = append(pending, &delivery)
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	return pending, nil
}
