package memory

import (
	"context"

	"github.com/avc/storefront-demo/internal/domain"
)

// CreateOrder сохраняет новый заказ
func (s *Store) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; ok {
		return domain.ErrOrderExists
	}
	s.orders[order.ID] = order.Clone()
	return nil
}

// GetOrder получает копию заказа по ID
func (s *Store) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order.Clone(), nil
}

// UpdateOrder перезаписывает существующий заказ
func (s *Store) UpdateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	s.orders[order.ID] = order.Clone()
	return nil
}
