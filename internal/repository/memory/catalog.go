package memory

import (
	"context"

	"github.com/avc/storefront-demo/internal/domain"
)

// CreateProduct сохраняет новый товар
func (s *Store) CreateProduct(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; ok {
		return domain.ErrProductExists
	}
	s.products[product.ID] = *product
	return nil
}

// GetProduct получает товар по ID
func (s *Store) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

// UpdateProduct перезаписывает существующий товар
func (s *Store) UpdateProduct(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	s.products[product.ID] = *product
	return nil
}

// DeleteProduct удаляет товар. Заказы хранят только ID и не затрагиваются.
func (s *Store) DeleteProduct(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *Store) CreatePromoCode(_ context.Context, promo *domain.PromoCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.promos[promo.Code]; ok {
		return domain.ErrPromoExists
	}
	s.promos[promo.Code] = *promo
	return nil
}

func (s *Store) GetPromoCode(_ context.Context, code string) (*domain.PromoCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	promo, ok := s.promos[code]
	if !ok {
		return nil, domain.ErrPromoNotFound
	}
	return &promo, nil
}
