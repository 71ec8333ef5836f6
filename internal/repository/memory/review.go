package memory

import (
	"context"
	"sort"

	"github.com/avc/storefront-demo/internal/domain"
)

func (s *Store) CreateReview(_ context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[review.ID]; ok {
		return domain.ErrReviewExists
	}
	s.reviews[review.ID] = *review
	return nil
}

// GetReviewsByProduct возвращает отзывы о товаре в порядке ID
func (s *Store) GetReviewsByProduct(_ context.Context, productID int64) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []*domain.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			review := r
			reviews = append(reviews, &review)
		}
	}

	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}
