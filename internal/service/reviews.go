package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
)

// ReviewService принимает отзывы клиентов о товарах
type ReviewService struct {
	reviewRepo  domain.ReviewRepository
	userRepo    domain.UserRepository
	productRepo domain.ProductRepository
	rt          Runtime
}

// NewReviewService создает новый ReviewService
func NewReviewService(reviewRepo domain.ReviewRepository, userRepo domain.UserRepository, productRepo domain.ProductRepository, rt Runtime) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		rt:          rt,
	}
}

// LeaveReview сохраняет отзыв клиента о товаре. Рейтинг не ограничивается.
func (s *ReviewService) LeaveReview(ctx context.Context, reviewID int64, rating int, comment string, clientID, productID int64) (*domain.Review, error) {
	client, err := s.userRepo.GetUser(ctx, clientID)
	if err != nil {
		s.rt.Observer.record("review", "create", err)
		return nil, wrapErr("review", fmt.Sprintf("get client %d", clientID), err)
	}
	if !client.IsClient() {
		s.rt.Observer.record("review", "create", domain.ErrNotClient)
		return nil, domain.ErrNotClient
	}

	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		s.rt.Observer.record("review", "create", err)
		return nil, wrapErr("review", fmt.Sprintf("get product %d", productID), err)
	}

	review := domain.NewReview(reviewID, rating, comment, clientID, productID)
	err = s.reviewRepo.CreateReview(ctx, review)
	s.rt.Observer.record("review", "create", err)
	if err != nil {
		return nil, wrapErr("review", fmt.Sprintf("create review %d", reviewID), err)
	}

	review.LeaveReview(product.Title, s.rt.sink())
	s.rt.Observer.publish(ctx, domain.EventReviewLeft, review.ID, map[string]any{
		"product_id": productID,
		"rating":     rating,
	})
	return review, nil
}

// ReviewsForProduct возвращает отзывы о товаре по возрастанию ID
func (s *ReviewService) ReviewsForProduct(ctx context.Context, productID int64) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.GetReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, wrapErr("review", fmt.Sprintf("get reviews for product %d", productID), err)
	}
	return reviews, nil
}
