package service

import (
	"errors"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
)

// Ошибки, которые сервисы возвращают без обертки
var passThrough = []error{
	domain.ErrInvalidTransition,
	domain.ErrInvalidQuantity,
	domain.ErrPromoAlreadyApplied,
	domain.ErrEmptyOrder,
	domain.ErrUnknownProductLine,
	domain.ErrNotAdmin,
	domain.ErrNotClient,
	domain.ErrUserExists,
	domain.ErrUserNotFound,
	domain.ErrProductExists,
	domain.ErrProductNotFound,
	domain.ErrPromoExists,
	domain.ErrPromoNotFound,
	domain.ErrOrderExists,
	domain.ErrOrderNotFound,
	domain.ErrPaymentExists,
	domain.ErrPaymentNotFound,
	domain.ErrCourierExists,
	domain.ErrCourierNotFound,
	domain.ErrDeliveryExists,
	domain.ErrDeliveryNotFound,
	domain.ErrReviewExists,
}

// isDomainError сообщает, что ошибка - sentinel домена (возможно, с контекстом от Guard)
func isDomainError(err error) bool {
	for _, target := range passThrough {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// wrapErr не оборачивает sentinel errors, остальное снабжает префиксом сервиса
func wrapErr(component, action string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	return fmt.Errorf("%s service: failed to %s: %w", component, action, err)
}
