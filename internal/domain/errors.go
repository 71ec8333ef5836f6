package domain

import "errors"

// Ошибки переходов и валидации
var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrPromoAlreadyApplied = errors.New("promo code already applied")
	ErrEmptyOrder          = errors.New("order has no products")
	ErrUnknownProductLine  = errors.New("unknown product line")
	ErrNotAdmin            = errors.New("user is not an admin")
	ErrNotClient           = errors.New("user is not a client")
)

// Ошибки пользователей
var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// Ошибки каталога
var (
	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrPromoExists     = errors.New("promo code already exists")
	ErrPromoNotFound   = errors.New("promo code not found")
)

// Ошибки заказов, платежей и доставки
var (
	ErrOrderExists      = errors.New("order already exists")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPaymentExists    = errors.New("payment already exists")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrCourierExists    = errors.New("courier already exists")
	ErrCourierNotFound  = errors.New("courier not found")
	ErrDeliveryExists   = errors.New("delivery already exists")
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrReviewExists     = errors.New("review already exists")
)
