package domain

import (
	"fmt"
	"slices"
)

// OrderOperation называет операцию над заказом
type OrderOperation string

const (
	OrderOpAddProduct  OrderOperation = "add_product"
	OrderOpApplyPromo  OrderOperation = "apply_promo_code"
	OrderOpPlace       OrderOperation = "place"
	OrderOpPay         OrderOperation = "pay"
	OrderOpCancel      OrderOperation = "cancel"
	OrderOpSetDelivery OrderOperation = "set_delivery"
)

// PaymentOperation называет операцию над платежом
type PaymentOperation string

const (
	PaymentOpProcess PaymentOperation = "process"
	PaymentOpRefund  PaymentOperation = "refund"
)

// DeliveryOperation называет операцию над доставкой
type DeliveryOperation string

const (
	DeliveryOpSend     DeliveryOperation = "send"
	DeliveryOpComplete DeliveryOperation = "complete"
)

// Guard - граница валидации. Сущности сами ничего не проверяют,
// сервисы спрашивают Guard перед каждой операцией.
type Guard interface {
	CheckOrder(order *Order, op OrderOperation) error
	CheckProduct(product *Product) error
	CheckPayment(payment *Payment, op PaymentOperation) error
	CheckDelivery(delivery *Delivery, op DeliveryOperation) error
	CheckLoyaltyAward(points int64) error
}

// PermissiveGuard разрешает все операции
type PermissiveGuard struct{}

func (PermissiveGuard) CheckOrder(*Order, OrderOperation) error          { return nil }
func (PermissiveGuard) CheckProduct(*Product) error                      { return nil }
func (PermissiveGuard) CheckPayment(*Payment, PaymentOperation) error    { return nil }
func (PermissiveGuard) CheckDelivery(*Delivery, DeliveryOperation) error { return nil }
func (PermissiveGuard) CheckLoyaltyAward(int64) error                    { return nil }

// StrictGuard запрещает переходы из неверных состояний и отрицательные количества
type StrictGuard struct{}

var orderTransitions = map[OrderOperation][]OrderStatus{
	OrderOpAddProduct:  {OrderStatusCreated},
	OrderOpApplyPromo:  {OrderStatusCreated},
	OrderOpPlace:       {OrderStatusCreated},
	OrderOpPay:         {OrderStatusPlaced},
	OrderOpCancel:      {OrderStatusCreated, OrderStatusPlaced},
	OrderOpSetDelivery: {OrderStatusPlaced, OrderStatusPaid},
}

var paymentTransitions = map[PaymentOperation]PaymentStatus{
	PaymentOpProcess: PaymentStatusPending,
	PaymentOpRefund:  PaymentStatusPaid,
}

var deliveryTransitions = map[DeliveryOperation]DeliveryStatus{
	DeliveryOpSend:     DeliveryStatusProcessing,
	DeliveryOpComplete: DeliveryStatusSent,
}

func (StrictGuard) CheckOrder(order *Order, op OrderOperation) error {
	allowed, ok := orderTransitions[op]
	if !ok {
		return fmt.Errorf("%w: unknown order operation %q", ErrInvalidTransition, op)
	}
	if !slices.Contains(allowed, order.Status) {
		return fmt.Errorf("%w: cannot %s order %d in status %s", ErrInvalidTransition, op, order.ID, order.Status)
	}

	switch op {
	case OrderOpApplyPromo:
		if len(order.PromoCodes) > 0 {
			return fmt.Errorf("%w: order %d already has %s", ErrPromoAlreadyApplied, order.ID, order.PromoCodes[0])
		}
	case OrderOpPlace:
		if len(order.ProductIDs) == 0 {
			return fmt.Errorf("%w: order %d", ErrEmptyOrder, order.ID)
		}
	}

	return nil
}

func (StrictGuard) CheckProduct(product *Product) error {
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: product %d has negative price %s", ErrInvalidQuantity, product.ID, product.Price)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: product %d has negative stock %d", ErrInvalidQuantity, product.ID, product.Stock)
	}
	return nil
}

func (StrictGuard) CheckPayment(payment *Payment, op PaymentOperation) error {
	from, ok := paymentTransitions[op]
	if !ok {
		return fmt.Errorf("%w: unknown payment operation %q", ErrInvalidTransition, op)
	}
	if payment.Status != from {
		return fmt.Errorf("%w: cannot %s payment %d in status %s", ErrInvalidTransition, op, payment.ID, payment.Status)
	}
	return nil
}

func (StrictGuard) CheckDelivery(delivery *Delivery, op DeliveryOperation) error {
	from, ok := deliveryTransitions[op]
	if !ok {
		return fmt.Errorf("%w: unknown delivery operation %q", ErrInvalidTransition, op)
	}
	if delivery.Status != from {
		return fmt.Errorf("%w: cannot %s delivery %d in status %s", ErrInvalidTransition, op, delivery.ID, delivery.Status)
	}
	return nil
}

func (StrictGuard) CheckLoyaltyAward(points int64) error {
	if points < 0 {
		return fmt.Errorf("%w: loyalty points %d", ErrInvalidQuantity, points)
	}
	return nil
}

// NewGuard возвращает StrictGuard при strict == true, иначе PermissiveGuard
func NewGuard(strict bool) Guard {
	if strict {
		return StrictGuard{}
	}
	return PermissiveGuard{}
}
