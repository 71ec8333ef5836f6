package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPermissiveGuard(t *testing.T) {
	g := NewGuard(false)
	paid := &Order{ID: 1, Status: OrderStatusPaid}

	assert.NoError(t, g.CheckOrder(paid, OrderOpCancel))
	assert.NoError(t, g.CheckOrder(paid, OrderOpAddProduct))
	assert.NoError(t, g.CheckProduct(&Product{Price: decimal.NewFromInt(-1), Stock: -1}))
	assert.NoError(t, g.CheckPayment(&Payment{Status: PaymentStatusPending}, PaymentOpRefund))
	assert.NoError(t, g.CheckDelivery(&Delivery{Status: DeliveryStatusProcessing}, DeliveryOpComplete))
	assert.NoError(t, g.CheckLoyaltyAward(-10))
}

func TestStrictGuard_CheckOrder(t *testing.T) {
	g := NewGuard(true)

	tests := []struct {
		name    string
		order   *Order
		op      OrderOperation
		wantErr error
	}{
		{"Add product to created order", &Order{Status: OrderStatusCreated}, OrderOpAddProduct, nil},
		{"Add product to placed order", &Order{Status: OrderStatusPlaced}, OrderOpAddProduct, ErrInvalidTransition},
		{"Apply promo once", &Order{Status: OrderStatusCreated}, OrderOpApplyPromo, nil},
		{"Apply promo twice", &Order{Status: OrderStatusCreated, PromoCodes: []string{"SALE10"}}, OrderOpApplyPromo, ErrPromoAlreadyApplied},
		{"Place empty order", &Order{Status: OrderStatusCreated}, OrderOpPlace, ErrEmptyOrder},
		{"Place order with products", &Order{Status: OrderStatusCreated, ProductIDs: []int64{1}}, OrderOpPlace, nil},
		{"Pay created order", &Order{Status: OrderStatusCreated}, OrderOpPay, ErrInvalidTransition},
		{"Pay placed order", &Order{Status: OrderStatusPlaced}, OrderOpPay, nil},
		{"Cancel placed order", &Order{Status: OrderStatusPlaced}, OrderOpCancel, nil},
		{"Cancel paid order", &Order{Status: OrderStatusPaid}, OrderOpCancel, ErrInvalidTransition},
		{"Cancel cancelled order", &Order{Status: OrderStatusCancelled}, OrderOpCancel, ErrInvalidTransition},
		{"Set delivery on paid order", &Order{Status: OrderStatusPaid}, OrderOpSetDelivery, nil},
		{"Set delivery on created order", &Order{Status: OrderStatusCreated}, OrderOpSetDelivery, ErrInvalidTransition},
		{"Unknown operation", &Order{Status: OrderStatusCreated}, OrderOperation("ship"), ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.CheckOrder(tt.order, tt.op)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStrictGuard_Others(t *testing.T) {
	g := StrictGuard{}

	t.Run("Product quantities", func(t *testing.T) {
		assert.NoError(t, g.CheckProduct(&Product{Price: decimal.Zero, Stock: 0}))
		assert.ErrorIs(t, g.CheckProduct(&Product{Price: decimal.NewFromInt(-1)}), ErrInvalidQuantity)
		assert.ErrorIs(t, g.CheckProduct(&Product{Stock: -1}), ErrInvalidQuantity)
	})

	t.Run("Payment moves forward only", func(t *testing.T) {
		assert.NoError(t, g.CheckPayment(&Payment{Status: PaymentStatusPending}, PaymentOpProcess))
		assert.NoError(t, g.CheckPayment(&Payment{Status: PaymentStatusPaid}, PaymentOpRefund))
		assert.ErrorIs(t, g.CheckPayment(&Payment{Status: PaymentStatusPaid}, PaymentOpProcess), ErrInvalidTransition)
		assert.ErrorIs(t, g.CheckPayment(&Payment{Status: PaymentStatusPending}, PaymentOpRefund), ErrInvalidTransition)
	})

	t.Run("Delivery moves forward only", func(t *testing.T) {
		assert.NoError(t, g.CheckDelivery(&Delivery{Status: DeliveryStatusProcessing}, DeliveryOpSend))
		assert.NoError(t, g.CheckDelivery(&Delivery{Status: DeliveryStatusSent}, DeliveryOpComplete))
		assert.ErrorIs(t, g.CheckDelivery(&Delivery{Status: DeliveryStatusProcessing}, DeliveryOpComplete), ErrInvalidTransition)
		assert.ErrorIs(t, g.CheckDelivery(&Delivery{Status: DeliveryStatusCompleted}, DeliveryOpSend), ErrInvalidTransition)
	})

	t.Run("Loyalty award", func(t *testing.T) {
		assert.NoError(t, g.CheckLoyaltyAward(0))
		assert.ErrorIs(t, g.CheckLoyaltyAward(-1), ErrInvalidQuantity)
	})
}
