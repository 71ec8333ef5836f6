package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentService заводит и возвращает платежи
type PaymentService struct {
	paymentRepo domain.PaymentRepository
	rt          Runtime
}

// NewPaymentService создает новый PaymentService
func NewPaymentService(paymentRepo domain.PaymentRepository, rt Runtime) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		rt:          rt,
	}
}

// CreatePayment заводит платеж в статусе Pending. Сумма не сверяется с заказом.
func (s *PaymentService) CreatePayment(ctx context.Context, paymentID int64, paymentType domain.PaymentType, amount decimal.Decimal) (*domain.Payment, error) {
	payment := domain.NewPayment(paymentID, paymentType, amount)

	err := s.paymentRepo.CreatePayment(ctx, payment)
	s.rt.Observer.record("payment", "create", err)
	if err != nil {
		return nil, wrapErr("payment", fmt.Sprintf("create payment %d", paymentID), err)
	}

	return payment, nil
}

// Refund возвращает платеж
func (s *PaymentService) Refund(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetPayment(ctx, paymentID)
	if err == nil {
		err = s.rt.guard().CheckPayment(payment, domain.PaymentOpRefund)
	}
	if err == nil {
		payment.Refund(s.rt.sink())
		err = s.paymentRepo.UpdatePayment(ctx, payment)
	}

	s.rt.Observer.record("payment", string(domain.PaymentOpRefund), err)
	if err != nil {
		return nil, wrapErr("payment", fmt.Sprintf("refund payment %d", paymentID), err)
	}

	s.rt.Observer.publish(ctx, domain.EventPaymentRefunded, payment.ID, map[string]any{
		"amount": domain.FormatAmount(payment.Amount),
	})
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, wrapErr("payment", fmt.Sprintf("get payment %d", paymentID), err)
	}
	return payment, nil
}
