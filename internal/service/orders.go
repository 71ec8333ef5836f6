package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
)

// OrderService ведет заказ по жизненному циклу Created -> Placed -> Paid
type OrderService struct {
	orderRepo    domain.OrderRepository
	userRepo     domain.UserRepository
	productRepo  domain.ProductRepository
	promoRepo    domain.PromoRepository
	paymentRepo  domain.PaymentRepository
	deliveryRepo domain.DeliveryRepository
	rt           Runtime
}

// OrderRepositories - репозитории, из которых OrderService разрешает ссылки
type OrderRepositories struct {
	Orders     domain.OrderRepository
	Users      domain.UserRepository
	Products   domain.ProductRepository
	Promos     domain.PromoRepository
	Payments   domain.PaymentRepository
	Deliveries domain.DeliveryRepository
}

// NewOrderService создает новый OrderService
func NewOrderService(repos OrderRepositories, rt Runtime) *OrderService {
	return &OrderService{
		orderRepo:    repos.Orders,
		userRepo:     repos.Users,
		productRepo:  repos.Products,
		promoRepo:    repos.Promos,
		paymentRepo:  repos.Payments,
		deliveryRepo: repos.Deliveries,
		rt:           rt,
	}
}

// CreateOrder открывает заказ клиента
func (s *OrderService) CreateOrder(ctx context.Context, orderID, clientID int64) (*domain.Order, error) {
	client, err := s.userRepo.GetUser(ctx, clientID)
	if err != nil {
		s.rt.Observer.record("order", "create", err)
		return nil, wrapErr("order", fmt.Sprintf("get client %d", clientID), err)
	}
	if !client.IsClient() {
		s.rt.Observer.record("order", "create", domain.ErrNotClient)
		return nil, domain.ErrNotClient
	}

	order := domain.NewOrder(orderID, clientID)
	err = s.orderRepo.CreateOrder(ctx, order)
	s.rt.Observer.record("order", "create", err)
	if err != nil {
		return nil, wrapErr("order", fmt.Sprintf("create order %d", orderID), err)
	}

	s.rt.Observer.publish(ctx, domain.EventOrderCreated, order.ID, map[string]any{"client_id": clientID})
	return order, nil
}

// AddProduct добавляет товар в заказ
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID int64) (*domain.Order, error) {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		s.rt.Observer.record("order", string(domain.OrderOpAddProduct), err)
		return nil, wrapErr("order", fmt.Sprintf("get product %d", productID), err)
	}

	return s.mutate(ctx, orderID, domain.OrderOpAddProduct, func(order *domain.Order) error {
		if err := s.rt.guard().CheckProduct(product); err != nil {
			return err
		}
		order.AddProduct(product, s.rt.sink())
		return nil
	})
}

// ApplyPromoCode применяет промокод к текущей сумме заказа
func (s *OrderService) ApplyPromoCode(ctx context.Context, orderID int64, code string) (*domain.Order, error) {
	promo, err := s.promoRepo.GetPromoCode(ctx, code)
	if err != nil {
		s.rt.Observer.record("order", string(domain.OrderOpApplyPromo), err)
		return nil, wrapErr("order", fmt.Sprintf("get promo code %q", code), err)
	}

	return s.mutate(ctx, orderID, domain.OrderOpApplyPromo, func(order *domain.Order) error {
		order.ApplyPromoCode(promo, s.rt.sink())
		return nil
	})
}

// Place оформляет заказ
func (s *OrderService) Place(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.mutate(ctx, orderID, domain.OrderOpPlace, func(order *domain.Order) error {
		order.Place(s.rt.sink())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.rt.Observer.observeTotal(order.TotalSum)
	s.rt.Observer.publish(ctx, domain.EventOrderPlaced, order.ID, map[string]any{
		"total":       domain.FormatAmount(order.TotalSum),
		"products":    len(order.ProductIDs),
		"promo_codes": order.PromoCodes,
	})
	return order, nil
}

// Pay проводит платеж и переводит заказ в Paid
func (s *OrderService) Pay(ctx context.Context, orderID, paymentID int64) (*domain.Order, error) {
	payment, err := s.paymentRepo.GetPayment(ctx, paymentID)
	if err != nil {
		s.rt.Observer.record("order", string(domain.OrderOpPay), err)
		return nil, wrapErr("order", fmt.Sprintf("get payment %d", paymentID), err)
	}

	order, err := s.mutate(ctx, orderID, domain.OrderOpPay, func(order *domain.Order) error {
		if err := s.rt.guard().CheckPayment(payment, domain.PaymentOpProcess); err != nil {
			return err
		}
		order.Pay(payment, s.rt.sink())
		if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
			return fmt.Errorf("update payment %d: %w", paymentID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.rt.Observer.record("payment", string(domain.PaymentOpProcess), nil)
	s.rt.Observer.publish(ctx, domain.EventOrderPaid, order.ID, map[string]any{
		"payment_id": paymentID,
		"amount":     domain.FormatAmount(payment.Amount),
		"type":       string(payment.Type),
	})
	return order, nil
}

// Cancel отменяет заказ
func (s *OrderService) Cancel(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.mutate(ctx, orderID, domain.OrderOpCancel, func(order *domain.Order) error {
		order.Cancel(s.rt.sink())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.rt.Observer.publish(ctx, domain.EventOrderCancelled, order.ID, nil)
	return order, nil
}

// SetDelivery привязывает доставку к заказу
func (s *OrderService) SetDelivery(ctx context.Context, orderID, deliveryID int64) (*domain.Order, error) {
	delivery, err := s.deliveryRepo.GetDelivery(ctx, deliveryID)
	if err != nil {
		s.rt.Observer.record("order", string(domain.OrderOpSetDelivery), err)
		return nil, wrapErr("order", fmt.Sprintf("get delivery %d", deliveryID), err)
	}

	return s.mutate(ctx, orderID, domain.OrderOpSetDelivery, func(order *domain.Order) error {
		order.SetDelivery(delivery, s.rt.sink())
		return nil
	})
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, wrapErr("order", fmt.Sprintf("get order %d", orderID), err)
	}
	return order, nil
}

// mutate загружает заказ, проверяет переход, применяет операцию и сохраняет заказ
func (s *OrderService) mutate(ctx context.Context, orderID int64, op domain.OrderOperation, apply func(*domain.Order) error) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err == nil {
		err = s.rt.guard().CheckOrder(order, op)
	}
	if err == nil {
		err = apply(order)
	}
	if err == nil {
		err = s.orderRepo.UpdateOrder(ctx, order)
	}

	s.rt.Observer.record("order", string(op), err)
	if err != nil {
		return nil, wrapErr("order", fmt.Sprintf("%s order %d", op, orderID), err)
	}
	return order, nil
}
