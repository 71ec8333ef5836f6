package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
)

// DeliveryService ведет доставку Processing -> Sent -> Completed
type DeliveryService struct {
	deliveryRepo domain.DeliveryRepository
	courierRepo  domain.CourierRepository
	rt           Runtime
}

// NewDeliveryService создает новый DeliveryService
func NewDeliveryService(deliveryRepo domain.DeliveryRepository, courierRepo domain.CourierRepository, rt Runtime) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		courierRepo:  courierRepo,
		rt:           rt,
	}
}

// AddCourier регистрирует курьера
func (s *DeliveryService) AddCourier(ctx context.Context, courier domain.Courier) (*domain.Courier, error) {
	err := s.courierRepo.CreateCourier(ctx, &courier)
	s.rt.Observer.record("courier", "create", err)
	if err != nil {
		return nil, wrapErr("delivery", fmt.Sprintf("create courier %d", courier.ID), err)
	}
	return &courier, nil
}

// CreateDelivery заводит доставку на адрес с назначенным курьером
func (s *DeliveryService) CreateDelivery(ctx context.Context, deliveryID int64, address string, courierID int64) (*domain.Delivery, error) {
	if _, err := s.courierRepo.GetCourier(ctx, courierID); err != nil {
		s.rt.Observer.record("delivery", "create", err)
		return nil, wrapErr("delivery", fmt.Sprintf("get courier %d", courierID), err)
	}

	delivery := domain.NewDelivery(deliveryID, address, courierID)
	err := s.deliveryRepo.CreateDelivery(ctx, delivery)
	s.rt.Observer.record("delivery", "create", err)
	if err != nil {
		return nil, wrapErr("delivery", fmt.Sprintf("create delivery %d", deliveryID), err)
	}

	return delivery, nil
}

// Send передает доставку курьеру
func (s *DeliveryService) Send(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	delivery, err := s.mutate(ctx, deliveryID, domain.DeliveryOpSend, func(d *domain.Delivery) {
		d.Send(s.rt.sink())
	})
	if err != nil {
		return nil, err
	}

	s.rt.Observer.publish(ctx, domain.EventDeliverySent, delivery.ID, map[string]any{
		"courier_id": delivery.CourierID,
		"address":    delivery.Address,
	})
	return delivery, nil
}

// Track выводит и возвращает текущий статус доставки
func (s *DeliveryService) Track(ctx context.Context, deliveryID int64) (domain.DeliveryStatus, error) {
	delivery, err := s.deliveryRepo.GetDelivery(ctx, deliveryID)
	s.rt.Observer.record("delivery", "track", err)
	if err != nil {
		return "", wrapErr("delivery", fmt.Sprintf("track delivery %d", deliveryID), err)
	}

	return delivery.Track(s.rt.sink()), nil
}

// Complete завершает доставку
func (s *DeliveryService) Complete(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	delivery, err := s.mutate(ctx, deliveryID, domain.DeliveryOpComplete, func(d *domain.Delivery) {
		d.Complete(s.rt.sink())
	})
	if err != nil {
		return nil, err
	}

	s.rt.Observer.publish(ctx, domain.EventDeliveryCompleted, delivery.ID, nil)
	return delivery, nil
}

func (s *DeliveryService) GetDelivery(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	delivery, err := s.deliveryRepo.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, wrapErr("delivery", fmt.Sprintf("get delivery %d", deliveryID), err)
	}
	return delivery, nil
}

// PendingDeliveries возвращает незавершенные доставки оплаченных заказов
func (s *DeliveryService) PendingDeliveries(ctx context.Context) ([]*domain.Delivery, error) {
	deliveries, err := s.deliveryRepo.GetPendingDeliveries(ctx)
	if err != nil {
		return nil, wrapErr("delivery", "get pending deliveries", err)
	}
	return deliveries, nil
}

func (s *DeliveryService) mutate(ctx context.Context, deliveryID int64, op domain.DeliveryOperation, apply func(*domain.Delivery)) (*domain.Delivery, error) {
	delivery, err := s.deliveryRepo.GetDelivery(ctx, deliveryID)
	if err == nil {
		err = s.rt.guard().CheckDelivery(delivery, op)
	}
	if err == nil {
		apply(delivery)
		err = s.deliveryRepo.UpdateDelivery(ctx, delivery)
	}

	s.rt.Observer.record("delivery", string(op), err)
	if err != nil {
		return nil, wrapErr("delivery", fmt.Sprintf("%s delivery %d", op, deliveryID), err)
	}
	return delivery, nil
}
