package app

import (
	"context"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// Данные демонстрационного прогона
const (
	demoClientID   = 1
	demoProductID  = 101
	demoOrderID    = 1
	demoPromoCode  = "SALE10"
	demoPaymentID  = 1
	demoCourierID  = 11
	demoDeliveryID = 11
)

var (
	demoClient = domain.Profile{
		ID:      demoClientID,
		Name:    "Alibek",
		Email:   "ali@mail.com",
		Address: "Almaty",
		Phone:   "7777",
	}
	demoCourier = domain.Courier{ID: demoCourierID, Name: "Daniyar", Phone: "8777"}

	demoPrice         = decimal.NewFromInt(500000)
	demoDiscount      = decimal.NewFromInt(10)
	demoPaymentAmount = decimal.NewFromInt(450000)
)

const demoAddress = "Almaty, Dostyk 10"

// runScenario проводит клиента через регистрацию, заказ, оплату и доставку.
// В асинхронном режиме доставку доводит worker pool.
func runScenario(ctx context.Context, deps *dependencies) error {
	svcs := deps.services

	if _, err := svcs.accounts.RegisterClient(ctx, demoClient); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if _, err := svcs.catalog.CreateFromLine(ctx, domain.ProductLineElectronics, demoProductID, "MacBook", demoPrice); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if _, err := svcs.orders.CreateOrder(ctx, demoOrderID, demoClientID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := svcs.orders.AddProduct(ctx, demoOrderID, demoProductID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if _, err := svcs.catalog.AddPromoCode(ctx, demoPromoCode, demoDiscount); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := svcs.orders.ApplyPromoCode(ctx, demoOrderID, demoPromoCode); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if _, err := svcs.orders.Place(ctx, demoOrderID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if _, err := svcs.payments.CreatePayment(ctx, demoPaymentID, domain.PaymentTypeCard, demoPaymentAmount); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := svcs.orders.Pay(ctx, demoOrderID, demoPaymentID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if _, err := svcs.deliveries.AddCourier(ctx, demoCourier); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := svcs.deliveries.CreateDelivery(ctx, demoDeliveryID, demoAddress, demoCourierID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := svcs.orders.SetDelivery(ctx, demoOrderID, demoDeliveryID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if deps.workerPool != nil {
		return awaitFulfillment(ctx, deps, demoDeliveryID)
	}

	if _, err := svcs.deliveries.Send(ctx, demoDeliveryID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := svcs.deliveries.Track(ctx, demoDeliveryID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := svcs.deliveries.Complete(ctx, demoDeliveryID); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return nil
}

// awaitFulfillment ставит доставку в очередь пула и ждет ее обработки.
// Если сканер успел поставить доставку раньше, ждем его результат.
func awaitFulfillment(ctx context.Context, deps *dependencies, deliveryID int64) error {
	deps.workerPool.Enqueue(deliveryID)

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("scenario: waiting for delivery %d: %w", deliveryID, ctx.Err())
		case f := <-deps.fulfilled:
			if f.deliveryID != deliveryID {
				continue
			}
			if f.err != nil {
				return fmt.Errorf("scenario: %w", f.err)
			}
			return nil
		}
	}
}
