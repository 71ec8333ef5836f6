package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "Created"
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order представляет заказ клиента.
// Клиент, товары, платеж и доставка хранятся как идентификаторы.
type Order struct {
	ID         int64           `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	Status     OrderStatus     `json:"status"`
	ClientID   int64           `json:"client_id"`
	ProductIDs []int64         `json:"product_ids"`
	TotalSum   decimal.Decimal `json:"total_sum"`
	PromoCodes []string        `json:"promo_codes,omitempty"`
	PaymentID  *int64          `json:"payment_id,omitempty"`
	DeliveryID *int64          `json:"delivery_id,omitempty"`
}

// NewOrder создает заказ в статусе Created
func NewOrder(id, clientID int64) *Order {
	return &Order{
		ID:        id,
		CreatedAt: time.Now(),
		Status:    OrderStatusCreated,
		ClientID:  clientID,
		TotalSum:  decimal.Zero,
	}
}

// AddProduct добавляет товар и прибавляет его цену к сумме.
// Повторное добавление того же товара не отсекается.
func (o *Order) AddProduct(p *Product, _ Sink) {
	o.ProductIDs = append(o.ProductIDs, p.ID)
	o.TotalSum = o.TotalSum.Add(p.Price)
}

// ApplyPromoCode пересчитывает сумму со скидкой. Каждое применение
// работает от текущей суммы, поэтому скидки складываются мультипликативно.
func (o *Order) ApplyPromoCode(promo *PromoCode, _ Sink) {
	if !promo.IsValid() {
		return
	}
	o.TotalSum = promo.ApplyDiscount(o.TotalSum)
	o.PromoCodes = append(o.PromoCodes, promo.Code)
}

func (o *Order) Place(sink Sink) {
	o.Status = OrderStatusPlaced
	emitf(sink, "Order placed. Total: %s", FormatAmount(o.TotalSum))
}

// Pay привязывает платеж, проводит его и переводит заказ в Paid
func (o *Order) Pay(payment *Payment, sink Sink) {
	id := payment.ID
	o.PaymentID = &id
	payment.Process(sink)
	o.Status = OrderStatusPaid
}

func (o *Order) Cancel(sink Sink) {
	o.Status = OrderStatusCancelled
	emitf(sink, "Order cancelled.")
}

func (o *Order) SetDelivery(delivery *Delivery, _ Sink) {
	id := delivery.ID
	o.DeliveryID = &id
}

// Clone возвращает независимую копию заказа
func (o *Order) Clone() *Order {
	c := *o
	c.ProductIDs = append([]int64(nil), o.ProductIDs...)
	c.PromoCodes = append([]string(nil), o.PromoCodes...)
	if o.PaymentID != nil {
		id := *o.PaymentID
		c.PaymentID = &id
	}
	if o.DeliveryID != nil {
		id := *o.DeliveryID
		c.DeliveryID = &id
	}
	return &c
}
