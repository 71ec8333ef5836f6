package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus представляет статус платежа
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// PaymentType представляет способ оплаты
type PaymentType string

const (
	PaymentTypeCard PaymentType = "CARD"
	PaymentTypeCash PaymentType = "CASH"
)

// Payment представляет платеж по заказу
type Payment struct {
	ID        int64           `json:"id"`
	Type      PaymentType     `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewPayment создает платеж в статусе Pending
func NewPayment(id int64, paymentType PaymentType, amount decimal.Decimal) *Payment {
	return &Payment{
		ID:        id,
		Type:      paymentType,
		Amount:    amount,
		Status:    PaymentStatusPending,
		CreatedAt: time.Now(),
	}
}

// Process проводит платеж. Внешний шлюз не моделируется, проведение всегда успешно.
func (p *Payment) Process(sink Sink) {
	p.Status = PaymentStatusPaid
	emitf(sink, "Payment processed: %s", FormatAmount(p.Amount))
}

func (p *Payment) Refund(sink Sink) {
	p.Status = PaymentStatusRefunded
	emitf(sink, "Payment refunded.")
}
