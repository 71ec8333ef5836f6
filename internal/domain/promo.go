package domain

import "github.com/shopspring/decimal"

// PromoCode представляет скидочный промокод
type PromoCode struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// IsValid всегда true: срок действия и лимиты не моделируются
func (p *PromoCode) IsValid() bool {
	return true
}

// ApplyDiscount возвращает amount - amount*percent/100.
// Диапазон процента не проверяется.
func (p *PromoCode) ApplyDiscount(amount decimal.Decimal) decimal.Decimal {
	return amount.Sub(amount.Mul(p.DiscountPercent).Div(hundred))
}
