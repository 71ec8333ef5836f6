package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatAmount форматирует сумму для вывода: всегда хотя бы один знак после точки (450000.0)
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
