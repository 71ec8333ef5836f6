package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductLine определяет линейку товаров, для которой действуют свои значения по умолчанию
type ProductLine int

const (
	ProductLineElectronics ProductLine = iota + 1
	ProductLineClothing
)

func (l ProductLine) String() string {
	switch l {
	case ProductLineElectronics:
		return "Electronics"
	case ProductLineClothing:
		return "Clothing"
	default:
		return fmt.Sprintf("ProductLine(%d)", int(l))
	}
}

// ParseProductLine разбирает название линейки без учета регистра
func ParseProductLine(name string) (ProductLine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "electronics", "electronic":
		return ProductLineElectronics, nil
	case "clothing", "clothes":
		return ProductLineClothing, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProductLine, name)
	}
}

var (
	electronicsCategory = Category{ID: 1, Name: "Electronics"}
	clothingCategory    = Category{ID: 2, Name: "Clothing"}
)

// NewProduct собирает товар линейки line по минимальному набору полей.
// Описание, остаток и категория всегда берутся из линейки.
func NewProduct(line ProductLine, id int64, title string, price decimal.Decimal) (*Product, error) {
	switch line {
	case ProductLineElectronics:
		return &Product{
			ID:          id,
			Title:       title,
			Description: "Electronic item",
			Price:       price,
			Stock:       10,
			Category:    electronicsCategory,
		}, nil
	case ProductLineClothing:
		return &Product{
			ID:          id,
			Title:       title,
			Description: "Clothing item",
			Price:       price,
			Stock:       20,
			Category:    clothingCategory,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProductLine, line)
	}
}
