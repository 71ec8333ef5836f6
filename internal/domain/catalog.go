package domain

import "github.com/shopspring/decimal"

// Category представляет категорию товаров
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product представляет товар каталога
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    Category        `json:"category"`
}

func (p *Product) Create(sink Sink) {
	emitf(sink, "Product created: %s", p.Title)
}

// Update переносит изменяемые поля из next, ID остается прежним
func (p *Product) Update(next Product, sink Sink) {
	next.ID = p.ID
	*p = next
	emitf(sink, "Product updated.")
}

func (p *Product) Delete(sink Sink) {
	emitf(sink, "Product deleted.")
}
