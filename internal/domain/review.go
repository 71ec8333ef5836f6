package domain

import "time"

// Review представляет отзыв клиента о товаре
type Review struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	ClientID  int64     `json:"client_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReview(id int64, rating int, comment string, clientID, productID int64) *Review {
	return &Review{
		ID:        id,
		Rating:    rating,
		Comment:   comment,
		ClientID:  clientID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
}

// LeaveReview объявляет отзыв; название товара разрешается вызывающей стороной
func (r *Review) LeaveReview(productTitle string, sink Sink) {
	emitf(sink, "Review left for product: %s", productTitle)
}
