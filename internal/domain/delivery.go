package domain

// DeliveryStatus представляет статус доставки
type DeliveryStatus string

const (
	DeliveryStatusProcessing DeliveryStatus = "Processing"
	DeliveryStatusSent       DeliveryStatus = "Sent"
	DeliveryStatusCompleted  DeliveryStatus = "Completed"
)

// Courier представляет курьера
type Courier struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Delivery представляет доставку заказа курьером
type Delivery struct {
	ID        int64          `json:"id"`
	Address   string         `json:"address"`
	Status    DeliveryStatus `json:"status"`
	CourierID int64          `json:"courier_id"`
}

// NewDelivery создает доставку в статусе Processing
func NewDelivery(id int64, address string, courierID int64) *Delivery {
	return &Delivery{
		ID:        id,
		Address:   address,
		Status:    DeliveryStatusProcessing,
		CourierID: courierID,
	}
}

func (d *Delivery) Send(sink Sink) {
	d.Status = DeliveryStatusSent
	emitf(sink, "Delivery sent.")
}

// Track сообщает текущий статус, ничего не меняя
func (d *Delivery) Track(sink Sink) DeliveryStatus {
	emitf(sink, "Delivery status: %s", d.Status)
	return d.Status
}

func (d *Delivery) Complete(sink Sink) {
	d.Status = DeliveryStatusCompleted
	emitf(sink, "Delivery completed.")
}

// Pending возвращает true, пока доставка не завершена
func (d *Delivery) Pending() bool {
	return d.Status != DeliveryStatusCompleted
}
