package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Reservation links a customer to one room at a hotel. The id is generated,
// never caller-supplied, and the status moves active -> cancelled exactly
// once; a cancelled reservation is terminal.
type Reservation struct {
	ID         string `json:"reservation_id"`
	CustomerID string `json:"customer_id"`
	HotelID    string `json:"hotel_id"`
	Status     Status `json:"status"`
}
