// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationTour is one line of a reservation event, enough for a
// consumer to reconstruct the order without querying the database.
type ReservationTour struct {
	TourID       string  `json:"tour_id"`
	Title        string  `json:"title"`
	HasTransport bool    `json:"has_transport"`
	TotalPrice   float64 `json:"total_price"`
}

// ReservationCreatedEvent is published after a reservation row is
// persisted.  Downstream consumers use it for audit logging and
// analytics without touching the primary database.
type ReservationCreatedEvent struct {
	ReservationID uint64            `json:"reservation_id"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Guests        int               `json:"guests"`
	Transport     bool              `json:"transport"`
	TotalPrice    float64           `json:"total_price"`
	Tours         []ReservationTour `json:"tours"`
	CreatedAt     string            `json:"created_at"`
}
