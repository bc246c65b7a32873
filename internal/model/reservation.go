package model

import "time"

// Reservation statuses.  A reservation starts as pending and is moved
// through the remaining states by an operator in the admin panel.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCancelled  = "cancelled"
	StatusSuccessful = "successful"
)

// ValidStatus reports whether s is one of the four allowed statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusSuccessful:
		return true
	}
	return false
}

// Reservation mirrors one row of the reservations table.  Tours holds the
// raw JSON of the priced line items for audit purposes; TourNames is the
// comma-joined human-readable list shown in admin views.  Total price and
// the transport flag are derived server-side from the catalog, never taken
// from the client.
type Reservation struct {
	ID                  uint64    `json:"id"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	TourNames           string    `json:"tour"`
	Tours               string    `json:"tours"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	Guests              int       `json:"people"`
	TotalPrice          float64   `json:"total_price"`
	Transport           bool      `json:"transport"`
	SpecialRequest      string    `json:"special_request"`
	ConfirmationMessage string    `json:"confirmation_message"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

// Stats aggregates the dashboard numbers: booking and guest counts per
// status plus revenue summed over successful reservations only.
type Stats struct {
	TotalBookings    int     `json:"totalBookings"`
	TotalGuests      int     `json:"totalGuests"`
	TotalRevenue     float64 `json:"totalRevenue"`
	PendingCount     int     `json:"pendingCount"`
	ConfirmedCount   int     `json:"confirmedCount"`
	CancelledCount   int     `json:"cancelledCount"`
	SuccessfulCount  int     `json:"successfulCount"`
	PendingGuests    int     `json:"pendingGuests"`
	ConfirmedGuests  int     `json:"confirmedGuests"`
	CancelledGuests  int     `json:"cancelledGuests"`
	SuccessfulGuests int     `json:"successfulGuests"`
}
