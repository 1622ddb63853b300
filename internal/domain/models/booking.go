package models

// Booking statuses. Any status other than Completed counts against the
// referenced cab's availability.
const (
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
)

// Booking records one trip booked against a cab. Fare is copied from the
// cab at creation time; later fare changes on the cab never reach existing
// bookings.
type Booking struct {
	ID       string  `json:"id"`
	CabID    string  `json:"cabId"`
	Customer string  `json:"customer"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Fare     float64 `json:"fare"`
	Status   string  `json:"status"`
}

// ValidStatus reports whether s is a status the ledger understands.
func ValidStatus(s string) bool {
	return s == StatusConfirmed || s == StatusCompleted
}
