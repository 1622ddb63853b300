package repositories

import (
	"sync"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain/models"
)

// BookingRepository owns the ordered booking ledger and answers the derived
// aggregate queries over it. All queries are plain linear scans; at fleet
// scale an index is not worth the bookkeeping.
type BookingRepository struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Add appends a booking, preserving ledger order.
func (r *BookingRepository) Add(b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.ID == b.ID {
			return domain.ConflictError{Resource: "booking", Msg: "id " + b.ID + " already exists"}
		}
	}
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *BookingRepository) FindByID(id string) (models.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// SetStatus advances the named booking's status in place.
func (r *BookingRepository) SetStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return nil
		}
	}
	return domain.NotFoundError{Resource: "booking", ID: id}
}

// List returns a snapshot copy in ledger order.
func (r *BookingRepository) List() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *BookingRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

// ActiveCountForCab counts bookings against cabID that are not Completed.
// A cab with a zero count is available.
func (r *BookingRepository) ActiveCountForCab(cabID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, b := range r.bookings {
		if b.CabID == cabID && b.Status != models.StatusCompleted {
			n++
		}
	}
	return n
}

// TotalRevenue sums fares over the whole ledger regardless of status.
// Deterministic: an empty ledger yields 0.
func (r *BookingRepository) TotalRevenue() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sum float64
	for _, b := range r.bookings {
		sum += b.Fare
	}
	return sum
}

func (r *BookingRepository) CountByStatus(status string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}
