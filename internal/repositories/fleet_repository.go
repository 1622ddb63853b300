package repositories

import (
	"sync"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain/models"
)

// FleetRepository owns the ordered collection of cabs. A single mutex guards
// the slice so concurrent HTTP requests serialize on it; listings stay in
// insertion order and lookups stay first-match-wins.
type FleetRepository struct {
	mu   sync.Mutex
	cabs []models.Cab
}

func NewFleetRepository() *FleetRepository {
	return &FleetRepository{}
}

// Add appends a cab. Duplicate identifiers are rejected so that lookups by
// ID always resolve to exactly one cab.
func (r *FleetRepository) Add(cab models.Cab) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cabs {
		if c.ID == cab.ID {
			return domain.ConflictError{Resource: "cab", Msg: "id " + cab.ID + " already exists"}
		}
	}
	r.cabs = append(r.cabs, cab)
	return nil
}

// FindByID scans in insertion order and returns the first match. Absence is
// reported through the bool, not an error.
func (r *FleetRepository) FindByID(id string) (models.Cab, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cabs {
		if c.ID == id {
			return c, true
		}
	}
	return models.Cab{}, false
}

// List returns a snapshot copy in insertion order. Callers may range over it
// freely; later mutations never show through.
func (r *FleetRepository) List() []models.Cab {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Cab, len(r.cabs))
	copy(out, r.cabs)
	return out
}

func (r *FleetRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cabs)
}
