package services

import (
	"math"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain/models"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/utils"
)

// FleetService validates cab input and inserts into the registry.
type FleetService struct {
	Fleet     *repositories.FleetRepository
	RequestID string
}

// CabInput carries raw cab fields as received from the presentation layer.
type CabInput struct {
	ID       string  `json:"id"`
	Driver   string  `json:"driver"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	Fare     float64 `json:"fare"`
}

// AddCab validates and registers a new cab, returning the stored record.
func (s FleetService) AddCab(in CabInput) (models.Cab, error) {
	cab := models.Cab{
		ID:       utils.TrimOrEmpty(in.ID),
		Driver:   utils.NormalizeSpace(in.Driver),
		Location: utils.NormalizeSpace(in.Location),
		Type:     utils.NormalizeSpace(in.Type),
		Fare:     in.Fare,
	}

	if err := requireFields(map[string]string{
		"id":       cab.ID,
		"driver":   cab.Driver,
		"location": cab.Location,
		"type":     cab.Type,
	}); err != nil {
		return models.Cab{}, err
	}
	if math.IsNaN(cab.Fare) || math.IsInf(cab.Fare, 0) || cab.Fare < 0 {
		return models.Cab{}, domain.ValidationError{Field: "fare", Msg: "must be a finite non-negative number"}
	}

	if err := s.Fleet.Add(cab); err != nil {
		return models.Cab{}, err
	}

	utils.LogEvent(s.RequestID, "fleet", "add_cab", "cab_id="+cab.ID)
	return cab, nil
}

// GetCab resolves a cab by ID for the presentation layer, turning registry
// absence into NotFoundError.
func (s FleetService) GetCab(id string) (models.Cab, error) {
	id = utils.TrimOrEmpty(id)
	cab, ok := s.Fleet.FindByID(id)
	if !ok {
		return models.Cab{}, domain.NotFoundError{Resource: "cab", ID: id}
	}
	return cab, nil
}

// ListCabs returns the registry snapshot in insertion order.
func (s FleetService) ListCabs() []models.Cab {
	return s.Fleet.List()
}

func requireFields(fields map[string]string) error {
	// fixed iteration so the reported field is deterministic
	for _, name := range []string{"id", "cabId", "customer", "driver", "location", "type", "from", "to"} {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if v == "" {
			return domain.ValidationError{Field: name, Msg: "must not be empty"}
		}
	}
	return nil
}
