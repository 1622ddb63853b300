package services

import (
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain/models"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/utils"
)

// BookingService owns booking creation and the derived queries the dashboard
// and cab listings are built from. It needs the fleet registry to resolve
// cab references and snapshot fares.
type BookingService struct {
	Fleet     *repositories.FleetRepository
	Bookings  *repositories.BookingRepository
	RequestID string
}

// BookingInput carries raw booking fields from the presentation layer. The
// fare is never part of the input; it is snapshotted from the cab.
type BookingInput struct {
	ID       string `json:"id"`
	CabID    string `json:"cabId"`
	Customer string `json:"customer"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// CreateBooking resolves the cab, copies its current fare into the new
// booking and appends it with status Confirmed. A dangling cab reference
// fails with ReferentialError and leaves the ledger untouched.
func (s BookingService) CreateBooking(in BookingInput) (models.Booking, error) {
	b := models.Booking{
		ID:       utils.TrimOrEmpty(in.ID),
		CabID:    utils.TrimOrEmpty(in.CabID),
		Customer: utils.NormalizeSpace(in.Customer),
		From:     utils.NormalizeSpace(in.From),
		To:       utils.NormalizeSpace(in.To),
	}

	if err := requireFields(map[string]string{
		"id":       b.ID,
		"cabId":    b.CabID,
		"customer": b.Customer,
		"from":     b.From,
		"to":       b.To,
	}); err != nil {
		return models.Booking{}, err
	}

	cab, ok := s.Fleet.FindByID(b.CabID)
	if !ok {
		return models.Booking{}, domain.ReferentialError{Resource: "cab", ID: b.CabID}
	}

	b.Fare = cab.Fare
	b.Status = models.StatusConfirmed

	if err := s.Bookings.Add(b); err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create", "booking_id="+b.ID+" cab_id="+b.CabID)
	return b, nil
}

// SetStatus advances a booking's status.
func (s BookingService) SetStatus(id, status string) error {
	if !models.ValidStatus(status) {
		return domain.ValidationError{Field: "status", Msg: "must be Confirmed or Completed"}
	}
	id = utils.TrimOrEmpty(id)
	if err := s.Bookings.SetStatus(id, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "set_status", "booking_id="+id+" status="+status)
	return nil
}

// IsAvailable reports whether no non-Completed booking references cabID.
func (s BookingService) IsAvailable(cabID string) bool {
	return s.Bookings.ActiveCountForCab(cabID) == 0
}

// TotalRevenue is the deterministic fare sum over the whole ledger.
func (s BookingService) TotalRevenue() float64 {
	return s.Bookings.TotalRevenue()
}

func (s BookingService) CountByStatus(status string) int {
	return s.Bookings.CountByStatus(status)
}

// ListBookings returns the ledger snapshot in insertion order.
func (s BookingService) ListBookings() []models.Booking {
	return s.Bookings.List()
}
