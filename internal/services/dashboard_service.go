package services

import (
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain/models"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
)

// DashboardService derives the stat figures the dashboard shows. Every call
// recomputes from current fleet/ledger contents; no randomness, no cached
// state, safe at any refresh cadence.
type DashboardService struct {
	Fleet    *repositories.FleetRepository
	Bookings *repositories.BookingRepository
}

func (s DashboardService) Snapshot() models.DashboardStats {
	cabs := s.Fleet.List()

	available := 0
	for _, c := range cabs {
		if s.Bookings.ActiveCountForCab(c.ID) == 0 {
			available++
		}
	}

	completed := s.Bookings.CountByStatus(models.StatusCompleted)
	return models.DashboardStats{
		TotalCabs:         len(cabs),
		ActiveBookings:    s.Bookings.Count() - completed,
		CompletedBookings: completed,
		AvailableCabs:     available,
		TotalRevenue:      s.Bookings.TotalRevenue(),
	}
}
