package services

import (
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/utils"
)

// SeedDemoData loads a small demo fleet and two bookings, for local runs
// against an empty in-memory state. Fares on the bookings are snapshotted
// through the normal creation path.
func SeedDemoData(fleet *repositories.FleetRepository, bookings *repositories.BookingRepository) error {
	fleetSvc := FleetService{Fleet: fleet}
	bookingSvc := BookingService{Fleet: fleet, Bookings: bookings}

	cabs := []CabInput{
		{ID: "CAB001", Driver: "John Doe", Location: "Downtown", Type: "Sedan", Fare: 250.0},
		{ID: "CAB002", Driver: "Jane Smith", Location: "Airport", Type: "SUV", Fare: 350.0},
		{ID: "CAB003", Driver: "Mike Johnson", Location: "Mall", Type: "Hatchback", Fare: 200.0},
	}
	for _, c := range cabs {
		if _, err := fleetSvc.AddCab(c); err != nil {
			return err
		}
	}

	demo := []BookingInput{
		{ID: "B001", CabID: "CAB001", Customer: "Alice Brown", From: "Downtown", To: "Airport"},
		{ID: "B002", CabID: "CAB002", Customer: "Bob Wilson", From: "Airport", To: "City Center"},
	}
	for _, b := range demo {
		if _, err := bookingSvc.CreateBooking(b); err != nil {
			return err
		}
	}

	utils.LogEvent("", "seed", "demo_data", "loaded sample cabs and bookings")
	return nil
}
