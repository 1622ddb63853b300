package services

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/utils"
)

var exportHeader = []string{"BookingID", "CabID", "Customer", "From", "To", "Fare", "Status"}

// ExportService writes the booking ledger to a CSV file.
type ExportService struct {
	Bookings  *repositories.BookingRepository
	RequestID string
}

// ExportCSV writes one header line plus one row per booking in ledger order
// and returns the number of rows written. Fields containing the delimiter or
// newlines are quoted by encoding/csv. The file is created (or truncated),
// fully written and closed before returning; on failure whatever was flushed
// stays on disk and the caller decides what to do with it.
func (s ExportService) ExportCSV(path string) (int, error) {
	bookings := s.Bookings.List()

	f, err := os.Create(path)
	if err != nil {
		return 0, domain.InternalError{Msg: "cannot open export destination", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return 0, domain.InternalError{Msg: "write export header", Err: err}
	}
	for _, b := range bookings {
		row := []string{b.ID, b.CabID, b.Customer, b.From, b.To, utils.FormatMoney(b.Fare), b.Status}
		if err := w.Write(row); err != nil {
			return 0, domain.InternalError{Msg: "write export row", Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, domain.InternalError{Msg: "flush export file", Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, domain.InternalError{Msg: "close export file", Err: err}
	}

	utils.LogEvent(s.RequestID, "export", "csv", fmt.Sprintf("path=%s rows=%d", path, len(bookings)))
	return len(bookings), nil
}
