package services

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain/models"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/utils"
)

// ReportService renders a PDF summary of the fleet and ledger.
type ReportService struct {
	Fleet     *repositories.FleetRepository
	Bookings  *repositories.BookingRepository
	RequestID string
}

// GenerateSummary builds the summary report and returns the PDF bytes with a
// suggested download filename. It only reads the collections.
func (s ReportService) GenerateSummary() ([]byte, string, error) {
	cabs := s.Fleet.List()
	bookings := s.Bookings.List()

	totalRevenue := 0.0
	active := 0
	for _, b := range bookings {
		totalRevenue += b.Fare
		if b.Status != models.StatusCompleted {
			active++
		}
	}
	avgFare := totalRevenue / float64(max(len(bookings), 1))
	utilization := float64(active*100) / float64(max(len(cabs), 1))

	byType := map[string]int{}
	for _, c := range cabs {
		byType[c.Type]++
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fleet Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLEET SUMMARY REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	lines := []string{
		fmt.Sprintf("Total Cabs       : %d", len(cabs)),
		fmt.Sprintf("Total Bookings   : %d", len(bookings)),
		fmt.Sprintf("Active Bookings  : %d", active),
		fmt.Sprintf("Total Revenue    : %s", utils.FormatMoney(totalRevenue)),
		fmt.Sprintf("Average Fare     : %s", utils.FormatMoney(avgFare)),
		fmt.Sprintf("Utilization Rate : %.1f%%", utilization),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Cabs by type:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(types) == 0 {
		pdf.Cell(0, 6, "(no cabs registered)")
		pdf.Ln(6)
	}
	for _, t := range types {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d", t, byType[t]))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "report", "summary", fmt.Sprintf("cabs=%d bookings=%d", len(cabs), len(bookings)))
	filename := "fleet_summary_" + time.Now().Format("20060102_1504") + ".pdf"
	return buf.Bytes(), filename, nil
}
