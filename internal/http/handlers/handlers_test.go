package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/config"
	api "github.com/Wajeehathabbu2206/CabBookingSystem/internal/http"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/http/handlers"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := config.Env{
		AppAddr:    ":0",
		ExportPath: filepath.Join(t.TempDir(), "bookings.csv"),
	}
	app := handlers.NewApp(env, repositories.NewFleetRepository(), repositories.NewBookingRepository())
	return api.NewRouter(env, app)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCabAndBookingFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cabs", gin.H{
		"id": "CAB001", "driver": "John Doe", "location": "Downtown", "type": "Sedan", "fare": 250.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/cabs status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"id": "B001", "cabId": "CAB001", "customer": "Alice", "from": "Downtown", "to": "Airport",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/bookings status = %d, body %s", w.Code, w.Body.String())
	}
	var booking struct {
		Fare   float64 `json:"fare"`
		Status string  `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &booking); err != nil {
		t.Fatalf("decode booking response: %v", err)
	}
	if booking.Fare != 250.0 || booking.Status != "Confirmed" {
		t.Fatalf("booking response = %+v, want fare 250 status Confirmed", booking)
	}

	// cab listing now shows the cab as unavailable
	w = doJSON(t, r, http.MethodGet, "/api/cabs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/cabs status = %d", w.Code)
	}
	var listing struct {
		Cabs []struct {
			ID        string `json:"id"`
			Available bool   `json:"available"`
		} `json:"cabs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode cab listing: %v", err)
	}
	if len(listing.Cabs) != 1 || listing.Cabs[0].Available {
		t.Fatalf("cab listing = %+v, want CAB001 unavailable", listing.Cabs)
	}

	// completing the booking frees the cab
	w = doJSON(t, r, http.MethodPut, "/api/bookings/B001/status", gin.H{"status": "Completed"})
	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, "/api/cabs/CAB001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/cabs/CAB001 status = %d", w.Code)
	}
	var single struct {
		Available bool `json:"available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &single); err != nil {
		t.Fatalf("decode cab response: %v", err)
	}
	if !single.Available {
		t.Fatalf("cab not available after its booking completed")
	}
}

func TestRouterServesWithEmptyCORSAllowlist(t *testing.T) {
	// newTestRouter builds an Env with no CORS origins; the router must come
	// up without the CORS layer instead of panicking
	r := newTestRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/api/health", nil); w.Code != http.StatusOK {
		t.Fatalf("GET /api/health status = %d", w.Code)
	}
}

func TestGetUnknownCabIs404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/cabs/CAB404", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /api/cabs/CAB404 status = %d, want 404", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if resp.Code != "not_found" {
		t.Fatalf("error code = %q, want not_found", resp.Code)
	}
}

func TestBookingAgainstUnknownCabIs422(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"id": "B001", "cabId": "CAB999", "customer": "Alice", "from": "A", "to": "B",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body %s", w.Code, w.Body.String())
	}

	// ledger must be unchanged
	w = doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	var listing struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode booking listing: %v", err)
	}
	if listing.Total != 0 {
		t.Fatalf("ledger size = %d after rejected booking, want 0", listing.Total)
	}
}

func TestValidationAndConflictStatuses(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cabs", gin.H{
		"id": "CAB001", "driver": "", "location": "Downtown", "type": "Sedan", "fare": 250.0,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank driver status = %d, want 400", w.Code)
	}

	cab := gin.H{"id": "CAB001", "driver": "John Doe", "location": "Downtown", "type": "Sedan", "fare": 250.0}
	if w := doJSON(t, r, http.MethodPost, "/api/cabs", cab); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/cabs", cab); w.Code != http.StatusConflict {
		t.Fatalf("duplicate cab status = %d, want 409", w.Code)
	}

	if w := doJSON(t, r, http.MethodPut, "/api/bookings/B404/status", gin.H{"status": "Completed"}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown booking status update = %d, want 404", w.Code)
	}
}

func TestDashboardAndExportEndpoints(t *testing.T) {
	r := newTestRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/api/cabs", gin.H{
		"id": "CAB001", "driver": "John Doe", "location": "Downtown", "type": "Sedan", "fare": 250.0,
	}); w.Code != http.StatusCreated {
		t.Fatalf("create cab status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"id": "B001", "cabId": "CAB001", "customer": "Alice", "from": "A", "to": "B",
	}); w.Code != http.StatusCreated {
		t.Fatalf("create booking status = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/dashboard status = %d", w.Code)
	}
	var stats struct {
		TotalCabs      int     `json:"totalCabs"`
		ActiveBookings int     `json:"activeBookings"`
		AvailableCabs  int     `json:"availableCabs"`
		TotalRevenue   float64 `json:"totalRevenue"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if stats.TotalCabs != 1 || stats.ActiveBookings != 1 || stats.AvailableCabs != 0 || stats.TotalRevenue != 250 {
		t.Fatalf("dashboard = %+v", stats)
	}

	w = doJSON(t, r, http.MethodPost, "/api/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/export status = %d, body %s", w.Code, w.Body.String())
	}
	var export struct {
		Rows int `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &export); err != nil {
		t.Fatalf("decode export response: %v", err)
	}
	if export.Rows != 1 {
		t.Fatalf("export rows = %d, want 1", export.Rows)
	}

	w = doJSON(t, r, http.MethodGet, "/api/reports/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/reports/summary status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("report content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("report body does not look like a PDF")
	}
}
