package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/config"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/http/middleware"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/services"
)

// App bundles the owned collections and config the handlers work against.
// The collections are passed in by handle; there is no package-level state.
type App struct {
	Env      config.Env
	Fleet    *repositories.FleetRepository
	Bookings *repositories.BookingRepository
}

func NewApp(env config.Env, fleet *repositories.FleetRepository, bookings *repositories.BookingRepository) *App {
	return &App{Env: env, Fleet: fleet, Bookings: bookings}
}

// per-request service constructors so log lines carry the request_id

func (a *App) fleetService(c *gin.Context) services.FleetService {
	return services.FleetService{Fleet: a.Fleet, RequestID: middleware.GetRequestID(c)}
}

func (a *App) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{Fleet: a.Fleet, Bookings: a.Bookings, RequestID: middleware.GetRequestID(c)}
}

func (a *App) exportService(c *gin.Context) services.ExportService {
	return services.ExportService{Bookings: a.Bookings, RequestID: middleware.GetRequestID(c)}
}

func (a *App) reportService(c *gin.Context) services.ReportService {
	return services.ReportService{Fleet: a.Fleet, Bookings: a.Bookings, RequestID: middleware.GetRequestID(c)}
}

func (a *App) dashboardService() services.DashboardService {
	return services.DashboardService{Fleet: a.Fleet, Bookings: a.Bookings}
}
