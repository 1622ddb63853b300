package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/config"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/http/handlers"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/http/middleware"
)

// NewRouter wires the presentation shell around the handler app. The app
// holds the fleet and ledger handles; nothing here touches them directly.
func NewRouter(env config.Env, app *handlers.App) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	// cors.New panics when every origin is disabled, so an empty allowlist
	// means no CORS layer rather than a crash at startup.
	if len(env.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", app.Health)

		cabs := apiGroup.Group("/cabs")
		cabs.GET("", app.GetCabs)
		cabs.POST("", app.CreateCab)
		cabs.GET("/:id", app.GetCabByID)

		bookings := apiGroup.Group("/bookings")
		bookings.GET("", app.GetBookings)
		bookings.POST("", app.CreateBooking)
		bookings.PUT("/:id/status", app.UpdateBookingStatus)

		dashboard := apiGroup.Group("/dashboard")
		dashboard.GET("", app.GetDashboard)
		dashboard.GET("/live", app.DashboardLive)

		apiGroup.POST("/export", app.ExportBookings)
		apiGroup.GET("/reports/summary", app.GetSummaryReport)
	}

	return r
}
