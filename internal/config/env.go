package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Env is the flat runtime configuration, loaded once at startup.
type Env struct {
	AppAddr          string
	GinMode          string
	ExportPath       string
	DashboardRefresh time.Duration
	CORSOrigins      []string
	SeedDemoData     bool
}

// LoadEnv reads configuration from environment variables with sane defaults.
func LoadEnv() Env {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("EXPORT_PATH", "bookings.csv")
	v.SetDefault("DASHBOARD_REFRESH", "5s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("SEED_DEMO_DATA", false)

	refresh := 5 * time.Second
	if d, err := time.ParseDuration(strings.TrimSpace(v.GetString("DASHBOARD_REFRESH"))); err == nil && d > 0 {
		refresh = d
	}

	origins := []string{}
	for _, o := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	exportPath := strings.TrimSpace(v.GetString("EXPORT_PATH"))
	if exportPath == "" {
		exportPath = "bookings.csv"
	}

	return Env{
		AppAddr:          strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:          strings.TrimSpace(v.GetString("GIN_MODE")),
		ExportPath:       exportPath,
		DashboardRefresh: refresh,
		CORSOrigins:      origins,
		SeedDemoData:     v.GetBool("SEED_DEMO_DATA"),
	}
}
