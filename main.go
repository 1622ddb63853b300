package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/config"
	router "github.com/Wajeehathabbu2206/CabBookingSystem/internal/http"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/http/handlers"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/repositories"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/services"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	fleet := repositories.NewFleetRepository()
	bookings := repositories.NewBookingRepository()

	if env.SeedDemoData {
		if err := services.SeedDemoData(fleet, bookings); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	app := handlers.NewApp(env, fleet, bookings)
	r := router.NewRouter(env, app)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("cab booking backend listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
