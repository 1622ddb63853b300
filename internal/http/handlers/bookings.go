package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/services"
)

func (a *App) CreateBooking(c *gin.Context) {
	var in services.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	b, err := a.bookingService(c).CreateBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (a *App) GetBookings(c *gin.Context) {
	bookings := a.bookingService(c).ListBookings()
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": len(bookings)})
}

type statusUpdate struct {
	Status string `json:"status"`
}

func (a *App) UpdateBookingStatus(c *gin.Context) {
	var in statusUpdate
	if !BindJSONOrError(c, &in) {
		return
	}

	id := c.Param("id")
	if err := a.bookingService(c).SetStatus(id, in.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": in.Status})
}
