package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *App) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"cabs":     a.Fleet.Count(),
		"bookings": a.Bookings.Count(),
	})
}
