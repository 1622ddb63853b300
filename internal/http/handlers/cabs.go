package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain/models"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/services"
)

// cabView is a cab record plus its derived availability flag.
type cabView struct {
	models.Cab
	Available bool `json:"available"`
}

func (a *App) CreateCab(c *gin.Context) {
	var in services.CabInput
	if !BindJSONOrError(c, &in) {
		return
	}

	cab, err := a.fleetService(c).AddCab(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cab)
}

func (a *App) GetCabs(c *gin.Context) {
	booking := a.bookingService(c)

	cabs := a.fleetService(c).ListCabs()
	out := make([]cabView, 0, len(cabs))
	for _, cab := range cabs {
		out = append(out, cabView{Cab: cab, Available: booking.IsAvailable(cab.ID)})
	}
	c.JSON(http.StatusOK, gin.H{"cabs": out, "total": len(out)})
}

func (a *App) GetCabByID(c *gin.Context) {
	cab, err := a.fleetService(c).GetCab(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cabView{Cab: cab, Available: a.bookingService(c).IsAvailable(cab.ID)})
}
