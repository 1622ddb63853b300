package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportBookings writes the ledger to the configured CSV destination and
// reports how many rows were written. No streaming progress; the write is
// fast, bounded and local.
func (a *App) ExportBookings(c *gin.Context) {
	path := a.Env.ExportPath

	rows, err := a.exportService(c).ExportCSV(path)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "rows": rows})
}
