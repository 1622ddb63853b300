package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *App) GetSummaryReport(c *gin.Context) {
	pdf, filename, err := a.reportService(c).GenerateSummary()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
