package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/export"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := &exportHandler{exportService: exportService}
	rg.GET("/exports/entries", h.exportEntries)
}

// exportEntries godoc
// @Summary Download entries
// @Description Downloads every entry matching the filters as CSV, JSON or XLSX.
// @Tags exports
// @Produce octet-stream
// @Param format query string false "csv, json or xlsx" default(csv)
// @Param month query int false "Month"
// @Param year query int false "Year"
// @Param kind query string false "entrada or saida"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/entries [get]
func (h *exportHandler) exportEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	format, err := export.ParseFormat(params.Format)
	if err != nil {
		badRequest(c, err)
		return
	}

	file, err := h.exportService.ExportEntries(c.Request.Context(), params.ToFilter(), format, userID)
	if err != nil {
		respondError(c, err, "Failed to export entries")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
