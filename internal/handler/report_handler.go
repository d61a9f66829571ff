package handler

import (
	"net/http"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports", middleware.RequireProfile())
	{
		reports.GET("/daily", h.Daily)
		reports.GET("/daily/share", h.DailyShare)
		reports.GET("/range", h.RangeSales)
		reports.GET("/range/render", h.RenderReport)
	}
}

// Daily returns the per-day rollup: value, quantity, family subtotals, MTD
func (h *ReportHandler) Daily(c *gin.Context) {
	summary, err := h.reportService.Daily(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// DailyShare builds the end-of-day share text and messaging link
func (h *ReportHandler) DailyShare(c *gin.Context) {
	message, link, err := h.reportService.DailyShareMessage(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"message":   message,
		"shareLink": link,
	}))
}

// RangeSales returns the sales between from and to inclusive
func (h *ReportHandler) RangeSales(c *gin.Context) {
	sales, err := h.reportService.RangeSales(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, sales))
}

// RenderReport hands the filtered range to the document renderer
func (h *ReportHandler) RenderReport(c *gin.Context) {
	document, err := h.reportService.RenderReport(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", document)
}
