package handler

import (
	"net/http"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type TargetHandler struct {
	targetService service.TargetService
	reportService service.ReportService
}

func NewTargetHandler(targetService service.TargetService, reportService service.ReportService) *TargetHandler {
	return &TargetHandler{
		targetService: targetService,
		reportService: reportService,
	}
}

func (h *TargetHandler) RegisterRoutes(router *gin.RouterGroup) {
	targets := router.Group("/api/targets", middleware.RequireProfile())
	{
		targets.GET("", h.ListTargets)
		targets.PUT("", h.SaveTarget)
		targets.GET("/share", h.ShareMessage)
	}
}

// SaveTarget saves the six figures for a date, replacing any existing record
func (h *TargetHandler) SaveTarget(c *gin.Context) {
	var req service.TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.targetService.Save(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// ListTargets returns all target records from the cache
func (h *TargetHandler) ListTargets(c *gin.Context) {
	records := h.targetService.List(c.Request.Context())
	c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
}

// ShareMessage builds the target summary text for a date
func (h *TargetHandler) ShareMessage(c *gin.Context) {
	date := c.Query("date")
	message, link, err := h.reportService.TargetShareMessage(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"message":   message,
		"shareLink": link,
	}))
}
