package handler

import (
	"net/http"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService service.AttendanceService
	reportService     service.ReportService
}

func NewAttendanceHandler(attendanceService service.AttendanceService, reportService service.ReportService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

func (h *AttendanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	attendance := router.Group("/api/attendance", middleware.RequireProfile())
	{
		attendance.GET("", h.ListAttendance)
		attendance.POST("/present", h.MarkPresent)
		attendance.POST("/status", h.MarkStatus)
		attendance.GET("/share", h.ShareMessage)
	}
}

// MarkPresent marks Present for a date, geofenced against the store location
func (h *AttendanceHandler) MarkPresent(c *gin.Context) {
	var req service.MarkPresentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.attendanceService.MarkPresent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// MarkStatus marks Week Off or Leave for a date
func (h *AttendanceHandler) MarkStatus(c *gin.Context) {
	var req service.MarkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.attendanceService.MarkStatus(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// ListAttendance returns all attendance records from the cache
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	records := h.attendanceService.List(c.Request.Context())
	c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
}

// ShareMessage builds the "I am in the store" text and messaging link
func (h *AttendanceHandler) ShareMessage(c *gin.Context) {
	message, link := h.reportService.AttendanceShareMessage(c.Request.Context())
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"message":   message,
		"shareLink": link,
	}))
}
