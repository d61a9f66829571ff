package handler

import (
	"net/http"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/pagination"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type CRMHandler struct {
	crmService service.CRMService
}

func NewCRMHandler(crmService service.CRMService) *CRMHandler {
	return &CRMHandler{crmService: crmService}
}

func (h *CRMHandler) RegisterRoutes(router *gin.RouterGroup) {
	crm := router.Group("/api/crm", middleware.RequireProfile())
	{
		crm.POST("", h.CreateIssue)
		crm.GET("", h.ListIssues)
		crm.PUT("/:id/status", h.SetStatus)
	}
}

// CreateIssue logs a customer issue; new issues always start Open
func (h *CRMHandler) CreateIssue(c *gin.Context) {
	var req service.CRMIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	issue, err := h.crmService.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, issue))
}

// ListIssues returns issues, optionally filtered by status via the index
func (h *CRMHandler) ListIssues(c *gin.Context) {
	params := pagination.Parse(c)

	issues := h.crmService.List(c.Request.Context())
	if status := c.Query("status"); status != "" {
		filtered, err := h.crmService.ListByStatus(c.Request.Context(), status)
		if err != nil {
			respondError(c, err)
			return
		}
		issues = filtered
	}

	page, total := pagination.Slice(issues, params)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"issues": page,
		"total":  total,
		"page":   params.Page,
		"limit":  params.Limit,
	}))
}

// SetStatus toggles an issue between Open and Closed
func (h *CRMHandler) SetStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req service.CRMStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	issue, err := h.crmService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, issue))
}
