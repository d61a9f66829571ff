package handler

import (
	"net/http"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Login and settings read stay open: the UI needs both before the
	// profile gate has issued a token.
	router.POST("/api/login", h.Login)
	router.GET("/api/settings", h.GetSettings)

	gated := router.Group("", middleware.RequireProfile())
	{
		gated.PATCH("/api/settings", h.UpdateSettings)
		gated.POST("/api/logout", h.Logout)
	}
}

// Login completes the local profile and issues the session token
func (h *SettingsHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.settingsService.Login(c.Request.Context(), req, middleware.GenerateToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// Logout flips the logged-in flag off
func (h *SettingsHandler) Logout(c *gin.Context) {
	if err := h.settingsService.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"loggedOut": true}))
}

// GetSettings returns the singleton, bootstrapping defaults on first run
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}

// UpdateSettings merges partial fields into the singleton
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch service.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}
