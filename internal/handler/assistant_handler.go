package handler

import (
	"io"
	"net/http"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantService service.AssistantService
}

func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

func (h *AssistantHandler) RegisterRoutes(router *gin.RouterGroup) {
	assistant := router.Group("/api/assistant", middleware.RequireProfile())
	{
		assistant.POST("/chat", h.Chat)
		assistant.POST("/scan-bill", h.ScanBill)
	}
}

// Chat forwards one message to the sales assistant
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req service.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	reply, err := h.assistantService.Chat(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, reply))
}

// ScanBill guesses a product name from a bill photo to pre-fill the entry
// form; an unreadable photo just yields a blank guess
func (h *AssistantHandler) ScanBill(c *gin.Context) {
	file, header, err := c.Request.FormFile("bill")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Missing bill file"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unreadable bill file"))
		return
	}

	guess := h.assistantService.ScanBill(c.Request.Context(), image, header.Header.Get("Content-Type"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, guess))
}
