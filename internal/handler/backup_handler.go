package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// maxImportBytes bounds the import body; bill images inflate backups but a
// device database fits comfortably under this.
const maxImportBytes = 256 << 20

type BackupHandler struct {
	backupService service.BackupService
}

func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (h *BackupHandler) RegisterRoutes(router *gin.RouterGroup) {
	backup := router.Group("/api/backup", middleware.RequireProfile())
	{
		backup.GET("/export", h.Export)
		backup.POST("/import", h.Import)
	}
}

// Export downloads the full database as one JSON document
func (h *BackupHandler) Export(c *gin.Context) {
	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("sales_backup_%s.json", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, doc)
}

// Import destructively replaces all collections with the uploaded document
func (h *BackupHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unreadable request body"))
		return
	}

	summary, err := h.backupService.Import(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
