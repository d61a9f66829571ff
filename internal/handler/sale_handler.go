package handler

import (
	"io"
	"net/http"
	"strconv"

	"fieldmate/internal/middleware"
	"fieldmate/internal/service"
	"fieldmate/pkg/pagination"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

func (h *SaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/api/sales", middleware.RequireProfile())
	{
		sales.POST("", h.CreateSale)
		sales.GET("", h.ListSales)
		sales.PUT("/:id", h.UpdateSale)
		sales.DELETE("/:id", h.DeleteSale)
		sales.POST("/:id/bill", h.AttachBill)
		sales.GET("/:id/bill", h.DownloadBill)
	}
}

// CreateSale logs a new sale entry
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req service.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	sale, err := h.saleService.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, sale))
}

// ListSales returns the cached sales, most recent first, paginated
func (h *SaleHandler) ListSales(c *gin.Context) {
	params := pagination.Parse(c)
	page, total := pagination.Slice(h.saleService.List(c.Request.Context()), params)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"sales": page,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}

// UpdateSale replaces a sale whole by id
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req service.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	sale, err := h.saleService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, sale))
}

// DeleteSale removes a sale permanently
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.saleService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": id}))
}

// AttachBill stores the uploaded bill photo on the sale
func (h *SaleHandler) AttachBill(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

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

	mimeType := header.Header.Get("Content-Type")
	if err := h.saleService.AttachBill(c.Request.Context(), id, image, mimeType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"attached": id}))
}

// DownloadBill serves the stored bill image with its recorded MIME type
func (h *SaleHandler) DownloadBill(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	image, mimeType, err := h.saleService.BillImage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, mimeType, image)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return 0, err
	}
	return uint(id), nil
}
