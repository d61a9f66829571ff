package service

import (
	"context"
	"time"

	"fieldmate/internal/apperr"
	"fieldmate/internal/model"
	"fieldmate/internal/repository"
	"fieldmate/internal/state"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type SaleRequest struct {
	Date           string `json:"date" binding:"required"`
	ProductName    string `json:"productName" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	Price          string `json:"price" binding:"required"` // decimal string
	BillID         string `json:"billId"`
	BillNumber     string `json:"billNumber"`
	CustomerNumber string `json:"customerNumber"`
}

type SaleResponse struct {
	ID             uint   `json:"id"`
	Date           string `json:"date"`
	Timestamp      int64  `json:"timestamp"`
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	Price          string `json:"price"`
	Value          string `json:"value"`
	BillID         string `json:"billId,omitempty"`
	BillNumber     string `json:"billNumber,omitempty"`
	CustomerNumber string `json:"customerNumber,omitempty"`
	HasBillImage   bool   `json:"hasBillImage"`
}

func toSaleResponse(s model.Sale) SaleResponse {
	return SaleResponse{
		ID:             s.ID,
		Date:           s.Date,
		Timestamp:      s.Timestamp,
		ProductName:    s.ProductName,
		Quantity:       s.Quantity,
		Price:          s.Price.String(),
		Value:          s.Value().String(),
		BillID:         s.BillID,
		BillNumber:     s.BillNumber,
		CustomerNumber: s.CustomerNumber,
		HasBillImage:   s.HasBillImage(),
	}
}

// --- Interface ---

type SaleService interface {
	Add(ctx context.Context, req SaleRequest) (SaleResponse, error)
	Update(ctx context.Context, id uint, req SaleRequest) (SaleResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) []SaleResponse
	AttachBill(ctx context.Context, id uint, image []byte, mimeType string) error
	BillImage(ctx context.Context, id uint) ([]byte, string, error)
}

type saleService struct {
	repo     repository.SaleRepository
	cache    *state.Cache
	notifier Notifier
	now      func() time.Time
}

func NewSaleService(repo repository.SaleRepository, cache *state.Cache, notifier Notifier) SaleService {
	return &saleService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
	}
}

// --- Implementation ---

func (s *saleService) Add(ctx context.Context, req SaleRequest) (SaleResponse, error) {
	sale, err := s.buildSale(req)
	if err != nil {
		return SaleResponse{}, err
	}
	sale.Timestamp = s.now().UnixMilli()
	if sale.BillID == "" {
		sale.BillID = uuid.NewString()
	}

	if err := s.repo.Add(ctx, &sale); err != nil {
		return SaleResponse{}, err
	}
	if err := s.cache.ReloadSales(ctx); err != nil {
		return SaleResponse{}, err
	}
	s.notify(CollectionSales, "created")
	return toSaleResponse(sale), nil
}

func (s *saleService) Update(ctx context.Context, id uint, req SaleRequest) (SaleResponse, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return SaleResponse{}, err
	}

	sale, err := s.buildSale(req)
	if err != nil {
		return SaleResponse{}, err
	}
	// Full replacement by id; the attached image is managed through the
	// bill endpoints and survives an edit.
	sale.ID = existing.ID
	sale.Timestamp = existing.Timestamp
	sale.BillImage = existing.BillImage
	sale.BillImageMIME = existing.BillImageMIME

	if err := s.repo.Update(ctx, &sale); err != nil {
		return SaleResponse{}, err
	}
	if err := s.cache.ReloadSales(ctx); err != nil {
		return SaleResponse{}, err
	}
	s.notify(CollectionSales, "updated")
	return toSaleResponse(sale), nil
}

func (s *saleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.ReloadSales(ctx); err != nil {
		return err
	}
	s.notify(CollectionSales, "deleted")
	return nil
}

func (s *saleService) List(ctx context.Context) []SaleResponse {
	sales := s.cache.Sales()
	out := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, toSaleResponse(sale))
	}
	return out
}

func (s *saleService) AttachBill(ctx context.Context, id uint, image []byte, mimeType string) error {
	if len(image) == 0 {
		return apperr.Validation("bill image is empty")
	}
	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	sale.BillImage = image
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	sale.BillImageMIME = mimeType

	if err := s.repo.Update(ctx, sale); err != nil {
		return err
	}
	if err := s.cache.ReloadSales(ctx); err != nil {
		return err
	}
	s.notify(CollectionSales, "updated")
	return nil
}

func (s *saleService) BillImage(ctx context.Context, id uint) ([]byte, string, error) {
	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !sale.HasBillImage() {
		return nil, "", apperr.NotFound("sale has no bill image")
	}
	return sale.BillImage, sale.BillImageMIME, nil
}

// buildSale validates the request before any persistence call; a rejected
// request causes no state change.
func (s *saleService) buildSale(req SaleRequest) (model.Sale, error) {
	if err := validateDate(req.Date); err != nil {
		return model.Sale{}, err
	}
	if req.Quantity < 1 {
		return model.Sale{}, apperr.Validation("quantity must be at least 1")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return model.Sale{}, apperr.Validation("price must be a decimal number")
	}
	if !price.IsPositive() {
		return model.Sale{}, apperr.Validation("price must be greater than zero")
	}
	if req.CustomerNumber != "" {
		if err := validatePhone(req.CustomerNumber, "customer number"); err != nil {
			return model.Sale{}, err
		}
	}

	return model.Sale{
		Date:           req.Date,
		ProductName:    req.ProductName,
		Quantity:       req.Quantity,
		Price:          price,
		BillID:         req.BillID,
		BillNumber:     req.BillNumber,
		CustomerNumber: req.CustomerNumber,
	}, nil
}

func (s *saleService) notify(collection, action string) {
	if s.notifier != nil {
		s.notifier.NotifyChange(collection, action)
	}
}
