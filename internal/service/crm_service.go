package service

import (
	"context"
	"time"

	"fieldmate/internal/apperr"
	"fieldmate/internal/model"
	"fieldmate/internal/repository"
	"fieldmate/internal/state"
)

// --- DTOs ---

type CRMIssueRequest struct {
	Date          string `json:"date" binding:"required"`
	Category      string `json:"category" binding:"required,oneof=Installation Complaint 'Stock Issue'"`
	CustomerName  string `json:"customerName" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	Product       string `json:"product"`
	Message       string `json:"message"`
}

type CRMStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Open Closed"`
}

// --- Interface ---

type CRMService interface {
	Add(ctx context.Context, req CRMIssueRequest) (*model.CRMIssue, error)
	// SetStatus toggles Open/Closed; the rest of the record is immutable.
	SetStatus(ctx context.Context, id uint, status string) (*model.CRMIssue, error)
	List(ctx context.Context) []model.CRMIssue
	ListByStatus(ctx context.Context, status string) ([]model.CRMIssue, error)
}

type crmService struct {
	repo     repository.CRMRepository
	cache    *state.Cache
	notifier Notifier
	now      func() time.Time
}

func NewCRMService(repo repository.CRMRepository, cache *state.Cache, notifier Notifier) CRMService {
	return &crmService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
	}
}

// --- Implementation ---

func (s *crmService) Add(ctx context.Context, req CRMIssueRequest) (*model.CRMIssue, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if err := validatePhone(req.ContactNumber, "contact number"); err != nil {
		return nil, err
	}

	issue := model.CRMIssue{
		Date:          req.Date,
		Timestamp:     s.now().UnixMilli(),
		Category:      req.Category,
		CustomerName:  req.CustomerName,
		ContactNumber: req.ContactNumber,
		Product:       req.Product,
		Message:       req.Message,
		Status:        model.CRMOpen,
	}
	if err := s.repo.Add(ctx, &issue); err != nil {
		return nil, err
	}
	if err := s.cache.ReloadCRMIssues(ctx); err != nil {
		return nil, err
	}
	s.notify("created")
	return &issue, nil
}

func (s *crmService) SetStatus(ctx context.Context, id uint, status string) (*model.CRMIssue, error) {
	if status != model.CRMOpen && status != model.CRMClosed {
		return nil, apperr.Validation("status must be Open or Closed")
	}

	issue, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	issue.Status = status
	if err := s.repo.Update(ctx, issue); err != nil {
		return nil, err
	}
	if err := s.cache.ReloadCRMIssues(ctx); err != nil {
		return nil, err
	}
	s.notify("updated")
	return issue, nil
}

func (s *crmService) List(ctx context.Context) []model.CRMIssue {
	return s.cache.CRMIssues()
}

func (s *crmService) ListByStatus(ctx context.Context, status string) ([]model.CRMIssue, error) {
	if status != model.CRMOpen && status != model.CRMClosed {
		return nil, apperr.Validation("status must be Open or Closed")
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *crmService) notify(action string) {
	if s.notifier != nil {
		s.notifier.NotifyChange(CollectionCRM, action)
	}
}
