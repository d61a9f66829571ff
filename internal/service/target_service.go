package service

import (
	"context"

	"fieldmate/internal/apperr"
	"fieldmate/internal/model"
	"fieldmate/internal/repository"
	"fieldmate/internal/state"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// TargetRequest always carries all six figures; missing fields default to 0.
type TargetRequest struct {
	Date            string `json:"date" binding:"required"`
	DayTarget       string `json:"dayTarget"`
	DayAchievement  string `json:"dayAchievement"`
	WeekTarget      string `json:"weekTarget"`
	WeekAchievement string `json:"weekAchievement"`
	EOLTarget       string `json:"eolTarget"`
	EOLAchieve      string `json:"eolAchieve"`
}

// --- Interface ---

type TargetService interface {
	// Save keeps one record per date: an existing record for the date is
	// replaced whole.
	Save(ctx context.Context, req TargetRequest) (*model.Target, error)
	List(ctx context.Context) []model.Target
	ForDate(ctx context.Context, date string) *model.Target
}

type targetService struct {
	repo     repository.TargetRepository
	cache    *state.Cache
	notifier Notifier
}

func NewTargetService(repo repository.TargetRepository, cache *state.Cache, notifier Notifier) TargetService {
	return &targetService{repo: repo, cache: cache, notifier: notifier}
}

// --- Implementation ---

func (s *targetService) Save(ctx context.Context, req TargetRequest) (*model.Target, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	record := model.Target{Date: req.Date}
	fields := []struct {
		raw  string
		dest *decimal.Decimal
		name string
	}{
		{req.DayTarget, &record.DayTarget, "dayTarget"},
		{req.DayAchievement, &record.DayAchievement, "dayAchievement"},
		{req.WeekTarget, &record.WeekTarget, "weekTarget"},
		{req.WeekAchievement, &record.WeekAchievement, "weekAchievement"},
		{req.EOLTarget, &record.EOLTarget, "eolTarget"},
		{req.EOLAchieve, &record.EOLAchieve, "eolAchieve"},
	}
	for _, f := range fields {
		value, err := parseFigure(f.raw, f.name)
		if err != nil {
			return nil, err
		}
		*f.dest = value
	}

	stored, err := s.repo.SaveForDate(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := s.cache.ReloadTargets(ctx); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.NotifyChange(CollectionTargets, "saved")
	}
	return stored, nil
}

func (s *targetService) List(ctx context.Context) []model.Target {
	return s.cache.Targets()
}

func (s *targetService) ForDate(ctx context.Context, date string) *model.Target {
	for _, t := range s.cache.Targets() {
		if t.Date == date {
			record := t
			return &record
		}
	}
	return nil
}

func parseFigure(raw, name string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperr.Validation(name + " must be a decimal number")
	}
	if value.IsNegative() {
		return decimal.Zero, apperr.Validation(name + " must not be negative")
	}
	return value, nil
}
