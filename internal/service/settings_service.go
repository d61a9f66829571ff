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

// SettingsPatch merges partial fields into the singleton; nil pointers leave
// the stored value untouched.
type SettingsPatch struct {
	UserName      *string  `json:"userName"`
	EmpID         *string  `json:"empId"`
	StoreName     *string  `json:"storeName"`
	StoreLocation *string  `json:"storeLocation"`
	Theme         *string  `json:"theme"`
	BrandWebsite  *string  `json:"brandWebsite"`
	DemoLink      *string  `json:"demoLink"`
	TollFree      *string  `json:"tollFree"`
	AIAPIKey      *string  `json:"aiApiKey"`
	BrandTarget   *string  `json:"brandTarget"` // decimal string
	ProfilePhoto  *string  `json:"profilePhoto"`
	StoreLat      *float64 `json:"storeLat"`
	StoreLng      *float64 `json:"storeLng"`
}

// LoginRequest is the local profile gate: no password, just the profile
// fields the original entry screen requires.
type LoginRequest struct {
	UserName      string `json:"userName" binding:"required"`
	EmpID         string `json:"empId" binding:"required"`
	StoreLocation string `json:"storeLocation" binding:"required"`
}

type LoginResponse struct {
	Token    string         `json:"token"`
	Settings model.Settings `json:"settings"`
}

// --- Interface ---

type SettingsService interface {
	Load(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, patch SettingsPatch) (model.Settings, error)
	Login(ctx context.Context, req LoginRequest, issueToken func(empID, userName string) (string, error)) (LoginResponse, error)
	Logout(ctx context.Context) error
}

type settingsService struct {
	repo     repository.SettingsRepository
	cache    *state.Cache
	notifier Notifier
}

func NewSettingsService(repo repository.SettingsRepository, cache *state.Cache, notifier Notifier) SettingsService {
	return &settingsService{repo: repo, cache: cache, notifier: notifier}
}

// --- Implementation ---

func (s *settingsService) Load(ctx context.Context) (model.Settings, error) {
	if err := s.cache.ReloadSettings(ctx); err != nil {
		return model.Settings{}, err
	}
	return s.cache.Settings(), nil
}

func (s *settingsService) Update(ctx context.Context, patch SettingsPatch) (model.Settings, error) {
	current, err := s.repo.Load(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	updated := *current
	applyString := func(dest *string, src *string) {
		if src != nil {
			*dest = *src
		}
	}
	applyString(&updated.UserName, patch.UserName)
	applyString(&updated.EmpID, patch.EmpID)
	applyString(&updated.StoreName, patch.StoreName)
	applyString(&updated.StoreLocation, patch.StoreLocation)
	applyString(&updated.BrandWebsite, patch.BrandWebsite)
	applyString(&updated.DemoLink, patch.DemoLink)
	applyString(&updated.TollFree, patch.TollFree)
	applyString(&updated.AIAPIKey, patch.AIAPIKey)
	applyString(&updated.ProfilePhoto, patch.ProfilePhoto)

	if patch.Theme != nil {
		if *patch.Theme != model.ThemeDark && *patch.Theme != model.ThemeLight {
			return model.Settings{}, apperr.Validation("theme must be dark or light")
		}
		updated.Theme = *patch.Theme
	}
	if patch.BrandTarget != nil {
		target, err := decimal.NewFromString(*patch.BrandTarget)
		if err != nil || target.IsNegative() {
			return model.Settings{}, apperr.Validation("brandTarget must be a non-negative decimal")
		}
		updated.BrandTarget = target
	}
	if patch.StoreLat != nil {
		updated.StoreLat = patch.StoreLat
	}
	if patch.StoreLng != nil {
		updated.StoreLng = patch.StoreLng
	}

	return s.save(ctx, updated)
}

func (s *settingsService) Login(ctx context.Context, req LoginRequest, issueToken func(empID, userName string) (string, error)) (LoginResponse, error) {
	current, err := s.repo.Load(ctx)
	if err != nil {
		return LoginResponse{}, err
	}

	updated := *current
	updated.UserName = req.UserName
	updated.EmpID = req.EmpID
	updated.StoreLocation = req.StoreLocation
	updated.IsLoggedIn = true

	saved, err := s.save(ctx, updated)
	if err != nil {
		return LoginResponse{}, err
	}

	token, err := issueToken(req.EmpID, req.UserName)
	if err != nil {
		return LoginResponse{}, apperr.Wrap(apperr.CodeInternal, "issue session token", err)
	}
	return LoginResponse{Token: token, Settings: saved}, nil
}

func (s *settingsService) Logout(ctx context.Context) error {
	current, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	updated := *current
	updated.IsLoggedIn = false
	_, err = s.save(ctx, updated)
	return err
}

func (s *settingsService) save(ctx context.Context, settings model.Settings) (model.Settings, error) {
	if err := s.repo.Save(ctx, &settings); err != nil {
		return model.Settings{}, err
	}
	if err := s.cache.ReloadSettings(ctx); err != nil {
		return model.Settings{}, err
	}
	if s.notifier != nil {
		s.notifier.NotifyChange(CollectionSettings, "updated")
	}
	return s.cache.Settings(), nil
}
