// Package state holds the in-memory mirror of the durable collections.
// Every UI-facing read goes through this cache; every mutation reloads the
// affected collection from storage before returning, so a read that follows
// a completed write always observes it. On a failed reload the cache keeps
// its last-known-good contents.
package state

import (
	"context"
	"sync"

	"fieldmate/internal/model"
	"fieldmate/internal/repository"
)

type Cache struct {
	mu         sync.RWMutex
	settings   *model.Settings
	sales      []model.Sale
	attendance []model.Attendance
	targets    []model.Target
	crmIssues  []model.CRMIssue

	saleRepo       repository.SaleRepository
	attendanceRepo repository.AttendanceRepository
	targetRepo     repository.TargetRepository
	crmRepo        repository.CRMRepository
	settingsRepo   repository.SettingsRepository
}

func NewCache(
	saleRepo repository.SaleRepository,
	attendanceRepo repository.AttendanceRepository,
	targetRepo repository.TargetRepository,
	crmRepo repository.CRMRepository,
	settingsRepo repository.SettingsRepository,
) *Cache {
	return &Cache{
		saleRepo:       saleRepo,
		attendanceRepo: attendanceRepo,
		targetRepo:     targetRepo,
		crmRepo:        crmRepo,
		settingsRepo:   settingsRepo,
	}
}

// LoadAll populates every collection; called on startup and after import.
func (c *Cache) LoadAll(ctx context.Context) error {
	if err := c.ReloadSettings(ctx); err != nil {
		return err
	}
	if err := c.ReloadSales(ctx); err != nil {
		return err
	}
	if err := c.ReloadAttendance(ctx); err != nil {
		return err
	}
	if err := c.ReloadTargets(ctx); err != nil {
		return err
	}
	return c.ReloadCRMIssues(ctx)
}

func (c *Cache) ReloadSales(ctx context.Context) error {
	sales, err := c.saleRepo.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.sales = sales
	c.mu.Unlock()
	return nil
}

func (c *Cache) ReloadAttendance(ctx context.Context) error {
	records, err := c.attendanceRepo.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.attendance = records
	c.mu.Unlock()
	return nil
}

func (c *Cache) ReloadTargets(ctx context.Context) error {
	records, err := c.targetRepo.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.targets = records
	c.mu.Unlock()
	return nil
}

func (c *Cache) ReloadCRMIssues(ctx context.Context) error {
	issues, err := c.crmRepo.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.crmIssues = issues
	c.mu.Unlock()
	return nil
}

func (c *Cache) ReloadSettings(ctx context.Context) error {
	settings, err := c.settingsRepo.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.settings = settings
	c.mu.Unlock()
	return nil
}

// Sales returns a snapshot copy; callers may not mutate shared state.
func (c *Cache) Sales() []model.Sale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Sale(nil), c.sales...)
}

func (c *Cache) Attendance() []model.Attendance {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Attendance(nil), c.attendance...)
}

func (c *Cache) Targets() []model.Target {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Target(nil), c.targets...)
}

func (c *Cache) CRMIssues() []model.CRMIssue {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.CRMIssue(nil), c.crmIssues...)
}

// Settings returns a copy of the singleton, or the defaults if the cache has
// not been loaded yet.
func (c *Cache) Settings() model.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.settings == nil {
		return model.DefaultSettings()
	}
	return *c.settings
}
