package repository

import (
	"context"
	"errors"
	"sync"

	"fieldmate/internal/apperr"
	"fieldmate/internal/database"
	"fieldmate/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Load returns the singleton, bootstrapping the documented defaults on
	// first run. Calling it twice without writes yields the same record.
	Load(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
	Put(ctx context.Context, settings *model.Settings) error
	Clear(ctx context.Context) error
}

type settingsRepository struct {
	col *database.Collection[model.Settings]
	mu  sync.Mutex
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{col: database.NewCollection[model.Settings](db)}
}

func (r *settingsRepository) Load(ctx context.Context) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, err := r.col.Get(ctx, model.SettingsKey)
	if err == nil {
		return settings, nil
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Code != apperr.CodeNotFound {
		return nil, err
	}

	defaults := model.DefaultSettings()
	if err := r.col.Put(ctx, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *model.Settings) error {
	settings.ID = model.SettingsKey
	return r.col.Put(ctx, settings)
}

func (r *settingsRepository) Put(ctx context.Context, settings *model.Settings) error {
	return r.col.Put(ctx, settings)
}

func (r *settingsRepository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
