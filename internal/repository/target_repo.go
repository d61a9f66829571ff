package repository

import (
	"context"
	"sync"

	"fieldmate/internal/database"
	"fieldmate/internal/model"

	"gorm.io/gorm"
)

type TargetRepository interface {
	// SaveForDate keeps at most one record per date. Unlike attendance,
	// the write always carries all six figures, so an existing record is
	// replaced whole (identifier preserved) rather than merged.
	SaveForDate(ctx context.Context, record model.Target) (*model.Target, error)
	FindByDate(ctx context.Context, date string) (*model.Target, error)
	List(ctx context.Context) ([]model.Target, error)
	Put(ctx context.Context, record *model.Target) error
	Clear(ctx context.Context) error
}

type targetRepository struct {
	col *database.Collection[model.Target]
	mu  sync.Mutex
}

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{col: database.NewCollection[model.Target](db)}
}

func (r *targetRepository) SaveForDate(ctx context.Context, record model.Target) (*model.Target, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.findByDate(ctx, record.Date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := r.col.Create(ctx, &record); err != nil {
			return nil, err
		}
		return &record, nil
	}

	record.ID = existing.ID
	if err := r.col.Put(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *targetRepository) FindByDate(ctx context.Context, date string) (*model.Target, error) {
	return r.findByDate(ctx, date)
}

func (r *targetRepository) findByDate(ctx context.Context, date string) (*model.Target, error) {
	records, err := r.col.FindBy(ctx, "date", date)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *targetRepository) List(ctx context.Context) ([]model.Target, error) {
	return r.col.All(ctx)
}

func (r *targetRepository) Put(ctx context.Context, record *model.Target) error {
	return r.col.Put(ctx, record)
}

func (r *targetRepository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
