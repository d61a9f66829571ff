package repository

import (
	"context"
	"sort"

	"fieldmate/internal/database"
	"fieldmate/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Add(ctx context.Context, sale *model.Sale) error
	Update(ctx context.Context, sale *model.Sale) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Sale, error)
	// List returns every sale, most recent first (timestamp desc, id desc
	// as the deterministic tiebreak).
	List(ctx context.Context) ([]model.Sale, error)
	// Put writes a record keeping its identifier; restore path only.
	Put(ctx context.Context, sale *model.Sale) error
	Clear(ctx context.Context) error
}

type saleRepository struct {
	col *database.Collection[model.Sale]
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{col: database.NewCollection[model.Sale](db)}
}

func (r *saleRepository) Add(ctx context.Context, sale *model.Sale) error {
	return r.col.Create(ctx, sale)
}

func (r *saleRepository) Update(ctx context.Context, sale *model.Sale) error {
	if _, err := r.col.Get(ctx, sale.ID); err != nil {
		return err
	}
	return r.col.Put(ctx, sale)
}

func (r *saleRepository) Delete(ctx context.Context, id uint) error {
	return r.col.Delete(ctx, id)
}

func (r *saleRepository) Get(ctx context.Context, id uint) (*model.Sale, error) {
	return r.col.Get(ctx, id)
}

func (r *saleRepository) List(ctx context.Context) ([]model.Sale, error) {
	sales, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Timestamp != sales[j].Timestamp {
			return sales[i].Timestamp > sales[j].Timestamp
		}
		return sales[i].ID > sales[j].ID
	})
	return sales, nil
}

func (r *saleRepository) Put(ctx context.Context, sale *model.Sale) error {
	return r.col.Put(ctx, sale)
}

func (r *saleRepository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
