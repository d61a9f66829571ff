package repository

import (
	"context"
	"sort"

	"fieldmate/internal/database"
	"fieldmate/internal/model"

	"gorm.io/gorm"
)

type CRMRepository interface {
	Add(ctx context.Context, issue *model.CRMIssue) error
	Update(ctx context.Context, issue *model.CRMIssue) error
	Get(ctx context.Context, id uint) (*model.CRMIssue, error)
	// List returns every issue, most recent first.
	List(ctx context.Context) ([]model.CRMIssue, error)
	// ListByStatus uses the status index.
	ListByStatus(ctx context.Context, status string) ([]model.CRMIssue, error)
	Put(ctx context.Context, issue *model.CRMIssue) error
	Clear(ctx context.Context) error
}

type crmRepository struct {
	col *database.Collection[model.CRMIssue]
}

func NewCRMRepository(db *gorm.DB) CRMRepository {
	return &crmRepository{col: database.NewCollection[model.CRMIssue](db)}
}

func (r *crmRepository) Add(ctx context.Context, issue *model.CRMIssue) error {
	return r.col.Create(ctx, issue)
}

func (r *crmRepository) Update(ctx context.Context, issue *model.CRMIssue) error {
	if _, err := r.col.Get(ctx, issue.ID); err != nil {
		return err
	}
	return r.col.Put(ctx, issue)
}

func (r *crmRepository) Get(ctx context.Context, id uint) (*model.CRMIssue, error) {
	return r.col.Get(ctx, id)
}

func (r *crmRepository) List(ctx context.Context) ([]model.CRMIssue, error) {
	issues, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	sortIssues(issues)
	return issues, nil
}

func (r *crmRepository) ListByStatus(ctx context.Context, status string) ([]model.CRMIssue, error) {
	issues, err := r.col.FindBy(ctx, "status", status)
	if err != nil {
		return nil, err
	}
	sortIssues(issues)
	return issues, nil
}

func sortIssues(issues []model.CRMIssue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Timestamp != issues[j].Timestamp {
			return issues[i].Timestamp > issues[j].Timestamp
		}
		return issues[i].ID > issues[j].ID
	})
}

func (r *crmRepository) Put(ctx context.Context, issue *model.CRMIssue) error {
	return r.col.Put(ctx, issue)
}

func (r *crmRepository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
