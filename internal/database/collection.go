package database

import (
	"context"
	"errors"

	"fieldmate/internal/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection is the generic persistence primitive: a keyed record set with
// auto-assigned identifiers, one secondary index, and atomic per-call
// put/get/delete/clear. Identifiers are strictly increasing and never reused
// after deletion (SQLite AUTOINCREMENT on the integer primary key).
type Collection[T any] struct {
	db *gorm.DB
}

func NewCollection[T any](db *gorm.DB) *Collection[T] {
	return &Collection[T]{db: db}
}

// Create inserts the record and assigns the next identifier into its
// primary-key field.
func (c *Collection[T]) Create(ctx context.Context, record *T) error {
	if err := c.conn(ctx).Create(record).Error; err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// Put upserts by primary key, keeping an explicit key exactly as given.
// The import path relies on this to restore original identifiers.
func (c *Collection[T]) Put(ctx context.Context, record *T) error {
	err := c.conn(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// Get fetches one record by primary key.
func (c *Collection[T]) Get(ctx context.Context, id any) (*T, error) {
	var record T
	err := c.conn(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("record not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &record, nil
}

// All returns every record in the collection, storage order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	var records []T
	if err := c.conn(ctx).Find(&records).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return records, nil
}

// FindBy is the secondary-index lookup: all records whose indexed column
// equals value, without a full scan.
func (c *Collection[T]) FindBy(ctx context.Context, column string, value any) ([]T, error) {
	var records []T
	if err := c.conn(ctx).Where(column+" = ?", value).Find(&records).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return records, nil
}

// Delete removes one record by primary key. Deleting an absent record is a
// no-op.
func (c *Collection[T]) Delete(ctx context.Context, id any) error {
	var record T
	if err := c.conn(ctx).Delete(&record, "id = ?", id).Error; err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// Clear removes every record. The identifier sequence is not reset.
func (c *Collection[T]) Clear(ctx context.Context) error {
	var record T
	err := c.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&record).Error
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (c *Collection[T]) conn(ctx context.Context) *gorm.DB {
	return fromContext(ctx, c.db)
}
