package repository

import (
	"context"
	"sync"

	"fieldmate/internal/database"
	"fieldmate/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	// MarkForDate enforces the one-record-per-date invariant: if a record
	// exists for record.Date, incoming non-empty fields merge into it and it
	// is written back under the same identifier; otherwise a new record is
	// created. Returns the stored record.
	MarkForDate(ctx context.Context, record model.Attendance) (*model.Attendance, error)
	FindByDate(ctx context.Context, date string) (*model.Attendance, error)
	List(ctx context.Context) ([]model.Attendance, error)
	Put(ctx context.Context, record *model.Attendance) error
	Clear(ctx context.Context) error
}

type attendanceRepository struct {
	col *database.Collection[model.Attendance]
	mu  sync.Mutex // serializes the lookup-then-write window
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{col: database.NewCollection[model.Attendance](db)}
}

func (r *attendanceRepository) MarkForDate(ctx context.Context, record model.Attendance) (*model.Attendance, error) {
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

	merged := mergeAttendance(*existing, record)
	if err := r.col.Put(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// mergeAttendance overlays incoming non-empty fields onto the existing
// record, so setting a time-out never loses the morning's time-in.
func mergeAttendance(existing, incoming model.Attendance) model.Attendance {
	merged := existing
	merged.Status = incoming.Status
	if incoming.TimeIn != "" {
		merged.TimeIn = incoming.TimeIn
	}
	if incoming.TimeOut != "" {
		merged.TimeOut = incoming.TimeOut
	}
	if incoming.Location != "" {
		merged.Location = incoming.Location
	}
	return merged
}

func (r *attendanceRepository) FindByDate(ctx context.Context, date string) (*model.Attendance, error) {
	return r.findByDate(ctx, date)
}

func (r *attendanceRepository) findByDate(ctx context.Context, date string) (*model.Attendance, error) {
	records, err := r.col.FindBy(ctx, "date", date)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]model.Attendance, error) {
	return r.col.All(ctx)
}

func (r *attendanceRepository) Put(ctx context.Context, record *model.Attendance) error {
	return r.col.Put(ctx, record)
}

func (r *attendanceRepository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
