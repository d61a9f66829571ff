package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"fieldmate/internal/analytics"
	"fieldmate/internal/apperr"
	"fieldmate/internal/model"
	"fieldmate/internal/repository"
	"fieldmate/internal/state"
)

// Geolocation failure reasons as reported by the device provider. Each maps
// to its own error code so the UI can show an actionable message.
const (
	LocationFailureDenied      = "denied"
	LocationFailureUnavailable = "unavailable"
	LocationFailureTimeout     = "timeout"
)

// --- DTOs ---

// MarkPresentRequest carries the device geolocation outcome: either a
// coordinate fix or the failure reason.
type MarkPresentRequest struct {
	Date          string   `json:"date" binding:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	LocationError string   `json:"locationError"` // denied | unavailable | timeout
}

type MarkStatusRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required,oneof='Week Off' Leave"`
}

// --- Interface ---

type AttendanceService interface {
	// MarkPresent admits the mark only inside the store geofence. The first
	// Present of a date sets time-in; a later Present sets time-out on the
	// same record.
	MarkPresent(ctx context.Context, req MarkPresentRequest) (*model.Attendance, error)
	MarkStatus(ctx context.Context, req MarkStatusRequest) (*model.Attendance, error)
	List(ctx context.Context) []model.Attendance
}

type attendanceService struct {
	repo     repository.AttendanceRepository
	cache    *state.Cache
	notifier Notifier
	now      func() time.Time
}

func NewAttendanceService(repo repository.AttendanceRepository, cache *state.Cache, notifier Notifier) AttendanceService {
	return &attendanceService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
	}
}

// --- Implementation ---

func (s *attendanceService) MarkPresent(ctx context.Context, req MarkPresentRequest) (*model.Attendance, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	settings := s.cache.Settings()
	if settings.StoreLat == nil || settings.StoreLng == nil {
		return nil, apperr.Validation("store location not mapped; set it in settings first")
	}

	lat, lng, err := resolveFix(req)
	if err != nil {
		return nil, err
	}

	distance := analytics.Haversine(lat, lng, *settings.StoreLat, *settings.StoreLng)
	if !analytics.WithinGeofence(distance) {
		return nil, apperr.Geofence(distance, analytics.GeofenceRadiusMeters)
	}

	location := fmt.Sprintf("%.4f, %.4f (At Store, %.0fm)", lat, lng, math.Round(distance))
	now := s.now().Format("15:04")

	record := model.Attendance{
		Date:     req.Date,
		Status:   model.AttendancePresent,
		Location: location,
	}
	existing, err := s.repo.FindByDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.TimeIn != "" {
		record.TimeOut = now
	} else {
		record.TimeIn = now
	}

	return s.mark(ctx, record)
}

func (s *attendanceService) MarkStatus(ctx context.Context, req MarkStatusRequest) (*model.Attendance, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	return s.mark(ctx, model.Attendance{Date: req.Date, Status: req.Status})
}

func (s *attendanceService) mark(ctx context.Context, record model.Attendance) (*model.Attendance, error) {
	stored, err := s.repo.MarkForDate(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := s.cache.ReloadAttendance(ctx); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.NotifyChange(CollectionAttendance, "marked")
	}
	return stored, nil
}

func (s *attendanceService) List(ctx context.Context) []model.Attendance {
	return s.cache.Attendance()
}

// resolveFix turns the reported geolocation outcome into a coordinate or one
// of the three distinct failures. No record is written on failure.
func resolveFix(req MarkPresentRequest) (lat, lng float64, err error) {
	switch req.LocationError {
	case "":
	case LocationFailureDenied:
		return 0, 0, apperr.New(apperr.CodeLocationDenied, "location permission denied; enable GPS access to mark attendance")
	case LocationFailureTimeout:
		return 0, 0, apperr.New(apperr.CodeLocationTimeout, "timed out waiting for a location fix")
	default:
		return 0, 0, apperr.New(apperr.CodeLocationUnavailable, "location is unavailable on this device")
	}

	if req.Latitude == nil || req.Longitude == nil {
		return 0, 0, apperr.New(apperr.CodeLocationUnavailable, "no location fix supplied")
	}
	return *req.Latitude, *req.Longitude, nil
}
