package service

import (
	"regexp"
	"time"

	"fieldmate/internal/apperr"
)

// Collection names used in change notifications; they match the durable
// storage layout.
const (
	CollectionSales      = "sales"
	CollectionAttendance = "attendance"
	CollectionTargets    = "targets"
	CollectionCRM        = "crm"
	CollectionSettings   = "settings"
)

// Notifier receives a change event after a mutation has been committed and
// the cache reloaded. The websocket hub implements it.
type Notifier interface {
	NotifyChange(collection, action string)
}

const dateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperr.Validation("date must be YYYY-MM-DD")
	}
	return nil
}

func validatePhone(number, field string) error {
	if !phonePattern.MatchString(number) {
		return apperr.Validation(field + " must be a 10-digit number")
	}
	return nil
}
