package model

// Attendance status constants
const (
	AttendancePresent = "Present"
	AttendanceWeekOff = "Week Off"
	AttendanceLeave   = "Leave"
)

// Attendance is the single record for one calendar date. The one-per-date
// invariant is enforced by the repository's lookup-then-upsert, not by a
// storage-level unique key.
type Attendance struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date     string `gorm:"type:varchar(10);not null;index:idx_attendance_date" json:"date"` // YYYY-MM-DD
	Status   string `gorm:"type:varchar(10);not null" json:"status"`
	TimeIn   string `gorm:"type:varchar(5)" json:"timeIn,omitempty"`  // HH:MM, only when Present
	TimeOut  string `gorm:"type:varchar(5)" json:"timeOut,omitempty"` // HH:MM, only when Present
	Location string `gorm:"type:varchar(80)" json:"location,omitempty"`
}
