package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance statuses as stored. Anything outside Present/Late counts
// as a miss when computing the attendance rate.
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusAbsent  = "Absent"
	StatusOnLeave = "On Leave"
)

type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     *uuid.UUID `gorm:"column:employee_id;type:uuid;index"`
	Department     string     `gorm:"column:department;size:255;not null;index"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:Present"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Attended reports whether a status counts toward the attendance rate.
func Attended(status string) bool {
	switch status {
	case StatusPresent, StatusLate:
		return true
	default:
		return false
	}
}
