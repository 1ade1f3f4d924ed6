package summary

import (
	"context"
	"math"

	"go-attendance/internal/attendance"
	"go-attendance/internal/employee"

	"go.uber.org/zap"
)

// Calculator computes the per-department metrics. A store failure is
// logged and the metric degrades to 0 so one department can never abort
// the whole aggregation.
type Calculator struct {
	employees  employee.Repository
	attendance attendance.Repository
	logger     *zap.Logger
}

func NewCalculator(employees employee.Repository, att attendance.Repository, logger ...*zap.Logger) *Calculator {
	l := zap.L().Named("summary.metrics")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.metrics")
	}
	return &Calculator{employees: employees, attendance: att, logger: l}
}

// AttendanceRate returns the integer percentage of records whose status
// counts as attended, rounded half up. No attendance history is 0, not
// an error.
func (c *Calculator) AttendanceRate(ctx context.Context, departmentName string) int {
	rows, err := c.attendance.FindByDepartment(ctx, departmentName)
	if err != nil {
		c.logger.Error("attendance fetch failed, rate degraded to 0",
			zap.String("department", departmentName),
			zap.Error(err),
		)
		return 0
	}
	if len(rows) == 0 {
		return 0
	}

	attended := 0
	for _, row := range rows {
		if attendance.Attended(row.Status) {
			attended++
		}
	}
	return int(math.Round(float64(attended) / float64(len(rows)) * 100))
}

// EmployeeCount matches the stored department name exactly.
func (c *Calculator) EmployeeCount(ctx context.Context, departmentName string) int {
	count, err := c.employees.CountByDepartment(ctx, departmentName)
	if err != nil {
		c.logger.Error("employee count failed, degraded to 0",
			zap.String("department", departmentName),
			zap.Error(err),
		)
		return 0
	}
	return int(count)
}
