package summary_test

import (
	"context"
	"errors"
	"testing"

	"go-attendance/internal/attendance"
	"go-attendance/internal/summary"

	attendanceMock "go-attendance/internal/attendance/mock"
	employeeMock "go-attendance/internal/employee/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type calculatorDeps struct {
	employees  *employeeMock.MockRepository
	attendance *attendanceMock.MockRepository
	calculator *summary.Calculator
}

func setupCalculatorTest(t *testing.T) *calculatorDeps {
	ctrl := gomock.NewController(t)

	employees := employeeMock.NewMockRepository(ctrl)
	att := attendanceMock.NewMockRepository(ctrl)

	return &calculatorDeps{
		employees:  employees,
		attendance: att,
		calculator: summary.NewCalculator(employees, att),
	}
}

func attendanceRows(statuses ...string) []attendance.Attendance {
	rows := make([]attendance.Attendance, len(statuses))
	for i, s := range statuses {
		rows[i] = attendance.Attendance{Department: "Sales", Status: s}
	}
	return rows
}

func TestCalculator_AttendanceRate(t *testing.T) {
	ctx := context.Background()

	t.Run("no attendance history is zero, not an error", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		deps.attendance.EXPECT().
			FindByDepartment(ctx, "Sales").
			Return(nil, nil)

		assert.Equal(t, 0, deps.calculator.AttendanceRate(ctx, "Sales"))
	})

	t.Run("present and late count as attended", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		// 4 of 5 attended -> 80
		deps.attendance.EXPECT().
			FindByDepartment(ctx, "Sales").
			Return(attendanceRows(
				attendance.StatusPresent,
				attendance.StatusPresent,
				attendance.StatusPresent,
				attendance.StatusLate,
				attendance.StatusAbsent,
			), nil)

		assert.Equal(t, 80, deps.calculator.AttendanceRate(ctx, "Sales"))
	})

	t.Run("rounds half up", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		// 1 of 8 attended -> 12.5 -> 13
		deps.attendance.EXPECT().
			FindByDepartment(ctx, "Sales").
			Return(attendanceRows(
				attendance.StatusPresent,
				attendance.StatusAbsent,
				attendance.StatusAbsent,
				attendance.StatusAbsent,
				attendance.StatusAbsent,
				attendance.StatusAbsent,
				attendance.StatusAbsent,
				attendance.StatusOnLeave,
			), nil)

		assert.Equal(t, 13, deps.calculator.AttendanceRate(ctx, "Sales"))
	})

	t.Run("stays within 0..100", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		deps.attendance.EXPECT().
			FindByDepartment(ctx, "Sales").
			Return(attendanceRows(
				attendance.StatusLate,
				attendance.StatusLate,
			), nil)

		rate := deps.calculator.AttendanceRate(ctx, "Sales")
		assert.Equal(t, 100, rate)
	})

	t.Run("store failure degrades to zero", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		deps.attendance.EXPECT().
			FindByDepartment(ctx, "Sales").
			Return(nil, errors.New("connection reset"))

		assert.Equal(t, 0, deps.calculator.AttendanceRate(ctx, "Sales"))
	})
}

func TestCalculator_EmployeeCount(t *testing.T) {
	ctx := context.Background()

	t.Run("exact count", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		deps.employees.EXPECT().
			CountByDepartment(ctx, "Engineering").
			Return(int64(7), nil)

		assert.Equal(t, 7, deps.calculator.EmployeeCount(ctx, "Engineering"))
	})

	t.Run("no matches is zero", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		deps.employees.EXPECT().
			CountByDepartment(ctx, "Engineering").
			Return(int64(0), nil)

		assert.Equal(t, 0, deps.calculator.EmployeeCount(ctx, "Engineering"))
	})

	t.Run("store failure degrades to zero", func(t *testing.T) {
		deps := setupCalculatorTest(t)

		deps.employees.EXPECT().
			CountByDepartment(ctx, "Engineering").
			Return(int64(0), errors.New("db connection error"))

		assert.Equal(t, 0, deps.calculator.EmployeeCount(ctx, "Engineering"))
	})
}
