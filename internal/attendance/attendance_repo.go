package attendance

import (
	"context"

	"go-attendance/internal/shared/store"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	FindByDepartment(ctx context.Context, department string) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("attendance_date DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, store.Wrap(store.CollectionAttendance, "find_by_department", err)
	}
	return rows, nil
}
