package employee

import (
	"context"

	"go-attendance/internal/shared/store"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, store.Wrap(store.CollectionEmployees, "find_all", err)
	}
	return rows, nil
}

// CountByDepartment matches the stored department name exactly,
// case-sensitively.
func (r *repository) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("department = ?", department).
		Count(&count).Error
	if err != nil {
		return 0, store.Wrap(store.CollectionEmployees, "count_by_department", err)
	}
	return count, nil
}
