package department

import (
	"context"

	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/store"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Department, error)
	FindByNameFold(ctx context.Context, name string) (*Department, error)
	// Create persists the department, its positions and the lifecycle
	// event in one transaction.
	Create(ctx context.Context, dept *Department, evt *kafka.OutboxEvent) error
}

type repository struct {
	db     *gorm.DB
	outbox kafka.OutboxRepository
}

func NewRepository(db *gorm.DB, outbox kafka.OutboxRepository) Repository {
	return &repository{db: db, outbox: outbox}
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Preload("Positions", func(db *gorm.DB) *gorm.DB {
			return db.Order("positions.sort_order ASC")
		}).
		Order("created_at ASC").
		Find(&depts).Error
	if err != nil {
		return nil, store.Wrap(store.CollectionDepartments, "find_all", err)
	}
	return depts, nil
}

// FindByNameFold matches case-insensitively via the name_key column.
func (r *repository) FindByNameFold(ctx context.Context, name string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Where("name_key = ?", NameKey(name)).
		First(&dept).Error
	if err != nil {
		return nil, store.Wrap(store.CollectionDepartments, "find_by_name", err)
	}
	return &dept, nil
}

func (r *repository) Create(ctx context.Context, dept *Department, evt *kafka.OutboxEvent) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dept).Error; err != nil {
			return err
		}
		if evt != nil {
			return r.outbox.Create(ctx, tx, *evt)
		}
		return nil
	})
	return store.Wrap(store.CollectionDepartments, "insert", err)
}
