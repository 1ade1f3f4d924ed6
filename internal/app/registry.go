package app

import (
	"context"

	"go-attendance/internal/attendance"
	"go-attendance/internal/department"
	"go-attendance/internal/employee"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB, outboxRepo)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)

	// --- Aggregation engine ---
	resolver := summary.NewResolver(departmentRepo, employeeRepo)
	calculator := summary.NewCalculator(employeeRepo, attendanceRepo)
	summaryService := summary.NewService(resolver, calculator, rdb)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, summaryService)

	// --- Handlers ---
	summaryHandler := summary.NewHandler(summaryService)
	departmentHandler := department.NewHandler(departmentService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		summary.RegisterRoutes(api, summaryHandler)
		department.RegisterRoutes(api, departmentHandler)
	}

	// Warm the summary view so the first GET does not see an empty list.
	summaryService.TriggerRefresh(context.Background())

	return nil
}
