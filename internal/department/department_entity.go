package department

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:255;not null"`
	// NameKey is the lowercased trimmed name. Its unique index is the
	// actual duplicate-name guarantee; the in-memory and re-query checks
	// in the service are only fast paths.
	NameKey   string         `gorm:"size:255;not null;uniqueIndex:uq_departments_name_key"`
	Positions []Position     `gorm:"foreignKey:DepartmentID;references:ID"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Department) TableName() string {
	return "departments"
}

// PositionTitles returns the position titles in stored order.
func (d Department) PositionTitles() []string {
	titles := make([]string, len(d.Positions))
	for i, p := range d.Positions {
		titles[i] = p.Title
	}
	return titles
}

// NameKey normalizes a department name for case-insensitive uniqueness.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type Position struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"size:255;not null"`
	SortOrder    int       `gorm:"not null;default:0"`
}

func (Position) TableName() string {
	return "positions"
}
