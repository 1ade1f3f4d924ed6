package events

import "time"

const (
	DepartmentCreatedTopic     = "hr.department.lifecycle.v1"
	EventTypeDepartmentCreated = "department.created"
)

type DepartmentCreatedEvent struct {
	EventType    string    `json:"event_type"`
	DepartmentID string    `json:"department_id"`
	Name         string    `json:"name"`
	OccurredAt   time.Time `json:"occurred_at"`
}
