package department

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	departmenterrors "go-attendance/internal/department/errors"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SummaryBoard is the slice of the aggregation engine the mutator needs:
// the current department names for the duplicate fast path, optimistic
// append after a commit, and a re-aggregation trigger.
type SummaryBoard interface {
	Names() []string
	AppendProvisional(id, name string, positions []string)
	TriggerRefresh(ctx context.Context)
}

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
}

type service struct {
	repo   Repository
	board  SummaryBoard
	logger *zap.Logger
}

func NewService(repo Repository, board SummaryBoard, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, board: board, logger: l}
}

// Create validates and persists a new department. Validation and both
// duplicate checks run before any write; the unique index on name_key is
// the final arbiter for the remaining check-then-insert window.
func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return DepartmentResponse{}, departmenterrors.ErrNameRequired
	}

	positions := make([]string, len(req.Positions))
	for i, p := range req.Positions {
		title := strings.TrimSpace(p)
		if title == "" {
			return DepartmentResponse{}, departmenterrors.ErrPositionRequired
		}
		positions[i] = title
	}

	// Fast path: the in-memory summary list may be stale relative to
	// concurrent writers, but it catches most duplicates without I/O.
	for _, existing := range s.board.Names() {
		if strings.EqualFold(existing, name) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentExists
		}
	}

	// Authoritative re-query immediately before insert.
	if _, err := s.repo.FindByNameFold(ctx, name); err == nil {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("duplicate check query failed",
			zap.String("request_id", rid),
			zap.String("name", name),
			zap.Error(err),
		)
		return DepartmentResponse{}, departmenterrors.ErrCreateFailed
	}

	dept := &Department{
		ID:      uuid.New(),
		Name:    name,
		NameKey: NameKey(name),
	}
	for i, title := range positions {
		dept.Positions = append(dept.Positions, Position{
			ID:           uuid.New(),
			DepartmentID: dept.ID,
			Title:        title,
			SortOrder:    i,
		})
	}

	payload, err := json.Marshal(events.DepartmentCreatedEvent{
		EventType:    events.EventTypeDepartmentCreated,
		DepartmentID: dept.ID.String(),
		Name:         dept.Name,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("encode department_created event failed", zap.Error(err))
		return DepartmentResponse{}, departmenterrors.ErrCreateFailed
	}

	evt := &kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     rid,
		AggregateType: "department",
		AggregateID:   dept.ID.String(),
		EventType:     events.EventTypeDepartmentCreated,
		Topic:         events.DepartmentCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}

	if err := s.repo.Create(ctx, dept, evt); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, departmenterrors.ErrDepartmentExists) {
			return DepartmentResponse{}, mapped
		}
		s.logger.Error("create department persist failed",
			zap.String("request_id", rid),
			zap.String("name", name),
			zap.Error(err),
		)
		return DepartmentResponse{}, departmenterrors.ErrCreateFailed
	}

	s.logger.Info("department created",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
		zap.String("name", dept.Name),
	)

	// Show the new department immediately with zeroed metrics, then let
	// a full refresh reconcile with authoritative state.
	s.board.AppendProvisional(dept.ID.String(), dept.Name, positions)
	s.board.TriggerRefresh(ctx)

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(depts), nil
}

func mapToResponse(dept Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:        dept.ID.String(),
		Name:      dept.Name,
		Positions: dept.PositionTitles(),
	}
	if !dept.CreatedAt.IsZero() {
		resp.CreatedAt = dept.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
