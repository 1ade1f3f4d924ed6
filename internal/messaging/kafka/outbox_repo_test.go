package kafka_test

import (
	"context"
	"testing"

	"go-attendance/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:      "evt-1",
		Topic:   "hr.department.lifecycle.v1",
		Payload: []byte(`{"event_type":"department.created"}`),
		Status:  kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))
	})

	t.Run("missing id", func(t *testing.T) {
		evt := validEvent()
		evt.ID = ""
		assert.EqualError(t, kafka.ValidateOutboxEvent(evt), "outbox id is required")
	})

	t.Run("missing topic", func(t *testing.T) {
		evt := validEvent()
		evt.Topic = ""
		assert.EqualError(t, kafka.ValidateOutboxEvent(evt), "outbox topic is required")
	})

	t.Run("empty payload", func(t *testing.T) {
		evt := validEvent()
		evt.Payload = nil
		assert.EqualError(t, kafka.ValidateOutboxEvent(evt), "outbox payload is required")
	})

	t.Run("unknown status", func(t *testing.T) {
		evt := validEvent()
		evt.Status = "queued"
		assert.EqualError(t, kafka.ValidateOutboxEvent(evt), "invalid outbox status: queued")
	})
}

func setupOutboxTest(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return kafka.NewOutboxRepository(gdb), mock
}

func TestOutboxRepository_ListPending(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	rows := sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count"}).
		AddRow("evt-1", "department", "dept-1", "department.created", "hr.department.lifecycle.v1", []byte(`{}`), "pending", 0).
		AddRow("evt-2", "department", "dept-2", "department.created", "hr.department.lifecycle.v1", []byte(`{}`), "failed", 2)

	mock.ExpectQuery(`FROM outbox_events`).WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec(`UPDATE outbox_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec(`UPDATE outbox_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "evt-1", "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
