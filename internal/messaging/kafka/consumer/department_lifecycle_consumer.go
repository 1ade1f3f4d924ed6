package consumer

import (
	"context"
	"encoding/json"

	"go-attendance/internal/events"
	"go-attendance/internal/summary"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeDepartmentLifecycle re-aggregates the summary view whenever a
// department lifecycle event arrives, so replicas that did not serve the
// originating write converge on the same state. Refresh is idempotent,
// which makes redelivery harmless.
func ConsumeDepartmentLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	summaries summary.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.department_lifecycle")
	log.Info("department lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("department lifecycle consumer stopped")
				return
			}
			log.Error("fetch department lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.DepartmentCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode department_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if _, err := summaries.Refresh(ctx); err != nil {
			log.Error("refresh after department event failed",
				zap.String("department_id", event.DepartmentID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit department lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("summaries refreshed from department_created event",
			zap.String("department_id", event.DepartmentID),
			zap.String("name", event.Name),
		)
	}
}
