package services

import (
	"context"

	"blog-platform/cmd/api/trace"
	"blog-platform/eventbus"
	"blog-platform/internal/logger"
)

// publish 는 도메인 이벤트를 발행한다. 실패는 로그만 남기고 요청은 계속 성공으로 처리한다.
func publish(ctx context.Context, bus eventbus.EventBus, topic eventbus.Topic, id string, payload any, fields logger.Fields) {
	requestID, spanID := trace.NextSpan(ctx)
	if fields == nil {
		fields = logger.Fields{}
	}
	fields["topic"] = topic.Base()
	fields["event_id"] = id
	fields["request_id"] = requestID
	fields["span_id"] = spanID

	if err := eventbus.PublishJSON(ctx, bus, topic, id, payload); err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("event publish failed", fields)
		return
	}
	logger.DebugWithFields("event published", fields)
}
