package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// NewJSONEvent 생성: payload를 JSON으로 인코딩하여 Event를 구성합니다.
// id가 빈 문자열이면 UUID를 생성합니다.
func NewJSONEvent(id string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:       id,
		Payload:  b,
		MaxRetry: len(RetryDelays),
	}, nil
}

// DecodeJSON은 Event.Payload를 제네릭 타입으로 언마샬합니다.
func DecodeJSON[T any](evt Event) (T, error) {
	var out T
	if err := json.Unmarshal(evt.Payload, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("payload unmarshal 실패: %w", err)
	}
	return out, nil
}

// PublishJSON은 payload를 Event로 감싸 발행합니다.
func PublishJSON(ctx context.Context, bus EventBus, topic Topic, id string, payload any) error {
	evt, err := NewJSONEvent(id, payload)
	if err != nil {
		return err
	}
	return bus.Publish(ctx, topic.Base(), evt)
}

// Published는 MemoryEventBus에 기록된 발행 내역 한 건입니다.
type Published struct {
	Topic string
	Event Event
}

// MemoryEventBus는 발행된 이벤트를 메모리에 기록합니다. 테스트와 로컬 실행에서 사용합니다.
type MemoryEventBus struct {
	mu     sync.Mutex
	events []Published
	// Err가 설정되면 Publish는 기록하지 않고 이 오류를 반환합니다.
	Err error
}

func (m *MemoryEventBus) Publish(_ context.Context, topic string, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.events = append(m.events, Published{Topic: topic, Event: event})
	return nil
}

func (m *MemoryEventBus) Close() {}

// Events는 지금까지 발행된 이벤트의 복사본을 반환합니다.
func (m *MemoryEventBus) Events() []Published {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Published(nil), m.events...)
}
