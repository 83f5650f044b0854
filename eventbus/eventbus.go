package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// RetryDelays는 소비자 측 재시도 횟수(1-based)별 지연 시간 목록입니다.
// 발행 측은 이 목록으로 재시도 토픽을 미리 만들어 두고, Event.MaxRetry 기본값을 정합니다.
var RetryDelays = []time.Duration{
	10 * time.Second,
	30 * time.Second,
	1 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// Topic은 토픽의 기본 이름, 재시도 토픽, DLQ 토픽 이름을 관리합니다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ는 DLQ 토픽 이름을 반환합니다 (예: my_topic.dlq).
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// RetryTopics는 모든 재시도 토픽의 이름을 반환합니다 (예: my_topic.retry.10s).
func (t Topic) RetryTopics() []string {
	topics := make([]string, len(RetryDelays))
	for i, delay := range RetryDelays {
		topics[i] = fmt.Sprintf("%s.retry.%s", t.base, delay.String())
	}
	return topics
}

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"`
	MaxRetry  int             `json:"max_retry"`
	LastError string          `json:"last_error,omitempty"`
}

// EventBus는 도메인 이벤트 발행의 추상화입니다.
// 발행 실패는 호출자에게 반환되며, 요청 처리 실패로 이어질지는 호출자가 정합니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NopEventBus는 브로커가 설정되지 않았을 때 사용하는 구현체입니다. 모든 이벤트를 버립니다.
type NopEventBus struct{}

func (NopEventBus) Publish(context.Context, string, Event) error { return nil }
func (NopEventBus) Close()                                       {}
