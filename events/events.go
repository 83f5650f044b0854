package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	UserRegistered EventType = "user.registered"
	CommentCreated EventType = "comment.created"
)

const (
	sourceAPI     = "api"
	schemaVersion = "1"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// NewBaseEvent 는 새 ID 와 현재 시각으로 BaseEvent 를 만든다.
func NewBaseEvent(t EventType, now time.Time) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: now.UTC(),
		Source:    sourceAPI,
		Version:   schemaVersion,
	}
}

// UserRegisteredEvent 자가 가입 이벤트. 외부 notifier 가 확인 메일을 보낼 때 사용한다.
type UserRegisteredEvent struct {
	BaseEvent
	UserID           string    `json:"user_id"`
	Login            string    `json:"login"`
	Email            string    `json:"email"`
	ConfirmationCode string    `json:"confirmation_code"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// CommentCreatedEvent 댓글 작성 이벤트
type CommentCreatedEvent struct {
	BaseEvent
	CommentID string `json:"comment_id"`
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
}
