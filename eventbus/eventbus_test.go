package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicNames(t *testing.T) {
	topics := NewTopics("")
	assert.Equal(t, "blog-platform.users", topics.Users.Base())
	assert.Equal(t, "blog-platform.comments.dlq", topics.Comments.DLQ())
	assert.Equal(t, "blog-platform.users.retry.10s", topics.Users.RetryTopics()[0])
	assert.Len(t, topics.Users.RetryTopics(), len(RetryDelays))
}

func TestTopicSpecs(t *testing.T) {
	specs := TopicSpecs(NewTopics("app").All(), 3)
	require.Len(t, specs, 2*(2+len(RetryDelays)))

	byName := map[string]int{}
	for _, s := range specs {
		byName[s.Topic] = s.NumPartitions
	}
	assert.Equal(t, 3, byName["app.users"])
	assert.Equal(t, 1, byName["app.users.dlq"])
	assert.Equal(t, 3, byName["app.comments.retry.1m0s"])
}

func TestPublishJSONRecordsEnvelope(t *testing.T) {
	bus := &MemoryEventBus{}
	topic := NewTopic("app.users")

	type payload struct {
		Login string `json:"login"`
	}
	require.NoError(t, PublishJSON(context.Background(), bus, topic, "", payload{Login: "bob"}))

	events := bus.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "app.users", events[0].Topic)
	assert.NotEmpty(t, events[0].Event.ID)
	assert.Equal(t, 0, events[0].Event.Retry)
	assert.Equal(t, len(RetryDelays), events[0].Event.MaxRetry)

	got, err := DecodeJSON[payload](events[0].Event)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Login)
}

func TestMemoryEventBusError(t *testing.T) {
	boom := errors.New("broker down")
	bus := &MemoryEventBus{Err: boom}

	err := PublishJSON(context.Background(), bus, NewTopic("x"), "id-1", map[string]string{})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, bus.Events())
}

func TestNopEventBus(t *testing.T) {
	var bus EventBus = NopEventBus{}
	assert.NoError(t, bus.Publish(context.Background(), "any", Event{ID: "1"}))
	bus.Close()
}
