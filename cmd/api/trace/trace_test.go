package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartKeepsGivenRequestID(t *testing.T) {
	ctx, id := Start(context.Background(), "req-1")

	assert.Equal(t, "req-1", id)
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Zero(t, Outbound(ctx))
}

func TestStartGeneratesRequestID(t *testing.T) {
	ctx, id := Start(context.Background(), "")

	assert.NotEmpty(t, id)
	assert.Equal(t, id, RequestID(ctx))
}

func TestNextSpanCountsOutboundWork(t *testing.T) {
	ctx, _ := Start(context.Background(), "req-1")

	id, span := NextSpan(ctx)
	assert.Equal(t, "req-1", id)
	assert.Equal(t, "1", span)

	_, span = NextSpan(ctx)
	assert.Equal(t, "2", span)
	assert.EqualValues(t, 2, Outbound(ctx))
}

func TestWithoutStart(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestID(ctx))
	assert.Zero(t, Outbound(ctx))

	id, span := NextSpan(ctx)
	assert.NotEmpty(t, id)
	assert.Equal(t, "1", span)
}
