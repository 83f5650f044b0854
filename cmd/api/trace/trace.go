// Package trace 는 요청 단위 추적 정보(request id 와 outbound span 순번)를 컨텍스트로 전달한다.
package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// InboundSpan 은 요청 자체의 span 번호다. 이벤트 발행 같은 outbound 작업은 1 부터 센다.
const InboundSpan = "0"

type ctxKey struct{}

type span struct {
	requestID string
	seq       atomic.Int64
}

// Start 는 requestID 를 컨텍스트에 심는다. 비어 있으면 새로 만든다.
func Start(ctx context.Context, requestID string) (context.Context, string) {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, ctxKey{}, &span{requestID: requestID}), requestID
}

func from(ctx context.Context) *span {
	s, _ := ctx.Value(ctxKey{}).(*span)
	return s
}

// RequestID 는 Start 로 심은 id 를 돌려준다. 없으면 빈 문자열.
func RequestID(ctx context.Context) string {
	if s := from(ctx); s != nil {
		return s.requestID
	}
	return ""
}

// NextSpan 은 outbound 작업 하나에 쓸 (requestID, spanID) 를 발급한다.
// 요청 밖(예: 백그라운드)에서 불리면 새 request id 와 span 1 을 쓴다.
func NextSpan(ctx context.Context) (string, string) {
	s := from(ctx)
	if s == nil {
		return uuid.NewString(), "1"
	}
	return s.requestID, strconv.FormatInt(s.seq.Add(1), 10)
}

// Outbound 는 지금까지 발급한 outbound span 수다.
func Outbound(ctx context.Context) int64 {
	if s := from(ctx); s != nil {
		return s.seq.Load()
	}
	return 0
}
