package services

import (
	"context"
	"fmt"
)

// Clearer 는 컬렉션 전체를 비울 수 있는 저장소다.
type Clearer interface {
	DeleteAll(ctx context.Context) error
}

// TestingService 는 테스트 환경 초기화용 전체 삭제를 제공한다.
type TestingService struct {
	stores []Clearer
}

func NewTestingService(stores ...Clearer) *TestingService {
	return &TestingService{stores: stores}
}

// ClearAll 은 모든 저장소를 비운다. 첫 오류에서 멈춘다.
func (s *TestingService) ClearAll(ctx context.Context) error {
	for _, st := range s.stores {
		if err := st.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
	}
	return nil
}
