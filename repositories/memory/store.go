// Package memory 는 repositories 패키지와 같은 계약을 지키는 인메모리 저장소다.
// 서비스/라우터 테스트에서 MongoDB 대신 주입한다.
package memory

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-platform/query"
	"blog-platform/repositories"
)

// store 는 문서를 값으로 보관한다. 조회 결과는 복사본이므로 호출자가 수정해도 저장소에 영향이 없다.
type store[T any] struct {
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]T
	id    func(T) primitive.ObjectID
	field func(T, string) any
}

func newStore[T any](id func(T) primitive.ObjectID, field func(T, string) any) *store[T] {
	return &store[T]{
		docs:  make(map[primitive.ObjectID]T),
		id:    id,
		field: field,
	}
}

func (s *store[T]) put(doc T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[s.id(doc)] = doc
}

func (s *store[T]) get(id primitive.ObjectID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		var zero T
		return zero, repositories.ErrNotFound
	}
	return doc, nil
}

// update 는 문서가 있을 때만 fn 을 적용한다.
func (s *store[T]) update(id primitive.ObjectID, fn func(*T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return repositories.ErrNotFound
	}
	fn(&doc)
	s.docs[id] = doc
	return nil
}

func (s *store[T]) remove(id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *store[T]) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[primitive.ObjectID]T)
}

func (s *store[T]) find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.docs {
		if match(doc) {
			return doc, true
		}
	}
	var zero T
	return zero, false
}

// page 는 Mongo 구현과 같은 순서로 필터 -> 정렬(_id 보조 키) -> skip/limit 을 적용한다.
func (s *store[T]) page(q query.ListQuery, match func(T) bool) ([]T, int64) {
	s.mu.RLock()
	all := make([]T, 0, len(s.docs))
	for _, doc := range s.docs {
		if match == nil || match(doc) {
			all = append(all, doc)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(all, func(a, b T) int {
		c := compare(s.field(a, q.SortBy), s.field(b, q.SortBy))
		if c == 0 {
			c = strings.Compare(s.id(a).Hex(), s.id(b).Hex())
		}
		if q.SortDirection == query.Desc {
			c = -c
		}
		return c
	})

	total := int64(len(all))
	start := q.Skip()
	if start < 0 || start >= total {
		return []T{}, total
	}
	end := min(start+int64(q.PageSize), total)
	return all[start:end], total
}

func compare(a, b any) int {
	switch av := a.(type) {
	case string:
		return strings.Compare(av, b.(string))
	case time.Time:
		return av.Compare(b.(time.Time))
	}
	return 0
}

// matchesAny 는 Mongo 의 대소문자 무시 부분 문자열 $or 필터와 같다.
func matchesAny(search map[string]string, value func(field string) string) bool {
	if len(search) == 0 {
		return true
	}
	for field, term := range search {
		if strings.Contains(strings.ToLower(value(field)), strings.ToLower(term)) {
			return true
		}
	}
	return false
}
