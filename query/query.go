// Package query 는 목록 조회 API 의 pageNumber/pageSize/sortBy/sortDirection/검색어
// 쿼리 파라미터를 엔티티별 정책에 따라 정규화한다.
package query

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"blog-platform/validation"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	DefaultSortBy     = "createdAt"
)

// ListQuery 는 정규화된 목록 조회 조건이다.
// Search 는 비어 있지 않은 검색어만 담으며, 여러 개면 OR 로 결합된다.
type ListQuery struct {
	PageNumber    int
	PageSize      int
	SortBy        string
	SortDirection Direction
	Search        map[string]string
}

// Skip 은 정렬 후 건너뛸 문서 수다. 곱이 int64 를 넘으면 math.MaxInt64 로 포화한다.
func (q ListQuery) Skip() int64 {
	if q.PageNumber <= 1 || q.PageSize <= 0 {
		return 0
	}
	n, size := int64(q.PageNumber-1), int64(q.PageSize)
	if n > math.MaxInt64/size {
		return math.MaxInt64
	}
	return n * size
}

// Policy 는 엔티티별 목록 조회 규칙이다.
//
// ClampPageSize 가 true 면 잘못된 pageSize 는 기본값으로, MaxPageSize 초과는 최대값으로 조용히 보정한다.
// false 면 [1, MaxPageSize] 밖의 값은 검증 오류가 된다.
type Policy struct {
	SortFields    []string
	MaxPageSize   int
	ClampPageSize bool
	// SearchParams 는 쿼리 파라미터 이름 -> 검색 대상 필드 이름이다.
	SearchParams map[string]string
}

// Resolve 는 쿼리 파라미터를 ListQuery 로 바꾼다.
func (p Policy) Resolve(values url.Values) (ListQuery, validation.Errors) {
	q := ListQuery{
		PageNumber:    DefaultPageNumber,
		PageSize:      DefaultPageSize,
		SortBy:        DefaultSortBy,
		SortDirection: Desc,
	}
	var errs validation.Errors

	if raw := values.Get("pageNumber"); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			errs = append(errs, validation.FieldError{Field: "pageNumber", Message: "pageNumber must be a positive integer"})
		} else {
			q.PageNumber = n
		}
	}

	if raw := values.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case p.ClampPageSize && (err != nil || n < 1):
		case p.ClampPageSize && n > p.MaxPageSize:
			q.PageSize = p.MaxPageSize
		case err != nil || n < 1 || n > p.MaxPageSize:
			errs = append(errs, validation.FieldError{
				Field:   "pageSize",
				Message: fmt.Sprintf("pageSize must be an integer between 1 and %d", p.MaxPageSize),
			})
		default:
			q.PageSize = n
		}
	}

	if raw := values.Get("sortBy"); raw != "" {
		if slices.Contains(p.SortFields, raw) {
			q.SortBy = raw
		} else {
			errs = append(errs, validation.FieldError{
				Field:   "sortBy",
				Message: "sortBy must be one of: " + strings.Join(p.SortFields, ", "),
			})
		}
	}

	if raw := values.Get("sortDirection"); raw != "" {
		switch Direction(raw) {
		case Asc, Desc:
			q.SortDirection = Direction(raw)
		default:
			errs = append(errs, validation.FieldError{Field: "sortDirection", Message: "sortDirection must be asc or desc"})
		}
	}

	for param, field := range p.SearchParams {
		if term := strings.TrimSpace(values.Get(param)); term != "" {
			if q.Search == nil {
				q.Search = map[string]string{}
			}
			q.Search[field] = term
		}
	}

	if len(errs) > 0 {
		return ListQuery{}, errs
	}
	return q, nil
}

// PagesCount 는 ceil(total / pageSize) 이며 total 이 0 이면 0 이다.
func PagesCount(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// 엔티티별 정책. 공개 목록(blogs/posts)은 범위를 벗어나면 거절하고,
// 사용자/댓글 목록은 최대 20 으로 보정한다.
var (
	Blogs = Policy{
		SortFields:   []string{"createdAt", "name", "description", "websiteUrl"},
		MaxPageSize:  100,
		SearchParams: map[string]string{"searchNameTerm": "name"},
	}
	Posts = Policy{
		SortFields:  []string{"createdAt", "title", "shortDescription", "content", "blogId", "blogName"},
		MaxPageSize: 100,
	}
	Comments = Policy{
		SortFields:    []string{"createdAt"},
		MaxPageSize:   20,
		ClampPageSize: true,
	}
	Users = Policy{
		SortFields:    []string{"createdAt", "login", "email"},
		MaxPageSize:   20,
		ClampPageSize: true,
		SearchParams:  map[string]string{"searchLoginTerm": "login", "searchEmailTerm": "email"},
	}
)
