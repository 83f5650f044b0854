package dto

import "blog-platform/query"

// Pagination 은 모든 목록 API 의 고정 응답 형식이다.
// Items 는 결과가 없어도 null 이 아닌 빈 배열로 직렬화된다.
type Pagination[T any] struct {
	PagesCount int   `json:"pagesCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	Items      []T   `json:"items"`
}

// NewPagination 은 조회 조건과 전체 건수로 메타데이터를 계산한다.
// pageNumber 가 마지막 페이지를 넘어도 pagesCount 는 보정하지 않는다.
func NewPagination[T any](q query.ListQuery, total int64, items []T) Pagination[T] {
	if items == nil {
		items = []T{}
	}
	return Pagination[T]{
		PagesCount: query.PagesCount(total, q.PageSize),
		Page:       q.PageNumber,
		PageSize:   q.PageSize,
		TotalCount: total,
		Items:      items,
	}
}

// 아래 타입들은 swag 가 제네릭 응답을 문서화할 수 있도록 구체화한 별칭이다.
type (
	PaginationBlogDTO    = Pagination[BlogDTO]
	PaginationPostDTO    = Pagination[PostDTO]
	PaginationCommentDTO = Pagination[CommentDTO]
	PaginationUserDTO    = Pagination[UserDTO]
)
