package query

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	q, errs := Blogs.Resolve(url.Values{})
	require.Empty(t, errs)

	assert.Equal(t, 1, q.PageNumber)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, "createdAt", q.SortBy)
	assert.Equal(t, Desc, q.SortDirection)
	assert.Nil(t, q.Search)
	assert.Equal(t, int64(0), q.Skip())
}

func TestResolve_AcceptsValidValues(t *testing.T) {
	q, errs := Posts.Resolve(url.Values{
		"pageNumber":    {"3"},
		"pageSize":      {"25"},
		"sortBy":        {"title"},
		"sortDirection": {"asc"},
	})
	require.Empty(t, errs)

	assert.Equal(t, 3, q.PageNumber)
	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, "title", q.SortBy)
	assert.Equal(t, Asc, q.SortDirection)
	assert.Equal(t, int64(50), q.Skip())
}

func TestResolve_StrictPolicyRejects(t *testing.T) {
	tests := []struct {
		name  string
		vals  url.Values
		field string
	}{
		{"pageSize zero", url.Values{"pageSize": {"0"}}, "pageSize"},
		{"pageSize too large", url.Values{"pageSize": {"101"}}, "pageSize"},
		{"pageSize not a number", url.Values{"pageSize": {"ten"}}, "pageSize"},
		{"pageNumber zero", url.Values{"pageNumber": {"0"}}, "pageNumber"},
		{"pageNumber not a number", url.Values{"pageNumber": {"abc"}}, "pageNumber"},
		{"unknown sort field", url.Values{"sortBy": {"password"}}, "sortBy"},
		{"bad direction", url.Values{"sortDirection": {"up"}}, "sortDirection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Blogs.Resolve(tt.vals)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestResolve_ReportsEveryBadParam(t *testing.T) {
	_, errs := Blogs.Resolve(url.Values{"pageNumber": {"-1"}, "sortDirection": {"sideways"}})
	require.Len(t, errs, 2)
	assert.True(t, errs.Has("pageNumber"))
	assert.True(t, errs.Has("sortDirection"))
}

func TestResolve_ClampPolicy(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"100", 20},
		{"21", 20},
		{"20", 20},
		{"5", 5},
		{"0", DefaultPageSize},
		{"-3", DefaultPageSize},
		{"lots", DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q, errs := Users.Resolve(url.Values{"pageSize": {tt.raw}})
			require.Empty(t, errs)
			assert.Equal(t, tt.want, q.PageSize)
		})
	}
}

func TestResolve_ClampPolicyStillValidatesPageNumber(t *testing.T) {
	_, errs := Comments.Resolve(url.Values{"pageNumber": {"0"}})
	require.Len(t, errs, 1)
	assert.Equal(t, "pageNumber", errs[0].Field)
}

func TestResolve_SearchTerms(t *testing.T) {
	q, errs := Users.Resolve(url.Values{
		"searchLoginTerm": {"bo"},
		"searchEmailTerm": {"  "},
	})
	require.Empty(t, errs)
	assert.Equal(t, map[string]string{"login": "bo"}, q.Search)

	q, errs = Users.Resolve(url.Values{
		"searchLoginTerm": {"bo"},
		"searchEmailTerm": {"x.com"},
	})
	require.Empty(t, errs)
	assert.Equal(t, map[string]string{"login": "bo", "email": "x.com"}, q.Search)

	// 정책에 없는 검색 파라미터는 무시한다.
	q, errs = Posts.Resolve(url.Values{"searchNameTerm": {"go"}})
	require.Empty(t, errs)
	assert.Nil(t, q.Search)
}

func TestPagesCount(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{0, 1, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 20, 5},
		{100, 20, 5},
		{7, 1, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PagesCount(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		page, size int
		want       int64
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 20, 80},
		{math.MaxInt64, 100, math.MaxInt64},
		{math.MaxInt64 / 50, 100, math.MaxInt64},
	}
	for _, tt := range tests {
		q := ListQuery{PageNumber: tt.page, PageSize: tt.size}
		assert.Equal(t, tt.want, q.Skip(), "page=%d size=%d", tt.page, tt.size)
	}
}

func TestResolve_HugePageNumber(t *testing.T) {
	q, errs := Blogs.Resolve(url.Values{"pageNumber": {"9223372036854775807"}, "pageSize": {"100"}})
	require.Empty(t, errs)
	assert.Equal(t, math.MaxInt64, q.PageNumber)
	assert.Equal(t, int64(math.MaxInt64), q.Skip())
}
