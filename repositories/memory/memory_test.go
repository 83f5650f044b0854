package memory

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/models"
	"blog-platform/query"
	"blog-platform/repositories"
)

func seedBlogs(t *testing.T, r *BlogRepository, names ...string) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, n := range names {
		require.NoError(t, r.Insert(context.Background(), &models.Blog{
			Name:      n,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
}

func names(blogs []models.Blog) []string {
	out := make([]string, len(blogs))
	for i, b := range blogs {
		out[i] = b.Name
	}
	return out
}

func TestBlogRepository_ListSortsAndPages(t *testing.T) {
	r := NewBlogRepository()
	seedBlogs(t, r, "b", "d", "a", "c", "e")
	ctx := context.Background()

	items, total, err := r.List(ctx, query.ListQuery{PageNumber: 1, PageSize: 2, SortBy: "createdAt", SortDirection: query.Desc})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []string{"e", "c"}, names(items))

	items, _, err = r.List(ctx, query.ListQuery{PageNumber: 2, PageSize: 2, SortBy: "name", SortDirection: query.Asc})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, names(items))

	items, total, err = r.List(ctx, query.ListQuery{PageNumber: 9, PageSize: 2, SortBy: "name", SortDirection: query.Asc})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestBlogRepository_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	r := NewBlogRepository()
	seedBlogs(t, r, "GoLang", "golf", "Rust")

	items, total, err := r.List(context.Background(), query.ListQuery{
		PageNumber: 1, PageSize: 10, SortBy: "name", SortDirection: query.Asc,
		Search: map[string]string{"name": "GO"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"GoLang"}, names(items))
}

func TestBlogRepository_ReturnsCopies(t *testing.T) {
	r := NewBlogRepository()
	b := &models.Blog{Name: "orig"}
	require.NoError(t, r.Insert(context.Background(), b))

	got, err := r.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	got.Name = "changed"

	again, err := r.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", again.Name)
}

func TestBlogRepository_NotFound(t *testing.T) {
	r := NewBlogRepository()
	b := &models.Blog{Name: "x"}
	require.NoError(t, r.Insert(context.Background(), b))
	require.NoError(t, r.Delete(context.Background(), b.ID))

	_, err := r.FindByID(context.Background(), b.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, r.Delete(context.Background(), b.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, r.Update(context.Background(), b.ID, models.BlogFields{}), repositories.ErrNotFound)
}

func TestUserRepository_Uniqueness(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, r.Insert(ctx, &models.User{Login: "bob", Email: "b@x.com"}))

	assert.ErrorIs(t, r.Insert(ctx, &models.User{Login: "bob", Email: "B@X.COM"}), repositories.ErrDuplicateEmail)
	assert.ErrorIs(t, r.Insert(ctx, &models.User{Login: "bob", Email: "other@x.com"}), repositories.ErrDuplicateLogin)
	assert.NoError(t, r.Insert(ctx, &models.User{Login: "Bob", Email: "other@x.com"}))
}

func TestUserRepository_FindByLoginOrEmail(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, r.Insert(ctx, &models.User{Login: "testuser", Email: "a@b.com"}))

	_, err := r.FindByLoginOrEmail(ctx, "testuser")
	assert.NoError(t, err)
	_, err = r.FindByLoginOrEmail(ctx, "A@B.COM")
	assert.NoError(t, err)
	_, err = r.FindByLoginOrEmail(ctx, "TESTUSER")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_SearchCombinesWithOr(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()
	for i, u := range []struct{ login, email string }{
		{"alice", "alice@x.com"},
		{"bob", "bob@y.com"},
		{"carol", "carol@z.com"},
	} {
		require.NoError(t, r.Insert(ctx, &models.User{
			Login: u.login, Email: u.email,
			CreatedAt: time.Unix(int64(i), 0),
		}))
	}

	items, total, err := r.List(ctx, query.ListQuery{
		PageNumber: 1, PageSize: 10, SortBy: "login", SortDirection: query.Asc,
		Search: map[string]string{"login": "ALI", "email": "z.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "alice", items[0].Login)
	assert.Equal(t, "carol", items[1].Login)
}

func TestPostRepository_ListScopedToBlog(t *testing.T) {
	r := NewPostRepository()
	blogs := NewBlogRepository()
	ctx := context.Background()

	a, b := &models.Blog{Name: "a"}, &models.Blog{Name: "b"}
	require.NoError(t, blogs.Insert(ctx, a))
	require.NoError(t, blogs.Insert(ctx, b))
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Insert(ctx, &models.Post{Title: fmt.Sprintf("a%d", i), BlogID: a.ID}))
	}
	require.NoError(t, r.Insert(ctx, &models.Post{Title: "b0", BlogID: b.ID}))

	q := query.ListQuery{PageNumber: 1, PageSize: 10, SortBy: "title", SortDirection: query.Asc}
	items, total, err := r.List(ctx, &a.ID, q)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "a0", items[0].Title)

	_, total, err = r.List(ctx, nil, q)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestBlogRepository_ListPastLastPage(t *testing.T) {
	r := NewBlogRepository()
	seedBlogs(t, r, "a", "b")

	items, total, err := r.List(context.Background(), query.ListQuery{
		PageNumber:    math.MaxInt64,
		PageSize:      100,
		SortBy:        "createdAt",
		SortDirection: query.Desc,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
