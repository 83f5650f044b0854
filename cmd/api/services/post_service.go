package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-platform/cmd/api/dto"
	"blog-platform/models"
	"blog-platform/query"
)

// PostService 는 포스트 CRUD 와 블로그 참조 검사를 담당한다.
// 생성/수정 시 참조 블로그를 다시 조회해 blogName 스냅샷을 갱신한다.
type PostService struct {
	posts PostRepository
	blogs *BlogService
}

func NewPostService(posts PostRepository, blogs *BlogService) *PostService {
	return &PostService{posts: posts, blogs: blogs}
}

func (s *PostService) Create(ctx context.Context, in dto.PostInput) (dto.PostDTO, error) {
	return s.CreateForBlog(ctx, in.BlogID, in.BlogPostInput)
}

// CreateForBlog 는 blogID 가 가리키는 블로그가 없으면 ErrNotFound 를 반환하고 아무것도 저장하지 않는다.
func (s *PostService) CreateForBlog(ctx context.Context, blogID string, in dto.BlogPostInput) (dto.PostDTO, error) {
	blog, err := s.blogs.find(ctx, blogID)
	if err != nil {
		return dto.PostDTO{}, err
	}

	p := models.Post{
		CreatedAt:        now(),
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	}
	if err := s.posts.Insert(ctx, &p); err != nil {
		return dto.PostDTO{}, fmt.Errorf("insert post: %w", err)
	}
	return dto.NewPostDTO(p), nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (dto.PostDTO, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.PostDTO{}, err
	}
	return dto.NewPostDTO(*p), nil
}

func (s *PostService) Update(ctx context.Context, id string, in dto.PostInput) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	blog, err := s.blogs.find(ctx, in.BlogID)
	if err != nil {
		return err
	}
	return translate(s.posts.Update(ctx, oid, models.PostFields{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	}))
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return translate(s.posts.Delete(ctx, oid))
}

func (s *PostService) List(ctx context.Context, q query.ListQuery) (dto.Pagination[dto.PostDTO], error) {
	return s.list(ctx, nil, q)
}

// ListByBlog 는 블로그가 없으면 ErrNotFound 를 반환한다.
func (s *PostService) ListByBlog(ctx context.Context, blogID string, q query.ListQuery) (dto.Pagination[dto.PostDTO], error) {
	blog, err := s.blogs.find(ctx, blogID)
	if err != nil {
		return dto.Pagination[dto.PostDTO]{}, err
	}
	return s.list(ctx, &blog.ID, q)
}

func (s *PostService) list(ctx context.Context, blogID *primitive.ObjectID, q query.ListQuery) (dto.Pagination[dto.PostDTO], error) {
	items, total, err := s.posts.List(ctx, blogID, q)
	if err != nil {
		return dto.Pagination[dto.PostDTO]{}, fmt.Errorf("list posts: %w", err)
	}
	out := make([]dto.PostDTO, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewPostDTO(p))
	}
	return dto.NewPagination(q, total, out), nil
}

func (s *PostService) find(ctx context.Context, id string) (*models.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := s.posts.FindByID(ctx, oid)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}
