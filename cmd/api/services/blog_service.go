package services

import (
	"context"
	"fmt"

	"blog-platform/cmd/api/dto"
	"blog-platform/models"
	"blog-platform/query"
)

// BlogService encapsulates business logic for blogs and DTO mapping.
type BlogService struct {
	blogs BlogRepository
}

func NewBlogService(blogs BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

// Create 는 createdAt 을 찍고 isMembership 을 항상 false 로 저장한다.
func (s *BlogService) Create(ctx context.Context, in dto.BlogInput) (dto.BlogDTO, error) {
	b := models.Blog{
		CreatedAt:    now(),
		Name:         in.Name,
		Description:  in.Description,
		WebsiteURL:   in.WebsiteURL,
		IsMembership: false,
	}
	if err := s.blogs.Insert(ctx, &b); err != nil {
		return dto.BlogDTO{}, fmt.Errorf("insert blog: %w", err)
	}
	return dto.NewBlogDTO(b), nil
}

func (s *BlogService) GetByID(ctx context.Context, id string) (dto.BlogDTO, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return dto.BlogDTO{}, err
	}
	return dto.NewBlogDTO(*b), nil
}

// Update 는 기존 포스트의 blogName 스냅샷을 갱신하지 않는다.
func (s *BlogService) Update(ctx context.Context, id string, in dto.BlogInput) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return translate(s.blogs.Update(ctx, oid, in.Fields()))
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return translate(s.blogs.Delete(ctx, oid))
}

func (s *BlogService) List(ctx context.Context, q query.ListQuery) (dto.Pagination[dto.BlogDTO], error) {
	items, total, err := s.blogs.List(ctx, q)
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, fmt.Errorf("list blogs: %w", err)
	}
	out := make([]dto.BlogDTO, 0, len(items))
	for _, b := range items {
		out = append(out, dto.NewBlogDTO(b))
	}
	return dto.NewPagination(q, total, out), nil
}

// find 는 id 로 블로그를 찾는다. 없거나 형식이 틀리면 ErrNotFound.
func (s *BlogService) find(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	b, err := s.blogs.FindByID(ctx, oid)
	if err != nil {
		return nil, translate(err)
	}
	return b, nil
}
