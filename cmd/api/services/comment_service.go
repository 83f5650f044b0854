package services

import (
	"context"
	"fmt"

	"blog-platform/cmd/api/dto"
	"blog-platform/eventbus"
	"blog-platform/events"
	"blog-platform/internal/logger"
	"blog-platform/models"
	"blog-platform/query"
)

// CommentService 는 포스트 댓글을 관리한다. 수정/삭제는 작성자 본인만 가능하다.
type CommentService struct {
	comments CommentRepository
	posts    *PostService
	users    UserRepository
	bus      eventbus.EventBus
	topic    eventbus.Topic
}

func NewCommentService(comments CommentRepository, posts *PostService, users UserRepository, bus eventbus.EventBus, topic eventbus.Topic) *CommentService {
	if bus == nil {
		bus = eventbus.NopEventBus{}
	}
	return &CommentService{comments: comments, posts: posts, users: users, bus: bus, topic: topic}
}

// Create 는 포스트를 먼저 확인하고, 그 다음 인증된 사용자를 확인한다.
// 토큰 발급 후 삭제된 사용자는 ErrNotFound 로 끝난다.
func (s *CommentService) Create(ctx context.Context, postID, userID string, in dto.CommentInput) (dto.CommentDTO, error) {
	post, err := s.posts.find(ctx, postID)
	if err != nil {
		return dto.CommentDTO{}, err
	}
	uid, err := parseID(userID)
	if err != nil {
		return dto.CommentDTO{}, err
	}
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return dto.CommentDTO{}, translate(err)
	}

	c := models.Comment{
		CreatedAt: now(),
		Content:   in.Content,
		PostID:    post.ID,
		CommentatorInfo: models.CommentatorInfo{
			UserID:    user.ID,
			UserLogin: user.Login,
		},
	}
	if err := s.comments.Insert(ctx, &c); err != nil {
		return dto.CommentDTO{}, fmt.Errorf("insert comment: %w", err)
	}

	s.publishCreated(ctx, c)
	return dto.NewCommentDTO(c), nil
}

func (s *CommentService) GetByID(ctx context.Context, id string) (dto.CommentDTO, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return dto.CommentDTO{}, err
	}
	return dto.NewCommentDTO(*c), nil
}

// ListByPost 는 포스트가 없으면 ErrNotFound 를 반환한다.
func (s *CommentService) ListByPost(ctx context.Context, postID string, q query.ListQuery) (dto.Pagination[dto.CommentDTO], error) {
	post, err := s.posts.find(ctx, postID)
	if err != nil {
		return dto.Pagination[dto.CommentDTO]{}, err
	}
	items, total, err := s.comments.ListByPost(ctx, post.ID, q)
	if err != nil {
		return dto.Pagination[dto.CommentDTO]{}, fmt.Errorf("list comments: %w", err)
	}
	out := make([]dto.CommentDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewCommentDTO(c))
	}
	return dto.NewPagination(q, total, out), nil
}

func (s *CommentService) Update(ctx context.Context, id, userID string, in dto.CommentInput) error {
	c, err := s.owned(ctx, id, userID)
	if err != nil {
		return err
	}
	return translate(s.comments.UpdateContent(ctx, c.ID, in.Content))
}

func (s *CommentService) Delete(ctx context.Context, id, userID string) error {
	c, err := s.owned(ctx, id, userID)
	if err != nil {
		return err
	}
	return translate(s.comments.Delete(ctx, c.ID))
}

// owned 는 존재 여부를 먼저 확인한 뒤 작성자를 비교한다 (404 가 403 보다 우선).
func (s *CommentService) owned(ctx context.Context, id, userID string) (*models.Comment, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.CommentatorInfo.UserID.Hex() != userID {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *CommentService) find(ctx context.Context, id string) (*models.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	c, err := s.comments.FindByID(ctx, oid)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *CommentService) publishCreated(ctx context.Context, c models.Comment) {
	evt := events.CommentCreatedEvent{
		BaseEvent: events.NewBaseEvent(events.CommentCreated, c.CreatedAt),
		CommentID: c.ID.Hex(),
		PostID:    c.PostID.Hex(),
		UserID:    c.CommentatorInfo.UserID.Hex(),
		UserLogin: c.CommentatorInfo.UserLogin,
	}
	publish(ctx, s.bus, s.topic, evt.ID, evt, logger.Fields{"comment_id": evt.CommentID})
}
