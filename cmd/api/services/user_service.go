package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-platform/cmd/api/dto"
	"blog-platform/eventbus"
	"blog-platform/events"
	"blog-platform/internal/logger"
	"blog-platform/models"
	"blog-platform/query"
)

// UserService 는 관리자용 사용자 관리와 자가 가입/이메일 확인을 담당한다.
type UserService struct {
	users           UserRepository
	hasher          PasswordHasher
	bus             eventbus.EventBus
	topic           eventbus.Topic
	confirmationTTL time.Duration
}

func NewUserService(users UserRepository, hasher PasswordHasher, bus eventbus.EventBus, topic eventbus.Topic, confirmationTTL time.Duration) *UserService {
	if bus == nil {
		bus = eventbus.NopEventBus{}
	}
	if confirmationTTL <= 0 {
		confirmationTTL = time.Hour
	}
	return &UserService{
		users:           users,
		hasher:          hasher,
		bus:             bus,
		topic:           topic,
		confirmationTTL: confirmationTTL,
	}
}

// Create 는 관리자가 만드는 사용자다. 이메일 확인 없이 바로 확인된 상태로 저장된다.
func (s *UserService) Create(ctx context.Context, in dto.UserInput) (dto.UserDTO, error) {
	u, err := s.create(ctx, in, true)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.NewUserDTO(*u), nil
}

// Register 는 미확인 사용자를 만들고 확인 코드를 user.registered 이벤트로 내보낸다.
func (s *UserService) Register(ctx context.Context, in dto.UserInput) error {
	u, err := s.create(ctx, in, false)
	if err != nil {
		return err
	}

	evt := events.UserRegisteredEvent{
		BaseEvent:        events.NewBaseEvent(events.UserRegistered, u.CreatedAt),
		UserID:           u.ID.Hex(),
		Login:            u.Login,
		Email:            u.Email,
		ConfirmationCode: u.EmailConfirmation.ConfirmationCode,
		ExpiresAt:        u.EmailConfirmation.ExpirationDate,
	}
	publish(ctx, s.bus, s.topic, evt.ID, evt, logger.Fields{"user_id": evt.UserID})
	return nil
}

// ConfirmEmail 은 유효한 코드로 계정을 확인한다. 코드는 한 번만 쓸 수 있다.
func (s *UserService) ConfirmEmail(ctx context.Context, code string) error {
	u, err := s.users.FindByConfirmationCode(ctx, code)
	if err != nil {
		if translate(err) == ErrNotFound {
			return ErrInvalidConfirmationCode
		}
		return err
	}
	ec := u.EmailConfirmation
	if ec.IsConfirmed || !now().Before(ec.ExpirationDate) {
		return ErrInvalidConfirmationCode
	}
	if err := s.users.MarkConfirmed(ctx, u.ID); err != nil {
		return translate(err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return translate(s.users.Delete(ctx, oid))
}

func (s *UserService) List(ctx context.Context, q query.ListQuery) (dto.Pagination[dto.UserDTO], error) {
	items, total, err := s.users.List(ctx, q)
	if err != nil {
		return dto.Pagination[dto.UserDTO]{}, fmt.Errorf("list users: %w", err)
	}
	out := make([]dto.UserDTO, 0, len(items))
	for _, u := range items {
		out = append(out, dto.NewUserDTO(u))
	}
	return dto.NewPagination(q, total, out), nil
}

// create 는 email, login 순으로 중복을 확인한 뒤 저장한다.
// 동시 요청은 유니크 인덱스가 최종적으로 막는다.
func (s *UserService) create(ctx context.Context, in dto.UserInput, confirmed bool) (*models.User, error) {
	taken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailNotUnique
	}
	taken, err = s.users.ExistsByLogin(ctx, in.Login)
	if err != nil {
		return nil, fmt.Errorf("check login: %w", err)
	}
	if taken {
		return nil, ErrLoginNotUnique
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	createdAt := now()
	u := models.User{
		CreatedAt:    createdAt,
		Login:        in.Login,
		Email:        in.Email,
		PasswordHash: hash,
		EmailConfirmation: models.EmailConfirmation{
			IsConfirmed: confirmed,
		},
	}
	if !confirmed {
		u.EmailConfirmation.ConfirmationCode = uuid.NewString()
		u.EmailConfirmation.ExpirationDate = createdAt.Add(s.confirmationTTL)
	}

	if err := s.users.Insert(ctx, &u); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
