package services

import (
	"context"
	"fmt"

	"blog-platform/cmd/api/dto"
)

// AuthService 는 로그인과 현재 사용자 조회를 담당한다.
type AuthService struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login 은 login 또는 email 로 사용자를 찾고 비밀번호를 확인한 뒤 access token 을 발급한다.
// 사용자가 없는 경우와 비밀번호가 틀린 경우를 구분하지 않는다.
func (s *AuthService) Login(ctx context.Context, in dto.LoginInput) (dto.LoginResponseDTO, error) {
	u, err := s.users.FindByLoginOrEmail(ctx, in.LoginOrEmail)
	if err != nil {
		if translate(err) == ErrNotFound {
			return dto.LoginResponseDTO{}, ErrWrongCredentials
		}
		return dto.LoginResponseDTO{}, err
	}

	ok, err := s.hasher.Verify(in.Password, u.PasswordHash)
	if err != nil {
		return dto.LoginResponseDTO{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return dto.LoginResponseDTO{}, ErrWrongCredentials
	}

	token, err := s.tokens.Issue(u.ID.Hex())
	if err != nil {
		return dto.LoginResponseDTO{}, err
	}
	return dto.LoginResponseDTO{AccessToken: token}, nil
}

// Me 는 토큰의 userId 로 사용자를 조회한다. 토큰 발급 후 삭제된 사용자는 ErrNotFound.
func (s *AuthService) Me(ctx context.Context, userID string) (dto.MeDTO, error) {
	oid, err := parseID(userID)
	if err != nil {
		return dto.MeDTO{}, err
	}
	u, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return dto.MeDTO{}, translate(err)
	}
	return dto.MeDTO{UserID: u.ID.Hex(), Login: u.Login, Email: u.Email}, nil
}
