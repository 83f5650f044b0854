package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost 는 bcrypt work factor 다.
const PasswordCost = 10

// PasswordHasher 는 bcrypt 로 비밀번호를 해시하고 검증한다.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: PasswordCost}
}

// Hash 는 호출마다 새 salt 를 사용하므로 같은 비밀번호도 다른 해시가 된다.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify 는 불일치면 (false, nil) 을 반환한다.
// 저장된 해시가 깨진 경우 등은 (false, err) 로, 틀린 비밀번호와 구분된다.
func (h *PasswordHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
