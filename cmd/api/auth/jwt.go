package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog-platform/config"
)

var ErrMissingUserID = errors.New("token missing userId claim")

// accessClaims 는 access token 의 전체 클레임이다. userId 와 exp 외에는 담지 않는다.
type accessClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTManager 는 HS256 단일 시크릿으로 access token 을 발급/검증한다.
// 폐기 목록은 없으므로 토큰은 TTL 동안 계정 상태와 무관하게 유효하다.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager 는 시작 시 읽은 인증 설정으로 JWTManager 를 만든다.
func NewJWTManager(cfg config.AuthConfig) (*JWTManager, error) {
	if cfg.TokenSecret == "" {
		return nil, config.ErrMissingTokenSecret
	}
	if cfg.TokenTTL <= 0 {
		return nil, config.ErrInvalidTokenTTL
	}
	return &JWTManager{
		secret: []byte(cfg.TokenSecret),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue 는 userID 에 묶인 access token 을 발급한다.
func (m *JWTManager) Issue(userID string) (string, error) {
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(m.now().Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Parse 는 서명/만료/클레임을 검사하고 실패 원인을 error 로 돌려준다.
func (m *JWTManager) Parse(tokenString string) (string, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}
	if claims.UserID == "" {
		return "", ErrMissingUserID
	}
	return claims.UserID, nil
}

// Verify 는 토큰이 유효하면 userID 와 true 를 반환한다.
// 형식 오류, 서명 불일치, 만료 등 실패 원인은 구분하지 않는다.
func (m *JWTManager) Verify(tokenString string) (string, bool) {
	userID, err := m.Parse(tokenString)
	if err != nil {
		return "", false
	}
	return userID, true
}
