package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog-platform/config"
)

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(config.AuthConfig{TokenSecret: "service-secret", TokenTTL: time.Minute})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return manager
}

func TestNewJWTManagerRequiresSecretAndTTL(t *testing.T) {
	if _, err := NewJWTManager(config.AuthConfig{TokenTTL: time.Minute}); !errors.Is(err, config.ErrMissingTokenSecret) {
		t.Fatalf("expected ErrMissingTokenSecret, got %v", err)
	}
	if _, err := NewJWTManager(config.AuthConfig{TokenSecret: "s"}); !errors.Is(err, config.ErrInvalidTokenTTL) {
		t.Fatalf("expected ErrInvalidTokenTTL, got %v", err)
	}
}

func TestJWTManagerIssueAndVerifyRoundTrip(t *testing.T) {
	manager := newTestManager(t)

	token, err := manager.Issue("64b7f0c2a1b2c3d4e5f60718")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	if got := strings.Count(token, "."); got != 2 {
		t.Fatalf("expected 3-segment token, got %q", token)
	}

	userID, ok := manager.Verify(token)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if userID != "64b7f0c2a1b2c3d4e5f60718" {
		t.Fatalf("expected userID round trip, got %q", userID)
	}
}

func TestJWTManagerTokenCarriesOnlyUserIDAndExp(t *testing.T) {
	manager := newTestManager(t)
	token, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(claims) != 2 || claims["userId"] != "user-1" || claims["exp"] == nil {
		t.Fatalf("expected only userId and exp claims, got %v", claims)
	}
}

func TestJWTManagerVerifyRejectsExpiredToken(t *testing.T) {
	manager := newTestManager(t)
	issuedAt := time.Now()
	manager.now = func() time.Time { return issuedAt }

	token, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	manager.now = func() time.Time { return issuedAt.Add(59 * time.Second) }
	if _, ok := manager.Verify(token); !ok {
		t.Fatalf("expected token to be valid before ttl elapses")
	}

	manager.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, ok := manager.Verify(token); ok {
		t.Fatalf("expected expired token to be rejected")
	}
	if _, err := manager.Parse(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTManagerVerifyRejectsInvalidSignature(t *testing.T) {
	manager := newTestManager(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	if _, ok := manager.Verify(tokenString); ok {
		t.Fatalf("expected forged token to be rejected")
	}
}

func TestJWTManagerVerifyRejectsMalformedAndUnsigned(t *testing.T) {
	manager := newTestManager(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	noneToken, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	for _, token := range []string{"", "not-a-token", "a.b.c", noneToken} {
		if _, ok := manager.Verify(token); ok {
			t.Fatalf("expected %q to be rejected", token)
		}
	}
}

func TestJWTManagerParseRejectsMissingClaims(t *testing.T) {
	manager := newTestManager(t)

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(manager.secret)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		return s
	}

	_, err := manager.Parse(sign(jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}))
	if !errors.Is(err, ErrMissingUserID) {
		t.Fatalf("expected ErrMissingUserID, got %v", err)
	}

	if _, ok := manager.Verify(sign(jwt.MapClaims{"userId": "user-1"})); ok {
		t.Fatalf("expected token without exp to be rejected")
	}
}
