package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "campusfound.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)

	accessToken, refreshToken, expiresIn, err := svc.GenerateTokenPair(42, "name@afit.edu.ng", "student")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if accessToken == "" {
		t.Fatal("expected non-empty access token")
	}
	if refreshToken == "" {
		t.Fatal("expected non-empty refresh token")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expected expiresIn %d, got %d", int(time.Hour.Seconds()), expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected userID 42, got %d", claims.UserID)
	}
	if claims.Email != "name@afit.edu.ng" {
		t.Errorf("expected email 'name@afit.edu.ng', got %q", claims.Email)
	}
	if claims.UserType != "student" {
		t.Errorf("expected userType 'student', got %q", claims.UserType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "another-secret", AccessTokenExp: time.Hour})

	accessToken, _, _, err := svc.GenerateTokenPair(1, "a@b.co", "student")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	accessToken, _, _, err := svc.GenerateTokenPair(1, "a@b.co", "student")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	_, err = svc.ValidateToken(accessToken)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for empty string, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected 'abc.def.ghi', got %q", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for empty header, got %v", err)
	}
}
