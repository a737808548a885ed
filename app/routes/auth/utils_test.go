package auth

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("id-123", "Prof. Desai", "teacher", "")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.UserID != "id-123" || claims.Name != "Prof. Desai" || claims.Role != "teacher" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "jspm-attendance" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestValidateJWTRejectsTampered(t *testing.T) {
	token, err := GenerateJWT("id-123", "Aarav", "student", "FYMCA A")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if tampered == token {
		tampered = token[:len(token)-4] + "BBBB"
	}
	if _, err := ValidateJWT(tampered); err == nil {
		t.Error("tampered token validated")
	}

	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Test@123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash %q is not bcrypt", hash)
	}

	if !CheckPasswordHash("Test@123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
