package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("dashboard", "service", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT returned error: %v", err)
	}
	if claims.Subject != "dashboard" || claims.Role != "service" {
		t.Errorf("claims = %q/%q, want dashboard/service", claims.Subject, claims.Role)
	}

	expAt, err := claims.GetExpirationTime()
	if err != nil || expAt == nil {
		t.Fatalf("missing expiration: %v", err)
	}
	if !expAt.After(time.Now()) {
		t.Error("token already expired")
	}
}

func TestParseJWTRejectsExpired(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("dashboard", "service", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}
	if _, err := ParseJWT(token); err == nil {
		t.Error("ParseJWT accepted an expired token")
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("test-secret")
	token, err := GenerateJWT("dashboard", "service", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	InitJWT("other-secret")
	defer InitJWT("test-secret")
	if _, err := ParseJWT(token); err == nil {
		t.Error("ParseJWT accepted a token signed with a different secret")
	}
}
