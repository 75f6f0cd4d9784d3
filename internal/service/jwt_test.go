package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user_id = %d; want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("username = %q; want alice", claims.Username)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseJWT(tok); err == nil {
			t.Fatalf("expected error for %q", tok)
		}
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateJWT(1, "bob")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	InitJWT("secret-two")
	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	InitJWT("test-secret")

	// hand-build a token whose exp is in the past
	past := time.Now().Add(-time.Hour)
	claims := jwt.MapClaims{
		"user_id":  int64(7),
		"username": "carol",
		"exp":      past.Unix(),
		"iat":      past.Add(-tokenTTL).Unix(),
		"nbf":      past.Add(-tokenTTL).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsUnsignedAlg(t *testing.T) {
	InitJWT("test-secret")

	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": int64(7),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(tok); err == nil {
		t.Fatal("expected alg=none token to be rejected")
	}
}
