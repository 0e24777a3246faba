package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/naturesnacks/snackstore/pkg/config"
)

func testConfig() config.SessionConfig {
	return config.SessionConfig{Secret: "secret", Issuer: "naturesnacks", TTL: time.Hour}
}

func TestMintAndParse(t *testing.T) {
	cfg := testConfig()
	sid := uuid.New()

	token, err := Mint(cfg, time.Now().UTC(), sid)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	claims, err := Parse(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != sid {
		t.Fatalf("expected session %s, got %s", sid, claims.SessionID)
	}
	if claims.Issuer != "naturesnacks" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	cfg := testConfig()
	token, err := Mint(cfg, time.Now().Add(-2*time.Hour), uuid.New())
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := Parse(cfg, token); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestParseRejectsWrongSecretAndIssuer(t *testing.T) {
	cfg := testConfig()
	token, err := Mint(cfg, time.Now(), uuid.New())
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := Parse(other, token); err == nil {
		t.Fatalf("expected signature mismatch")
	}

	other = cfg
	other.Issuer = "someone-else"
	if _, err := Parse(other, token); err == nil {
		t.Fatalf("expected issuer mismatch")
	}
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	cfg := testConfig()
	claims := Claims{
		SessionID:        uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{Issuer: cfg.Issuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(cfg, token); err == nil {
		t.Fatalf("expected HS512 token to be rejected")
	}
}

func TestMintValidatesConfig(t *testing.T) {
	if _, err := Mint(config.SessionConfig{}, time.Now(), uuid.New()); err == nil {
		t.Fatalf("expected missing secret error")
	}
	if _, err := Mint(testConfig(), time.Now(), uuid.Nil); err == nil {
		t.Fatalf("expected nil session id error")
	}
}
