package token

import (
	"errors"
	"testing"
	"time"

	"github.com/sableroast/storefront/internal/account/domain"
)

func testConfig(now time.Time) Config {
	return Config{
		Key: []byte("test-signing-key"),
		Now: func() time.Time { return now },
	}
}

func testSession() domain.Session {
	return domain.Session{
		UserID:   "u-1",
		Email:    "demo@coffee.com",
		FullName: "Demo User",
		Role:     "customer",
	}
}

func TestMintVerifyRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	cfg := testConfig(now)

	value, err := cfg.Mint(testSession(), true)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	session, remember, err := cfg.Verify(value)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !remember {
		t.Fatal("expected remember flag preserved")
	}
	if session.UserID != "u-1" || session.Email != "demo@coffee.com" || session.Role != "customer" {
		t.Fatalf("unexpected session %+v", session)
	}
	if !session.LoginAt.Equal(now) {
		t.Fatalf("expected login time %v, got %v", now, session.LoginAt)
	}
}

func TestVerifyExpired(t *testing.T) {
	minted := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	cfg := testConfig(minted)

	value, err := cfg.Mint(testSession(), false)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	cfg.Now = func() time.Time { return minted.Add(SessionTTL + time.Minute) }
	if _, _, err := cfg.Verify(value); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected expired error, got %v", err)
	}
}

func TestVerifyRememberedOutlivesSessionTTL(t *testing.T) {
	minted := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	cfg := testConfig(minted)

	value, err := cfg.Mint(testSession(), true)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	cfg.Now = func() time.Time { return minted.Add(SessionTTL + time.Hour) }
	if _, _, err := cfg.Verify(value); err != nil {
		t.Fatalf("expected remembered token still valid, got %v", err)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	cfg := testConfig(now)

	value, err := cfg.Mint(testSession(), false)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := Config{Key: []byte("other-key"), Now: cfg.Now}
	if _, _, err := other.Verify(value); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	cfg := testConfig(time.Now())

	for _, value := range []string{"", "   ", "not.a.token"} {
		if _, _, err := cfg.Verify(value); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected invalid error for %q, got %v", value, err)
		}
	}
}

func TestMintWithoutKey(t *testing.T) {
	var cfg Config
	if _, err := cfg.Mint(testSession(), false); err == nil {
		t.Fatal("expected error")
	}
}
