package service

import (
	"context"
	"testing"
	"time"

	"github.com/sableroast/storefront/internal/account/domain"
	"github.com/sableroast/storefront/internal/platform/errors"
	"github.com/sableroast/storefront/internal/storage/memory"
)

type testFixture struct {
	svc       *AccountService
	durable   *memory.Store
	ephemeral *memory.Store
}

func newTestFixture(t *testing.T) testFixture {
	t.Helper()
	users := memory.New()
	durable := memory.New()
	ephemeral := memory.New()

	svc := NewAccountService(Stores{
		Users:            users,
		DurableSession:   durable,
		EphemeralSession: ephemeral,
	})
	svc.clock = func() time.Time {
		return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	}
	return testFixture{svc: svc, durable: durable, ephemeral: ephemeral}
}

func testRegistration() domain.Registration {
	return domain.Registration{
		FullName:        "Budi Santoso",
		Email:           "budi@example.com",
		Phone:           "081234567890",
		Password:        "kopi-enak-123",
		ConfirmPassword: "kopi-enak-123",
	}
}

func TestRegister(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	user, err := fx.svc.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated id")
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.Register(ctx, testRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := fx.svc.Register(ctx, testRegistration())
	if errors.CodeOf(err) != errors.CodeAccountEmailTaken {
		t.Fatalf("expected email taken error, got %v", err)
	}

	users, err := fx.svc.stores.Users.GetUsers(ctx)
	if err != nil {
		t.Fatalf("get users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected account list unchanged, got %d accounts", len(users))
	}
}

func TestRegisterEmailMatchIsCaseSensitive(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.Register(ctx, testRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	reg := testRegistration()
	reg.Email = "Budi@example.com"
	if _, err := fx.svc.Register(ctx, reg); err != nil {
		t.Fatalf("expected distinct account for different case, got %v", err)
	}
}

func TestLoginRemembered(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.Register(ctx, testRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	session, err := fx.svc.Login(ctx, "budi@example.com", "kopi-enak-123", true)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Email != "budi@example.com" || session.FullName != "Budi Santoso" {
		t.Fatalf("unexpected session %+v", session)
	}

	if _, err := fx.durable.GetSession(ctx); err != nil {
		t.Fatalf("expected session in durable scope, got %v", err)
	}
	if _, err := fx.ephemeral.GetSession(ctx); err == nil {
		t.Fatal("expected no session in ephemeral scope")
	}
}

func TestLoginEphemeral(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.Register(ctx, testRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := fx.svc.Login(ctx, "budi@example.com", "kopi-enak-123", false); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := fx.ephemeral.GetSession(ctx); err != nil {
		t.Fatalf("expected session in ephemeral scope, got %v", err)
	}
	if _, err := fx.durable.GetSession(ctx); err == nil {
		t.Fatal("expected no session in durable scope")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.Register(ctx, testRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := fx.svc.Login(ctx, "budi@example.com", "wrong-password", true)
	if errors.CodeOf(err) != errors.CodeAccountInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	if _, _, err := fx.svc.CurrentSession(ctx); err != nil {
		t.Fatalf("current session: %v", err)
	}
	if _, found, _ := fx.svc.CurrentSession(ctx); found {
		t.Fatal("expected no session in either scope")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	fx := newTestFixture(t)

	_, err := fx.svc.Login(context.Background(), "nobody@example.com", "whatever1", false)
	if errors.CodeOf(err) != errors.CodeAccountInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestCurrentSessionPrefersDurable(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if err := fx.ephemeral.PutSession(ctx, domain.Session{UserID: "ephemeral"}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := fx.durable.PutSession(ctx, domain.Session{UserID: "durable"}); err != nil {
		t.Fatalf("put session: %v", err)
	}

	session, found, err := fx.svc.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if !found {
		t.Fatal("expected active session")
	}
	if session.UserID != "durable" {
		t.Fatalf("expected durable scope checked first, got %q", session.UserID)
	}
}

func TestLogoutClearsBothScopes(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if err := fx.durable.PutSession(ctx, domain.Session{UserID: "u-1"}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := fx.ephemeral.PutSession(ctx, domain.Session{UserID: "u-1"}); err != nil {
		t.Fatalf("put session: %v", err)
	}

	if err := fx.svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, found, _ := fx.svc.CurrentSession(ctx); found {
		t.Fatal("expected both scopes cleared")
	}
}

func TestUpdateProfile(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	user, err := fx.svc.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := fx.svc.Login(ctx, user.Email, "kopi-enak-123", false); err != nil {
		t.Fatalf("login: %v", err)
	}

	updated, err := fx.svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{FullName: "Budi S."})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FullName != "Budi S." {
		t.Fatalf("expected updated name, got %q", updated.FullName)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatal("expected update timestamp")
	}

	// The active session mirrors the change in the scope that holds it.
	session, err := fx.ephemeral.GetSession(ctx)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if session.FullName != "Budi S." {
		t.Fatalf("expected session mirrored, got %q", session.FullName)
	}
	if _, err := fx.durable.GetSession(ctx); err == nil {
		t.Fatal("expected durable scope untouched")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	fx := newTestFixture(t)

	_, err := fx.svc.UpdateProfile(context.Background(), "missing", domain.ProfileUpdate{FullName: "X"})
	if errors.CodeOf(err) != errors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestEnsureDemoAccount(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	if err := fx.svc.EnsureDemoAccount(ctx); err != nil {
		t.Fatalf("ensure demo account: %v", err)
	}
	if err := fx.svc.EnsureDemoAccount(ctx); err != nil {
		t.Fatalf("ensure demo account twice: %v", err)
	}

	users, err := fx.svc.stores.Users.GetUsers(ctx)
	if err != nil {
		t.Fatalf("get users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one demo account, got %d", len(users))
	}

	if _, err := fx.svc.Login(ctx, "demo@coffee.com", "demo123", false); err != nil {
		t.Fatalf("demo login: %v", err)
	}
}

func TestUserByID(t *testing.T) {
	fx := newTestFixture(t)
	ctx := context.Background()

	user, err := fx.svc.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	loaded, err := fx.svc.UserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("user by id: %v", err)
	}
	if loaded.Email != user.Email {
		t.Fatalf("expected %q, got %q", user.Email, loaded.Email)
	}

	if _, err := fx.svc.UserByID(ctx, "missing"); errors.CodeOf(err) != errors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestBcryptVerifierIntegration(t *testing.T) {
	fx := newTestFixture(t)
	fx.svc.WithVerifier(domain.BcryptCredentials{Cost: 4})
	ctx := context.Background()

	user, err := fx.svc.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "kopi-enak-123" {
		t.Fatal("expected hashed password in account record")
	}

	if _, err := fx.svc.Login(ctx, user.Email, "kopi-enak-123", true); err != nil {
		t.Fatalf("login with hashed credentials: %v", err)
	}
}
