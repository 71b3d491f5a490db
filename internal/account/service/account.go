// Package service implements registration, login, session lookup, and
// profile updates over the storage interfaces.
package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"time"

	"github.com/sableroast/storefront/internal/account/domain"
	"github.com/sableroast/storefront/internal/platform/errors"
	"github.com/sableroast/storefront/internal/storage"
)

// Demo account seeded on startup so the storefront is usable out of the box.
const (
	demoEmail    = "demo@coffee.com"
	demoPassword = "demo123"
	demoName     = "Demo User"
	demoPhone    = "081234567890"
)

// Stores groups all account-related storage interfaces. Sessions live in one
// of two scopes: the durable store survives restarts, the ephemeral store
// lasts for the process lifetime.
type Stores struct {
	Users            storage.UserStore
	DurableSession   storage.SessionStore
	EphemeralSession storage.SessionStore
}

// AccountService manages accounts and the active session.
type AccountService struct {
	stores      Stores
	verifier    domain.CredentialVerifier
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewAccountService creates an AccountService with default dependencies.
// Passwords are stored as plaintext unless a different verifier is set with
// WithVerifier.
func NewAccountService(stores Stores) *AccountService {
	return &AccountService{
		stores:      stores,
		verifier:    domain.PlaintextCredentials{},
		clock:       time.Now,
		idGenerator: domain.NewID,
	}
}

// WithVerifier replaces the credential verifier and returns the service.
func (s *AccountService) WithVerifier(verifier domain.CredentialVerifier) *AccountService {
	s.verifier = verifier
	return s
}

// Register creates a new account. The email must not already be registered;
// the match is exact, so addresses differing only in case are distinct
// accounts. The new account always gets the customer role.
func (s *AccountService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if s.stores.Users == nil {
		return domain.User{}, fmt.Errorf("user store is not configured")
	}
	if err := reg.Validate(); err != nil {
		return domain.User{}, err
	}

	users, err := s.stores.Users.GetUsers(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load accounts: %w", err)
	}
	for _, u := range users {
		if u.Email == reg.Email {
			return domain.User{}, errors.New(errors.CodeAccountEmailTaken, "email is already registered")
		}
	}

	id, err := s.idGenerator()
	if err != nil {
		return domain.User{}, fmt.Errorf("generate account id: %w", err)
	}
	stored, err := s.verifier.Hash(reg.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("store credentials: %w", err)
	}

	user := domain.User{
		ID:        id,
		FullName:  reg.FullName,
		Email:     reg.Email,
		Phone:     reg.Phone,
		Password:  stored,
		Role:      domain.RoleCustomer,
		CreatedAt: s.clock(),
	}

	users = append(users, user)
	if err := s.stores.Users.PutUsers(ctx, users); err != nil {
		return domain.User{}, fmt.Errorf("save accounts: %w", err)
	}

	log.Printf("account registered: %s", user.Email)
	return user, nil
}

// Login authenticates the user and writes a session into the durable scope
// when remember is set, the ephemeral scope otherwise. An unknown email and
// a wrong password carry distinct messages but the same error code.
func (s *AccountService) Login(ctx context.Context, email, password string, remember bool) (domain.Session, error) {
	if err := domain.ValidateLogin(email, password); err != nil {
		return domain.Session{}, err
	}

	users, err := s.stores.Users.GetUsers(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load accounts: %w", err)
	}

	var user domain.User
	found := false
	for _, u := range users {
		if u.Email == email {
			user = u
			found = true
			break
		}
	}
	if !found {
		return domain.Session{}, errors.New(errors.CodeAccountInvalidCredentials, "email is not registered")
	}
	if !s.verifier.Verify(user.Password, password) {
		return domain.Session{}, errors.New(errors.CodeAccountInvalidCredentials, "incorrect password")
	}

	session := domain.SessionFor(user, s.clock())

	store := s.stores.EphemeralSession
	if remember {
		store = s.stores.DurableSession
	}
	if store == nil {
		return domain.Session{}, fmt.Errorf("session store is not configured")
	}
	if err := store.PutSession(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	log.Printf("user logged in: %s", session.Email)
	return session, nil
}

// CurrentSession returns the active session, checking the durable scope
// before the ephemeral one. Missing and unreadable records both read as
// absent.
func (s *AccountService) CurrentSession(ctx context.Context) (domain.Session, bool, error) {
	for _, store := range []storage.SessionStore{s.stores.DurableSession, s.stores.EphemeralSession} {
		if store == nil {
			continue
		}
		session, err := store.GetSession(ctx)
		if err == nil {
			return session, true, nil
		}
		if !stderrors.Is(err, storage.ErrNotFound) {
			return domain.Session{}, false, fmt.Errorf("load session: %w", err)
		}
	}
	return domain.Session{}, false, nil
}

// Logout removes the session from both scopes unconditionally.
func (s *AccountService) Logout(ctx context.Context) error {
	for _, store := range []storage.SessionStore{s.stores.DurableSession, s.stores.EphemeralSession} {
		if store == nil {
			continue
		}
		if err := store.DeleteSession(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}

// UserByID returns the account with the given id.
func (s *AccountService) UserByID(ctx context.Context, id string) (domain.User, error) {
	users, err := s.stores.Users.GetUsers(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load accounts: %w", err)
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, errors.New(errors.CodeNotFound, "account not found")
}

// UpdateProfile merges the update into the matching account, stamps the
// update time, and mirrors the change into the active session when the
// updated account owns it. The session stays in whichever scope holds it.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (domain.User, error) {
	users, err := s.stores.Users.GetUsers(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load accounts: %w", err)
	}

	idx := -1
	for i, u := range users {
		if u.ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.User{}, errors.New(errors.CodeNotFound, "account not found")
	}

	users[idx] = update.Apply(users[idx], s.clock())
	if err := s.stores.Users.PutUsers(ctx, users); err != nil {
		return domain.User{}, fmt.Errorf("save accounts: %w", err)
	}

	if err := s.mirrorSession(ctx, users[idx]); err != nil {
		return domain.User{}, err
	}
	return users[idx], nil
}

// mirrorSession refreshes the active session record after a profile change,
// in whichever scope currently holds the session.
func (s *AccountService) mirrorSession(ctx context.Context, user domain.User) error {
	for _, store := range []storage.SessionStore{s.stores.DurableSession, s.stores.EphemeralSession} {
		if store == nil {
			continue
		}
		session, err := store.GetSession(ctx)
		if err != nil {
			if stderrors.Is(err, storage.ErrNotFound) {
				continue
			}
			return fmt.Errorf("load session: %w", err)
		}
		if session.UserID != user.ID {
			continue
		}
		session.FullName = user.FullName
		session.Email = user.Email
		if err := store.PutSession(ctx, session); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	return nil
}

// EnsureDemoAccount seeds the demo account when it is not registered yet.
func (s *AccountService) EnsureDemoAccount(ctx context.Context) error {
	users, err := s.stores.Users.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	for _, u := range users {
		if u.Email == demoEmail {
			return nil
		}
	}

	id, err := s.idGenerator()
	if err != nil {
		return fmt.Errorf("generate account id: %w", err)
	}
	stored, err := s.verifier.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}

	users = append(users, domain.User{
		ID:        id,
		FullName:  demoName,
		Email:     demoEmail,
		Phone:     demoPhone,
		Password:  stored,
		Role:      domain.RoleCustomer,
		CreatedAt: s.clock(),
	})
	if err := s.stores.Users.PutUsers(ctx, users); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	log.Printf("demo account created: %s", demoEmail)
	return nil
}
