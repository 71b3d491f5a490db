// Package memory provides an in-memory storefront store. It backs the
// ephemeral session scope and is also useful in tests and demo runs without
// a data directory.
package memory

import (
	"context"
	"sync"

	accountdomain "github.com/sableroast/storefront/internal/account/domain"
	cartdomain "github.com/sableroast/storefront/internal/cart/domain"
	"github.com/sableroast/storefront/internal/storage"
)

// Store holds all slots in process memory behind a single mutex. Contents
// vanish when the process exits.
type Store struct {
	mu sync.Mutex

	cart     []cartdomain.Line
	hasCart  bool
	saved    cartdomain.SavedCart
	hasSaved bool
	users    []accountdomain.User
	hasUsers bool
	session  accountdomain.Session
	hasSess  bool
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{}
}

// GetCart returns a copy of the cart lines. A missing record reads as an
// empty cart.
func (s *Store) GetCart(ctx context.Context) ([]cartdomain.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCart {
		return nil, nil
	}
	return append([]cartdomain.Line(nil), s.cart...), nil
}

// PutCart replaces the cart lines.
func (s *Store) PutCart(ctx context.Context, lines []cartdomain.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = append([]cartdomain.Line(nil), lines...)
	s.hasCart = true
	return nil
}

// DeleteCart removes the cart record.
func (s *Store) DeleteCart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.hasCart = false
	return nil
}

// GetSavedCart returns the saved-cart snapshot or ErrNotFound.
func (s *Store) GetSavedCart(ctx context.Context) (cartdomain.SavedCart, error) {
	if err := ctx.Err(); err != nil {
		return cartdomain.SavedCart{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSaved {
		return cartdomain.SavedCart{}, storage.ErrNotFound
	}
	out := s.saved
	out.Lines = append([]cartdomain.Line(nil), s.saved.Lines...)
	return out, nil
}

// PutSavedCart replaces the saved-cart snapshot.
func (s *Store) PutSavedCart(ctx context.Context, saved cartdomain.SavedCart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	saved.Lines = append([]cartdomain.Line(nil), saved.Lines...)
	s.saved = saved
	s.hasSaved = true
	return nil
}

// DeleteSavedCart removes the saved-cart snapshot.
func (s *Store) DeleteSavedCart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = cartdomain.SavedCart{}
	s.hasSaved = false
	return nil
}

// GetUsers returns a copy of the account list. A missing record reads as an
// empty list.
func (s *Store) GetUsers(ctx context.Context) ([]accountdomain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasUsers {
		return nil, nil
	}
	return append([]accountdomain.User(nil), s.users...), nil
}

// PutUsers replaces the account list.
func (s *Store) PutUsers(ctx context.Context, users []accountdomain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]accountdomain.User(nil), users...)
	s.hasUsers = true
	return nil
}

// GetSession returns the active session or ErrNotFound.
func (s *Store) GetSession(ctx context.Context) (accountdomain.Session, error) {
	if err := ctx.Err(); err != nil {
		return accountdomain.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSess {
		return accountdomain.Session{}, storage.ErrNotFound
	}
	return s.session, nil
}

// PutSession replaces the active session.
func (s *Store) PutSession(ctx context.Context, session accountdomain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.hasSess = true
	return nil
}

// DeleteSession removes the active session.
func (s *Store) DeleteSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = accountdomain.Session{}
	s.hasSess = false
	return nil
}
