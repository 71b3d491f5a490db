package storage

import (
	"context"
	"errors"

	accountdomain "github.com/sableroast/storefront/internal/account/domain"
	cartdomain "github.com/sableroast/storefront/internal/cart/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// CartStore persists the cart as a whole blob. Every mutation rewrites the
// full line list; there are no per-line deltas.
type CartStore interface {
	GetCart(ctx context.Context) ([]cartdomain.Line, error)
	PutCart(ctx context.Context, lines []cartdomain.Line) error
	DeleteCart(ctx context.Context) error
}

// SavedCartStore persists the single saved-cart snapshot slot.
type SavedCartStore interface {
	GetSavedCart(ctx context.Context) (cartdomain.SavedCart, error)
	PutSavedCart(ctx context.Context, saved cartdomain.SavedCart) error
	DeleteSavedCart(ctx context.Context) error
}

// UserStore persists the account list as a whole blob.
type UserStore interface {
	GetUsers(ctx context.Context) ([]accountdomain.User, error)
	PutUsers(ctx context.Context, users []accountdomain.User) error
}

// SessionStore persists at most one active session record.
type SessionStore interface {
	GetSession(ctx context.Context) (accountdomain.Session, error)
	PutSession(ctx context.Context, session accountdomain.Session) error
	DeleteSession(ctx context.Context) error
}
