// Package bbolt provides the durable BoltDB-backed storefront store.
package bbolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	accountdomain "github.com/sableroast/storefront/internal/account/domain"
	cartdomain "github.com/sableroast/storefront/internal/cart/domain"
	"github.com/sableroast/storefront/internal/storage"
	"go.etcd.io/bbolt"
)

// Bucket names, one per persisted slot.
const (
	cartBucket      = "cart"
	savedCartBucket = "savedCart"
	usersBucket     = "users"
	sessionBucket   = "userSession"
)

// Each slot holds a single record under a fixed key.
var slotKey = []byte("current")

// Store provides a BoltDB-backed storefront store. It implements the durable
// scope of every storage interface.
//
// Records that fail to decode are treated as absent, so a corrupt blob reads
// as an empty cart or a missing session instead of an error.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetCart loads the cart lines. A missing or corrupt record reads as an
// empty cart.
func (s *Store) GetCart(ctx context.Context) ([]cartdomain.Line, error) {
	var lines []cartdomain.Line
	err := s.get(ctx, cartBucket, &lines)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return lines, nil
}

// PutCart persists the full cart line list.
func (s *Store) PutCart(ctx context.Context, lines []cartdomain.Line) error {
	if lines == nil {
		lines = []cartdomain.Line{}
	}
	return s.put(ctx, cartBucket, lines)
}

// DeleteCart removes the cart record.
func (s *Store) DeleteCart(ctx context.Context) error {
	return s.delete(ctx, cartBucket)
}

// GetSavedCart loads the saved-cart snapshot. Missing or corrupt records
// yield ErrNotFound.
func (s *Store) GetSavedCart(ctx context.Context) (cartdomain.SavedCart, error) {
	var saved cartdomain.SavedCart
	if err := s.get(ctx, savedCartBucket, &saved); err != nil {
		return cartdomain.SavedCart{}, err
	}
	return saved, nil
}

// PutSavedCart persists the saved-cart snapshot, overwriting any previous one.
func (s *Store) PutSavedCart(ctx context.Context, saved cartdomain.SavedCart) error {
	return s.put(ctx, savedCartBucket, saved)
}

// DeleteSavedCart removes the saved-cart snapshot.
func (s *Store) DeleteSavedCart(ctx context.Context) error {
	return s.delete(ctx, savedCartBucket)
}

// GetUsers loads the account list. A missing or corrupt record reads as an
// empty list.
func (s *Store) GetUsers(ctx context.Context) ([]accountdomain.User, error) {
	var users []accountdomain.User
	err := s.get(ctx, usersBucket, &users)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}

// PutUsers persists the full account list.
func (s *Store) PutUsers(ctx context.Context, users []accountdomain.User) error {
	if users == nil {
		users = []accountdomain.User{}
	}
	return s.put(ctx, usersBucket, users)
}

// GetSession loads the active session. Missing or corrupt records yield
// ErrNotFound.
func (s *Store) GetSession(ctx context.Context) (accountdomain.Session, error) {
	var session accountdomain.Session
	if err := s.get(ctx, sessionBucket, &session); err != nil {
		return accountdomain.Session{}, err
	}
	return session, nil
}

// PutSession persists the active session record.
func (s *Store) PutSession(ctx context.Context, session accountdomain.Session) error {
	return s.put(ctx, sessionBucket, session)
}

// DeleteSession removes the active session record.
func (s *Store) DeleteSession(ctx context.Context) error {
	return s.delete(ctx, sessionBucket)
}

func (s *Store) get(ctx context.Context, bucket string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("%s bucket is missing", bucket)
		}
		payload := b.Get(slotKey)
		if payload == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(payload, out); err != nil {
			// Fail open: unreadable records behave like absent ones.
			return storage.ErrNotFound
		}
		return nil
	})
}

func (s *Store) put(ctx context.Context, bucket string, record any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", bucket, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("%s bucket is missing", bucket)
		}
		return b.Put(slotKey, payload)
	})
}

func (s *Store) delete(ctx context.Context, bucket string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("%s bucket is missing", bucket)
		}
		return b.Delete(slotKey)
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{cartBucket, savedCartBucket, usersBucket, sessionBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
