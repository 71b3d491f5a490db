// Package storage defines the persistence interfaces for the storefront.
//
// It provides a high-level abstraction for storing the cart, the saved-cart
// snapshot, the account list, and the active session. Implementations of
// these interfaces (bbolt for durable state, memory for tab-lifetime state)
// live in subpackages.
//
// All stores follow a whole-blob read-modify-write contract: collections are
// loaded and stored as single records, and the last writer wins.
//
// # Error Types
//
//   - ErrNotFound: Indicates a requested record is missing.
//
// Drivers treat records that fail to decode the same as absent records. This
// fail-open policy favors availability: a corrupt cart reads as an empty
// cart rather than an error.
package storage
