// Package storage defines the persistence interfaces for the bot.
//
// It provides a high-level abstraction for storing team channel ownership
// records and theme-idea submissions. Implementations of these interfaces
// (e.g., using bbolt) can be found in subpackages.
//
// # Error Types
//
// The package defines common error types used across storage implementations:
//   - ErrNotFound: Indicates a requested record is missing.
//   - ErrOwnershipExists: Indicates a conflict when inserting an ownership record.
package storage
