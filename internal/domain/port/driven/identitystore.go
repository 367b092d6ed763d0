// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"

	"github.com/pharmajava/timeclock/internal/domain/model"
)

// Sentinel errors returned by IdentityStore implementations.
var (
	// ErrUserNotFound indicates the referenced user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyName indicates a create or rename was attempted with a blank name.
	ErrEmptyName = errors.New("user name must not be empty")
)

// IdentityStore defines the driven port for user identity persistence.
// Implementations store an encrypted copy of the name next to the plaintext;
// the plaintext remains authoritative for reads.
type IdentityStore interface {
	// Create stores a new user and returns the store-assigned id.
	Create(ctx context.Context, name string) (int64, error)

	// Rename updates the user's name and recomputes its encrypted copy.
	// Returns ErrUserNotFound if the id does not exist. Renaming to the
	// current value is not an error.
	Rename(ctx context.Context, id int64, name string) error

	// Get returns the stored user, ciphertext included.
	// Returns ErrUserNotFound if the id does not exist.
	Get(ctx context.Context, id int64) (*model.User, error)
}
