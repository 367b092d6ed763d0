package driven

import (
	"context"
	"errors"

	"github.com/pharmajava/timeclock/internal/domain/model"
)

// Sentinel errors returned by LedgerStore and IncidentStore implementations.
var (
	// ErrOpenRecordExists indicates the user already has an open record;
	// a second entry may not be registered before an exit.
	ErrOpenRecordExists = errors.New("an open entry already exists for this user")

	// ErrNoOpenRecord indicates no open record exists for the user. Callers
	// treat this as a warning rather than a failure: the ledger is in an
	// expected state, there is just nothing to close.
	ErrNoOpenRecord = errors.New("no pending entry for this user")
)

// LedgerStore defines the driven port for attendance record persistence.
// The store upholds the invariant that each user has at most one open record.
type LedgerStore interface {
	// OpenEntry creates an open record for the user with the given entry time.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrOpenRecordExists if an open record is already present.
	OpenEntry(ctx context.Context, userID int64, entryTime string) (int64, error)

	// CloseEntry sets the exit time on the user's open record with the most
	// recent entry time. Returns ErrNoOpenRecord if none exists, otherwise
	// the id of the record that was closed.
	CloseEntry(ctx context.Context, userID int64, exitTime string) (int64, error)

	// Recent returns up to limit records ordered by entry time descending,
	// joined with each owning user's current name.
	Recent(ctx context.Context, limit int) ([]model.RecordView, error)

	// All returns every record in store order, for export.
	All(ctx context.Context) ([]model.RecordView, error)
}
