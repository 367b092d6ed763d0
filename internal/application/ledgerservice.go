package application

import (
	"context"
	"time"

	"github.com/pharmajava/timeclock/internal/domain/model"
	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

// LedgerService registers entries and exits against the attendance ledger,
// stamping them with the host clock at second resolution.
type LedgerService struct {
	records driven.LedgerStore
	now     func() time.Time // Test seam; defaults to time.Now.
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(records driven.LedgerStore) *LedgerService {
	return &LedgerService{records: records, now: time.Now}
}

// RegisterEntry opens a record for the user at the current time.
// Returns driven.ErrUserNotFound for an unknown user and
// driven.ErrOpenRecordExists if the user is already clocked in.
func (s *LedgerService) RegisterEntry(ctx context.Context, userID int64) (int64, error) {
	return s.records.OpenEntry(ctx, userID, s.now().Format(model.EntryTimeLayout))
}

// RegisterExit closes the user's open record at the current time.
// Returns driven.ErrNoOpenRecord if the user is not clocked in.
func (s *LedgerService) RegisterExit(ctx context.Context, userID int64) (int64, error) {
	return s.records.CloseEntry(ctx, userID, s.now().Format(model.EntryTimeLayout))
}

// RecentRecords returns up to limit records, most recent entry first.
func (s *LedgerService) RecentRecords(ctx context.Context, limit int) ([]model.RecordView, error) {
	return s.records.Recent(ctx, limit)
}
