package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pharmajava/timeclock/internal/domain/model"
	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.LedgerStore = (*RecordRepo)(nil)

// RecordRepo is the SQLite implementation of the LedgerStore port interface.
type RecordRepo struct {
	db *DB
}

// NewRecordRepo creates a new RecordRepo backed by the given DB.
func NewRecordRepo(db *DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// OpenEntry creates an open record for the user. The user existence check
// and the one-open-record check run in the same transaction as the insert.
func (r *RecordRepo) OpenEntry(ctx context.Context, userID int64, entryTime string) (int64, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op.

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, driven.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("check user %d: %w", userID, err)
	}

	var openID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM records WHERE user_id = ? AND exit_time IS NULL`, userID,
	).Scan(&openID)
	if err == nil {
		return 0, driven.ErrOpenRecordExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("check open record for user %d: %w", userID, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO records (user_id, entry_time) VALUES (?, ?)`, userID, entryTime,
	)
	if err != nil {
		return 0, fmt.Errorf("insert record for user %d: %w", userID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit entry for user %d: %w", userID, err)
	}
	return id, nil
}

// CloseEntry sets the exit time on the user's open record with the most
// recent entry time. Returns driven.ErrNoOpenRecord if none exists.
func (r *RecordRepo) CloseEntry(ctx context.Context, userID int64, exitTime string) (int64, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op.

	var recordID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id
		FROM records
		WHERE user_id = ? AND exit_time IS NULL
		ORDER BY entry_time DESC
		LIMIT 1
	`, userID).Scan(&recordID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, driven.ErrNoOpenRecord
	}
	if err != nil {
		return 0, fmt.Errorf("find open record for user %d: %w", userID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE records SET exit_time = ? WHERE id = ?`, exitTime, recordID,
	); err != nil {
		return 0, fmt.Errorf("close record %d: %w", recordID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit exit for user %d: %w", userID, err)
	}
	return recordID, nil
}

// Recent returns up to limit records ordered by entry time descending,
// joined with each owning user's current name. Open records surface the
// pending marker instead of a NULL exit time.
func (r *RecordRepo) Recent(ctx context.Context, limit int) ([]model.RecordView, error) {
	const query = `
		SELECT u.name, r.entry_time, r.exit_time
		FROM records r
		JOIN users u ON r.user_id = u.id
		ORDER BY r.entry_time DESC
		LIMIT ?
	`
	return r.queryViews(ctx, query, limit)
}

// All returns every record in store order, for export.
func (r *RecordRepo) All(ctx context.Context) ([]model.RecordView, error) {
	const query = `
		SELECT u.name, r.entry_time, r.exit_time
		FROM records r
		JOIN users u ON r.user_id = u.id
	`
	return r.queryViews(ctx, query)
}

func (r *RecordRepo) queryViews(ctx context.Context, query string, args ...any) ([]model.RecordView, error) {
	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var views []model.RecordView
	for rows.Next() {
		var v model.RecordView
		var exit sql.NullString
		if err := rows.Scan(&v.Name, &v.EntryTime, &exit); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if exit.Valid {
			v.ExitTime = exit.String
		} else {
			v.ExitTime = model.PendingExit
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return views, nil
}
