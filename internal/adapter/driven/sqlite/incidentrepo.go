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
var _ driven.IncidentStore = (*IncidentRepo)(nil)

// IncidentRepo is the SQLite implementation of the IncidentStore port interface.
type IncidentRepo struct {
	db *DB
}

// NewIncidentRepo creates a new IncidentRepo backed by the given DB.
func NewIncidentRepo(db *DB) *IncidentRepo {
	return &IncidentRepo{db: db}
}

// Log inserts an incident for the user and closes the user's open record
// with the same timestamp, in a single transaction. Returns
// driven.ErrNoOpenRecord without inserting anything if no open record exists.
func (r *IncidentRepo) Log(ctx context.Context, userID int64, incidentTime string) (int64, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op.

	var recordID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM records WHERE user_id = ? AND exit_time IS NULL`, userID,
	).Scan(&recordID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, driven.ErrNoOpenRecord
	}
	if err != nil {
		return 0, fmt.Errorf("find open record for user %d: %w", userID, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO incidents (user_id, incident_time) VALUES (?, ?)`, userID, incidentTime,
	)
	if err != nil {
		return 0, fmt.Errorf("insert incident for user %d: %w", userID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("incident insert id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE records SET exit_time = ? WHERE id = ?`, incidentTime, recordID,
	); err != nil {
		return 0, fmt.Errorf("close record %d: %w", recordID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit incident for user %d: %w", userID, err)
	}
	return id, nil
}

// All returns every incident in store order, joined with each owning user's
// current name, for export.
func (r *IncidentRepo) All(ctx context.Context) ([]model.IncidentView, error) {
	const query = `
		SELECT u.name, i.incident_time
		FROM incidents i
		JOIN users u ON i.user_id = u.id
	`
	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query incidents: %w", err)
	}
	defer rows.Close()

	var views []model.IncidentView
	for rows.Next() {
		var v model.IncidentView
		if err := rows.Scan(&v.Name, &v.IncidentTime); err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incidents: %w", err)
	}

	return views, nil
}
