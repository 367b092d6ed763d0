package driven

import (
	"context"

	"github.com/pharmajava/timeclock/internal/domain/model"
)

// IncidentStore defines the driven port for incident persistence.
type IncidentStore interface {
	// Log inserts an incident for the user and closes the user's open record
	// with the same timestamp, atomically: either both writes land or neither.
	// Returns ErrNoOpenRecord if the user has no open record; no incident row
	// is inserted in that case.
	Log(ctx context.Context, userID int64, incidentTime string) (int64, error)

	// All returns every incident in store order, joined with each owning
	// user's current name, for export.
	All(ctx context.Context) ([]model.IncidentView, error)
}
