package driven

import (
	"context"

	"github.com/pharmajava/timeclock/internal/domain/model"
)

// Exporter defines the driven port for rendering the full ledger into an
// external tabular file. Returns the path of the file it wrote.
type Exporter interface {
	Export(ctx context.Context, records []model.RecordView, incidents []model.IncidentView) (string, error)
}
