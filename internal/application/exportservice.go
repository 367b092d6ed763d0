package application

import (
	"context"

	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

// ExportService projects the full ledger and incident log through the
// exporter port. Callers must pass the access gate first.
type ExportService struct {
	records   driven.LedgerStore
	incidents driven.IncidentStore
	exporter  driven.Exporter
}

// NewExportService creates a new ExportService.
func NewExportService(records driven.LedgerStore, incidents driven.IncidentStore, exporter driven.Exporter) *ExportService {
	return &ExportService{records: records, incidents: incidents, exporter: exporter}
}

// Export collects all records and incidents and writes them through the
// exporter. Returns the path of the written file.
func (s *ExportService) Export(ctx context.Context) (string, error) {
	records, err := s.records.All(ctx)
	if err != nil {
		return "", err
	}

	incidents, err := s.incidents.All(ctx)
	if err != nil {
		return "", err
	}

	return s.exporter.Export(ctx, records, incidents)
}
