// Package xlsx renders the ledger and incident log into a two-sheet workbook.
package xlsx

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pharmajava/timeclock/internal/domain/model"
	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter writes registros_<ddmmyyyy_hhmmss>.xlsx files into dir with a
// "Registros" sheet for attendance records and an "Incidencias" sheet for
// incidents.
type Exporter struct {
	dir string
	now func() time.Time // Test seam; defaults to time.Now.
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// Export writes the workbook and returns its path.
func (e *Exporter) Export(ctx context.Context, records []model.RecordView, incidents []model.IncidentView) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const recordSheet = "Registros"
	const incidentSheet = "Incidencias"

	if err := f.SetSheetName("Sheet1", recordSheet); err != nil {
		return "", fmt.Errorf("rename record sheet: %w", err)
	}
	if err := f.SetSheetRow(recordSheet, "A1", &[]any{"Nombre", "Hora Entrada", "Hora Salida"}); err != nil {
		return "", fmt.Errorf("write record header: %w", err)
	}
	for i, r := range records {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(recordSheet, cell, &[]any{r.Name, r.EntryTime, r.ExitTime}); err != nil {
			return "", fmt.Errorf("write record row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(incidentSheet); err != nil {
		return "", fmt.Errorf("create incident sheet: %w", err)
	}
	if err := f.SetSheetRow(incidentSheet, "A1", &[]any{"Nombre", "Fecha Incidencia"}); err != nil {
		return "", fmt.Errorf("write incident header: %w", err)
	}
	for i, inc := range incidents {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(incidentSheet, cell, &[]any{inc.Name, inc.IncidentTime}); err != nil {
			return "", fmt.Errorf("write incident row %d: %w", i+1, err)
		}
	}

	name := fmt.Sprintf("registros_%s.xlsx", e.now().Format("02012006_150405"))
	path := filepath.Join(e.dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	return path, nil
}
