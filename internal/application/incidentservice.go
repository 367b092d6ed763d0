package application

import (
	"context"
	"errors"
	"time"

	"github.com/pharmajava/timeclock/internal/domain/model"
	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

// ErrBadIncidentTime indicates an incident timestamp that does not match the
// dd/mm/yyyy HH:MM layout.
var ErrBadIncidentTime = errors.New("invalid incident time, use dd/mm/yyyy HH:MM")

// IncidentService logs incidents. Logging an incident force-closes the
// user's open record with the incident timestamp.
type IncidentService struct {
	incidents driven.IncidentStore
}

// NewIncidentService creates a new IncidentService.
func NewIncidentService(incidents driven.IncidentStore) *IncidentService {
	return &IncidentService{incidents: incidents}
}

// RegisterIncident validates incidentTime and logs the incident. The store
// is not touched when validation fails. Returns driven.ErrNoOpenRecord if
// the user has no open record.
func (s *IncidentService) RegisterIncident(ctx context.Context, userID int64, incidentTime string) (int64, error) {
	if _, err := time.Parse(model.IncidentTimeLayout, incidentTime); err != nil {
		return 0, ErrBadIncidentTime
	}
	return s.incidents.Log(ctx, userID, incidentTime)
}
