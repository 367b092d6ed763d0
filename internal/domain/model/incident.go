package model

// IncidentView is an incident joined with the owning user's current name.
// Logging an incident force-closes the user's open attendance record with
// the same timestamp.
type IncidentView struct {
	Name         string
	IncidentTime string
}
