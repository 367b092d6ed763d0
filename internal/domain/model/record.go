package model

// Timestamp layouts used in the persisted store. Entries and exits carry
// seconds; incidents do not. Existing store files depend on both layouts,
// so they are kept asymmetric.
const (
	EntryTimeLayout    = "02/01/2006 15:04:05"
	IncidentTimeLayout = "02/01/2006 15:04"
)

// PendingExit is the marker surfaced to callers in place of a NULL exit
// time on a record that is still open.
const PendingExit = "Pendiente"

// RecordView is an attendance record joined with the owning user's current
// name, with the exit time already rendered (PendingExit when the record
// is open).
type RecordView struct {
	Name      string
	EntryTime string
	ExitTime  string
}
