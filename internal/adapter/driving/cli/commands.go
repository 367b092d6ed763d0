package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

func (a *App) addUser(ctx context.Context) {
	if !a.authorize() {
		return
	}

	name, err := promptLine(a.reader, a.out, "Name")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	id, err := a.identity.CreateUser(ctx, name)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "User created: %s - ID: %d\n", name, id)
	a.showRecent(ctx)
}

func (a *App) renameUser(ctx context.Context) {
	if !a.authorize() {
		return
	}

	id, err := promptUserID(a.reader, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	current, err := a.identity.GetUserName(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	newName, err := promptLine(a.reader, a.out, fmt.Sprintf("Current name: %s\nNew name", current))
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	if err := a.identity.ModifyUser(ctx, id, newName); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "User ID %d renamed to: %s\n", id, newName)
	a.showRecent(ctx)
}

func (a *App) clockIn(ctx context.Context) {
	id, err := promptUserID(a.reader, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	if _, err := a.ledger.RegisterEntry(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Entry registered for ID %d\n", id)
	a.showRecent(ctx)
}

func (a *App) clockOut(ctx context.Context) {
	id, err := promptUserID(a.reader, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	_, err = a.ledger.RegisterExit(ctx, id)
	switch {
	case errors.Is(err, driven.ErrNoOpenRecord):
		fmt.Fprintf(a.out, "Warning: no pending entry for ID %d\n", id)
	case err != nil:
		fmt.Fprintln(a.out, "Error:", err)
		return
	default:
		fmt.Fprintf(a.out, "Exit registered for ID %d\n", id)
	}
	a.showRecent(ctx)
}

func (a *App) logIncident(ctx context.Context) {
	id, err := promptUserID(a.reader, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	when, err := promptLine(a.reader, a.out, "Incident date and time (dd/mm/yyyy HH:MM)")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	_, err = a.incidents.RegisterIncident(ctx, id, when)
	switch {
	case errors.Is(err, driven.ErrNoOpenRecord):
		fmt.Fprintf(a.out, "Warning: no pending entry for ID %d\n", id)
	case err != nil:
		fmt.Fprintln(a.out, "Error:", err)
		return
	default:
		fmt.Fprintf(a.out, "Incident registered for ID %d\n", id)
	}
	a.showRecent(ctx)
}

func (a *App) showRecent(ctx context.Context) {
	views, err := a.ledger.RecentRecords(ctx, recentLimit)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	for _, v := range views {
		fmt.Fprintf(a.out, "Name: %s\nEntry: %s\nExit: %s\n\n", v.Name, v.EntryTime, v.ExitTime)
	}
}

func (a *App) exportAll(ctx context.Context) {
	if !a.authorize() {
		return
	}

	path, err := a.export.Export(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Data exported to", path)
}

func (a *App) backupStore() {
	path, err := a.backup.BackupTo(a.backupDir)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Backup created:", path)
}
