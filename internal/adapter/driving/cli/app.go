package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pharmajava/timeclock/internal/application"
)

// recentLimit is how many records the listing shows after each mutation.
const recentLimit = 10

// Backuper copies the persisted store into a directory and returns the
// backup path. Satisfied by the sqlite DB.
type Backuper interface {
	BackupTo(dir string) (string, error)
}

// App wires the interactive command loop to the application services.
type App struct {
	gate      *application.Gate
	identity  *application.IdentityService
	ledger    *application.LedgerService
	incidents *application.IncidentService
	export    *application.ExportService
	backup    Backuper
	backupDir string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp creates a new App reading from stdin and writing to stdout.
func NewApp(
	gate *application.Gate,
	identity *application.IdentityService,
	ledger *application.LedgerService,
	incidents *application.IncidentService,
	export *application.ExportService,
	backup Backuper,
	backupDir string,
) *App {
	return &App{
		gate:      gate,
		identity:  identity,
		ledger:    ledger,
		incidents: incidents,
		export:    export,
		backup:    backup,
		backupDir: backupDir,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

// Run starts the command loop. It returns when the user quits, on EOF, or
// when ctx is cancelled between commands.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "timeclock (type 'help' for commands)")
	a.showRecent(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := promptLine(a.reader, a.out, "\ncommand")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "help":
			a.printHelp()
		case "adduser":
			a.addUser(ctx)
		case "renameuser":
			a.renameUser(ctx)
		case "clockin":
			a.clockIn(ctx)
		case "clockout":
			a.clockOut(ctx)
		case "incident":
			a.logIncident(ctx)
		case "recent":
			a.showRecent(ctx)
		case "export":
			a.exportAll(ctx)
		case "backup":
			a.backupStore()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", line)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Available commands:
  adduser     create a user (admin)
  renameuser  change a user's name (admin)
  clockin     register an entry for a user
  clockout    register an exit for a user
  incident    log an incident and close the open entry
  recent      show the last 10 records
  export      export everything to a spreadsheet (admin)
  backup      copy the store file
  exit        quit`)
}

// authorize prompts for the administrator secret and checks it against the
// gate. On mismatch it reports access denied and returns false.
func (a *App) authorize() bool {
	secret, err := promptSecret(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return false
	}
	if !a.gate.Verify(secret) {
		fmt.Fprintln(a.out, "Access denied: incorrect administrator secret")
		return false
	}
	return true
}
