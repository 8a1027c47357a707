package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/iksnae/cursor-chat-export/internal/export"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dbPath  string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-chat-export",
	Short: "Export Cursor IDE chat history",
	Long: `Read Cursor's local chat-history database and convert it into
Markdown or HTML files, other structured formats, or an interactive
terminal browser.

The database is opened read-only; nothing is ever written back to it.

Quick Start:
  cursor-chat-export markdown              # Export all chats as Markdown
  cursor-chat-export html --out-dir ./out  # Export as styled HTML
  cursor-chat-export ui                    # Browse chats interactively

The database location is resolved from --db-path, the CURSOR_CHAT_DB_PATH
environment variable, or the OS default, in that order.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to Cursor's state.vscdb (defaults to the OS-specific location)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadSessions runs the read-parse-build pipeline against the resolved
// database. When dumpDir is non-empty, every raw row is also written there as
// pretty-printed JSON before parsing.
func loadSessions(dumpDir string) ([]*internal.Session, error) {
	path, err := internal.ResolveDatabasePath(dbPath)
	if err != nil {
		return nil, err
	}
	internal.LogDebug("using database %s", path)

	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	store := internal.NewStore(db)

	if dumpDir != "" {
		rows, err := store.Rows()
		if err != nil {
			return nil, err
		}
		count, err := internal.DumpRawRows(rows, dumpDir)
		if err != nil {
			return nil, err
		}
		internal.LogInfo("dumped %d raw row(s) to %s", count, dumpDir)
	}

	return store.Sessions()
}

// runExport is the shared body of the markdown and html commands.
func runExport(format, outDir, dumpDir string) error {
	sessions, err := loadSessions(dumpDir)
	if err != nil {
		return err
	}

	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	count, err := export.WriteSessions(sessions, exporter, outDir)
	if err != nil {
		return err
	}

	internal.PrintSuccess(fmt.Sprintf("Exported %d chat(s) to %s", count, outDir))
	return nil
}
