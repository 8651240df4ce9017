// Command churchctl runs maintenance tasks against the Cell Growth Hub database.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/config"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/database"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/export"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	exportChurchID uint64
	exportTable    string
	exportOut      string
)

var rootCmd = &cobra.Command{
	Use:   "churchctl",
	Short: "Maintenance commands for Cell Growth Hub",
	Long: `churchctl reads the same environment as the API server
(DB_DRIVER, DB_HOST, ... or a .env file) and works directly on the database.`,
	SilenceUsage: true,
}

// migrateCmd applies the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		return database.Migrate(db)
	},
}

// exportCmd writes one table of one church as CSV
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a table of one church as CSV",
	Long: `Export every row of a table that belongs to one church.

Available tables are listed by 'churchctl tables'. Output goes to stdout
unless --out is given.`,
	RunE: runExport,
}

// tablesCmd lists the exportable tables
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List exportable tables",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range export.TableNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

// schemaCmd prints the reference SQL schema
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the reference PostgreSQL schema",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), export.Schema)
	},
}

func init() {
	exportCmd.Flags().Uint64Var(&exportChurchID, "church", 0, "church id (required)")
	exportCmd.Flags().StringVar(&exportTable, "table", "", "table name (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
	_ = exportCmd.MarkFlagRequired("church")
	_ = exportCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(migrateCmd, exportCmd, tablesCmd, schemaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect() (*gorm.DB, error) {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	return database.Connect(cfg)
}

func runExport(cmd *cobra.Command, args []string) error {
	if _, ok := export.Lookup(exportTable); !ok {
		return fmt.Errorf("unknown table %q", exportTable)
	}

	db, err := connect()
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.NewExporter(db).Export(cmd.Context(), exportChurchID, exportTable, out); err != nil {
		return err
	}
	if exportOut != "" {
		slog.Info("table exported", "table", exportTable, "church_id", exportChurchID, "file", exportOut)
	}
	return nil
}
