package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// Флаги верхнего уровня; перекрывают значения из окружения.
type options struct {
	driver   string
	dbPath   string
	logLevel string
	noSeed   bool

	jsonOutput bool
	logRows    bool
	metrics    bool

	page     int
	pageSize int
}

var opts options

// Execute запускает корневую команду
func Execute(ctx context.Context, version string) error {
	return newRootCommand(version).ExecuteContext(ctx)
}

func newRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crm",
		Short: "Minimal CRM relational store",
		Long: `crm manages a small CRM database: entities (customers and staff),
contacts, deals, interactions, orders, support tickets and access levels.

The database is sqlite in memory by default. Use --db with a file path to keep
data between runs, or CRM_DATABASE__DRIVER=postgres with the CRM_DATABASE__*
variables to use postgres. The schema and sample rows are created on first use.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.driver, "driver", "", "database driver: sqlite or postgres")
	flags.StringVar(&opts.dbPath, "db", "", "sqlite path, :memory: for a temporary database")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.noSeed, "no-seed", false, "do not insert sample rows into a new database")
	flags.BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	flags.BoolVar(&opts.logRows, "log-rows", false, "include result rows in the operation log")
	flags.BoolVar(&opts.metrics, "metrics", false, "print operation counters after the command")
	flags.IntVar(&opts.page, "page", 1, "page of list output")
	flags.IntVar(&opts.pageSize, "page-size", 50, "rows per page, 0 for all")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newEntityCommand())
	rootCmd.AddCommand(newInteractionCommand())
	rootCmd.AddCommand(newContactCommand())
	rootCmd.AddCommand(newDealCommand())
	rootCmd.AddCommand(newOrderCommand())
	rootCmd.AddCommand(newTicketCommand())
	rootCmd.AddCommand(newAccessCommand())

	return rootCmd
}
