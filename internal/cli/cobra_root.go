package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"workhours/internal/config"
	"workhours/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	connect Connector
	session *Session
}

// NewRootCommand creates the root cobra command with global flags.
// connect is called once the configuration is loaded, before any subcommand runs.
func NewRootCommand(connect Connector) *RootCommand {
	root := &RootCommand{
		app:     NewApp(nil),
		connect: connect,
	}

	root.cmd = &cobra.Command{
		Use:   "wh",
		Short: "Track daily punches and the monthly overtime balance",
		Long: `Work hours (wh) records up to six clock punches per day, totals worked and break
time against an eight hour quota and carries the surplus or deficit from month to month.

EXAMPLES:
  wh punch 08:00 12:30 13:00 17:15        # Record today
  wh punch yesterday 08:30 16:45          # Record yesterday
  wh day                                  # Worked, break, time left and completion for today
  wh calc 08:00 12:30 13:00               # Total punches without storing them
  wh report 2024-03                       # Roll March forward and save its ending balance
  wh balance                              # Balance carried into and out of this month
  wh recompute 2024-01 2024-06            # Recompute a chain of months after editing old days
  wh export 2024-03 --format xlsx --out march.xlsx
  wh import march.json --watch            # Import and re-import whenever the file changes

CONFIGURATION:
  Configuration follows this priority order: flags > environment variables > config file > defaults
  The config file is read from WH_CONFIG or ~/.workhours/config.yaml.

  Storage Configuration:
    WH_STORAGE_BACKEND                     sqlite or postgres (default: sqlite)
    WH_DB_DIR                              Database directory (default: ~/.workhours)
    WH_DB_FILENAME                         Database filename (default: workhours.db)
    WH_PG_DSN                              PostgreSQL connection string
    WH_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    WH_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Application Configuration:
    WH_DISPLAY_WIDTH                       Report width (default: 100)
    WH_APP_TIMEOUT                         Command timeout (default: 60s)
    WH_APP_VERBOSE                         Enable verbose output (default: false)
    WH_ENV                                 development, testing or production
    WH_METRICS_TEXTFILE                    Write Prometheus metrics to this file after each command
    WH_EXPORT_DEFAULT_FORMAT               json, xlsx or pdf (default: json)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetArgs sets the arguments for testing
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetIO redirects command output and input for testing
func (r *RootCommand) SetIO(out io.Writer, in io.Reader) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(out)
	r.cmd.SetIn(in)
}

// Execute runs the root command, then writes metrics and closes storage
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if ferr := r.finish(); err == nil {
		err = ferr
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides WH_CONFIG)")

	// Storage configuration
	flags.String("backend", "", "Storage backend, sqlite or postgres (overrides WH_STORAGE_BACKEND)")
	flags.String("db-dir", "", "Database directory (overrides WH_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WH_DB_FILENAME)")
	flags.String("pg-dsn", "", "PostgreSQL connection string (overrides WH_PG_DSN)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WH_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WH_DB_WRITE_TIMEOUT)")

	// Application configuration
	flags.Int("width", 0, "Report width (overrides WH_DISPLAY_WIDTH)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides WH_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides WH_APP_VERBOSE)")
	flags.String("env", "", "Environment: development, testing or production (overrides WH_ENV)")
	flags.String("metrics-textfile", "", "Prometheus textfile path (overrides WH_METRICS_TEXTFILE)")
	flags.String("export-format", "", "Default export format (overrides WH_EXPORT_DEFAULT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	punchCmd := &cobra.Command{
		Use:   "punch [day] HH:MM [HH:MM...]",
		Short: "Record the punches of a day",
		Long: `Record up to six punches for a day, replacing what was stored before.

Punches are positional: start, stop, start, stop, start, stop.
The day defaults to today and accepts today, yesterday, Nd (days ago) or YYYY-MM-DD.`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func() Command { return NewPunchCommand(r.app) }),
	}

	dayCmd := &cobra.Command{
		Use:   "day [day]",
		Short: "Show the summary of a day",
		Args:  cobra.MaximumNArgs(1),
		RunE:  r.run(func() Command { return NewDayCommand(r.app) }),
	}

	listCmd := &cobra.Command{
		Use:   "list [YYYY-MM]",
		Short: "List the recorded days of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE:  r.run(func() Command { return NewListCommand(r.app) }),
	}

	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete-day <day>",
		Short: "Delete the punches of a day",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func() Command { return NewDeleteCommand(r.app).WithForce(force) }),
	}
	deleteCmd.Flags().BoolVarP(&force, "yes", "y", false, "Delete without asking")

	calcCmd := &cobra.Command{
		Use:   "calc HH:MM [HH:MM...]",
		Short: "Total punches without storing them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run(func() Command { return NewCalcCommand(r.app) }),
	}

	var noSave bool
	reportCmd := &cobra.Command{
		Use:   "report [YYYY-MM]",
		Short: "Roll a month forward and show the running balance",
		Long: `Roll a month forward from the previous month's saved balance.

The ending balance is saved unless --no-save is given. Months are never recomputed
automatically; after editing an earlier month run wh recompute.`,
		Args: cobra.MaximumNArgs(1),
		RunE: r.run(func() Command { return NewReportCommand(r.app).WithPersist(!noSave) }),
	}
	reportCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not save the ending balance")

	var all bool
	balanceCmd := &cobra.Command{
		Use:   "balance [YYYY-MM]",
		Short: "Show the balance carried into and out of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE:  r.run(func() Command { return NewBalanceCommand(r.app).WithAll(all) }),
	}
	balanceCmd.Flags().BoolVar(&all, "all", false, "List every saved balance")

	recomputeCmd := &cobra.Command{
		Use:   "recompute <from YYYY-MM> <to YYYY-MM>",
		Short: "Recompute and save a chain of months",
		Args:  cobra.ExactArgs(2),
		RunE:  r.run(func() Command { return NewRecomputeCommand(r.app) }),
	}

	var format, out string
	exportCmd := &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Export a month as json, xlsx or pdf",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.run(func() Command {
			return NewExportCommand(r.app).WithFormat(format).WithOutput(out)
		}),
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "", "json, xlsx or pdf (default from configuration)")
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (json only may go to standard output)")

	var watchFile bool
	importCmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a json report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewImportCommand(r.app).WithWatch(watchFile)
			if !watchFile {
				return r.run(func() Command { return handler })(cmd, args)
			}
			// Watching runs until interrupted rather than until the command timeout
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return handler.Execute(ctx, args)
		},
	}
	importCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "Re-import whenever the file is written")

	r.cmd.AddCommand(
		punchCmd,
		dayCmd,
		listCmd,
		deleteCmd,
		calcCmd,
		reportCmd,
		balanceCmd,
		recomputeCmd,
		exportCmd,
		importCmd,
	)
}

// run adapts a command handler to cobra, bounding it by the application timeout
func (r *RootCommand) run(build func() Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
		defer cancel()
		return build().Execute(ctx, args)
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app.config != nil && r.app.config.Application.Timeout > 0 {
		return r.app.config.Application.Timeout
	}
	return 60 * time.Second
}

// setup loads the configuration, applies flag overrides and opens the session
func (r *RootCommand) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loader := config.NewLoader()
	if path, _ := r.cmd.PersistentFlags().GetString("config"); path != "" {
		loader.WithFile(path)
	}
	cfg, err := loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logging.SetVerbose(cfg.Application.Verbose)
	r.app.config = cfg
	r.app.SetIO(r.cmd.OutOrStdout(), r.cmd.InOrStdin())

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Application.Timeout)
	defer cancel()
	session, err := r.connect(connectCtx, cfg)
	if err != nil {
		return NewErrorHandler().Handle("open storage", err)
	}
	r.session = session
	r.app.businessAPI = session.API
	r.app.metrics = session.Metrics
	return nil
}

// finish writes the metrics textfile and closes the session
func (r *RootCommand) finish() error {
	if r.session == nil {
		return nil
	}
	var err error
	if r.app.config != nil && r.app.config.Metrics.Textfile != "" {
		if werr := r.session.Metrics.WriteTextfile(r.app.config.Metrics.Textfile); werr != nil {
			logging.Warnf("write metrics textfile: %v", werr)
		}
	}
	if r.session.Close != nil {
		err = r.session.Close()
	}
	r.session = nil
	return err
}

// getOverridesFromFlags collects the global flags that were set explicitly
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	// Storage configuration
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("pg-dsn") {
		v, _ := flags.GetString("pg-dsn")
		overrides.PostgresDSN = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}

	// Application configuration
	if flags.Changed("width") {
		v, _ := flags.GetInt("width")
		overrides.Width = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("env") {
		v, _ := flags.GetString("env")
		overrides.Environment = &v
	}
	if flags.Changed("metrics-textfile") {
		v, _ := flags.GetString("metrics-textfile")
		overrides.MetricsTextfile = &v
	}
	if flags.Changed("export-format") {
		v, _ := flags.GetString("export-format")
		overrides.ExportFormat = &v
	}

	return overrides
}
