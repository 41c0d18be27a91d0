package cli

import (
	"bytes"
	"context"
	"os"

	"github.com/dustin/go-humanize"

	"workhours/internal/errors"
	"workhours/internal/logging"
	"workhours/internal/services"
	"workhours/internal/watch"
)

// ImportCommand handles the import command
type ImportCommand struct {
	app          *App
	errorHandler *ErrorHandler
	watchFile    bool
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{app: app, errorHandler: NewErrorHandler()}
}

// WithWatch keeps re-importing the file whenever it is written
func (c *ImportCommand) WithWatch(watchFile bool) *ImportCommand {
	c.watchFile = watchFile
	return c
}

// Execute runs the import command: <file.json>
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "import", "usage: wh import <file.json> [--watch]")
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return c.errorHandler.Handle("read import file", err)
	}
	logging.Debugf("importing %s (%s)", path, humanize.Bytes(uint64(len(data))))
	if err := c.importData(ctx, data); err != nil {
		return err
	}

	if !c.watchFile {
		return nil
	}

	w, err := watch.New(path, c.importData, watch.Options{Metrics: c.app.metrics})
	if err != nil {
		return c.errorHandler.Handle("watch import file", err)
	}
	c.app.printf("Watching %s for changes, press Ctrl+C to stop\n", path)
	return w.Run(ctx)
}

func (c *ImportCommand) importData(ctx context.Context, data []byte) error {
	result, err := c.app.businessAPI.ImportReport(ctx, bytes.NewReader(data))
	if err != nil {
		return c.errorHandler.Handle("import report", err)
	}
	c.printResult(result)
	return nil
}

func (c *ImportCommand) printResult(result *services.ImportResult) {
	c.app.printf("Imported %d days, skipped %d empty, %d failed\n", result.Imported, result.Skipped, len(result.Failed))
	for _, f := range result.Failed {
		c.app.printf("  ! %s: %s\n", f.Day, f.Error)
	}
	if len(result.Periods) > 0 {
		c.app.printf("Run wh recompute %s %s to refresh balances\n",
			result.Periods[0].ISO(), result.Periods[len(result.Periods)-1].ISO())
	}
}
