package cli

import (
	"bytes"
	"context"
	"os"

	"github.com/dustin/go-humanize"

	"workhours/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
	format       string
	outPath      string
}

// NewExportCommand creates a new export command handler using the configured default format
func NewExportCommand(app *App) *ExportCommand {
	format := "json"
	if app.config != nil && app.config.Export.DefaultFormat != "" {
		format = app.config.Export.DefaultFormat
	}
	return &ExportCommand{app: app, errorHandler: NewErrorHandler(), format: format}
}

// WithFormat overrides the export format when set
func (c *ExportCommand) WithFormat(format string) *ExportCommand {
	if format != "" {
		c.format = format
	}
	return c
}

// WithOutput writes to path instead of standard output
func (c *ExportCommand) WithOutput(path string) *ExportCommand {
	c.outPath = path
	return c
}

// Execute runs the export command: [YYYY-MM]
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "export", "usage: wh export [YYYY-MM] --format json|xlsx|pdf --out file")
	}
	periodArg := ""
	if len(args) == 1 {
		periodArg = args[0]
	}
	if c.outPath == "" && c.format != "json" {
		return errors.NewInvalidInputError("out", "", "binary formats need --out")
	}

	// The file is written only after rendering succeeds
	var buf bytes.Buffer
	result, err := c.app.businessAPI.ExportReport(ctx, periodArg, c.format, &buf)
	if err != nil {
		return c.errorHandler.Handle("export report", err)
	}

	if c.outPath == "" {
		_, err := c.app.out.Write(buf.Bytes())
		if err == nil {
			c.app.println()
		}
		return err
	}

	if err := os.WriteFile(c.outPath, buf.Bytes(), 0o644); err != nil {
		return c.errorHandler.Handle("write export", err)
	}
	c.app.printf("Exported %d days of %s to %s (%s, %s)\n", result.Rows, result.Report.Period.Label(),
		c.outPath, result.Format, humanize.Bytes(uint64(buf.Len())))
	return nil
}
