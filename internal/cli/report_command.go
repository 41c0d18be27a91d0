package cli

import (
	"context"

	"workhours/internal/errors"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler
	persist      bool
}

// NewReportCommand creates a new report command handler that stores the ending balance
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app, errorHandler: NewErrorHandler(), persist: true}
}

// WithPersist controls whether the ending balance is stored
func (c *ReportCommand) WithPersist(persist bool) *ReportCommand {
	c.persist = persist
	return c
}

// Execute runs the report command: [YYYY-MM]
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "report", "usage: wh report [YYYY-MM] [--no-save]")
	}
	periodArg := ""
	if len(args) == 1 {
		periodArg = args[0]
	}

	report, err := c.app.businessAPI.MonthlyReport(ctx, periodArg, c.persist)
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}

	printReport(c.app.out, report, c.app.width())
	if !c.persist {
		c.app.println("(balance not saved)")
	}
	return nil
}
