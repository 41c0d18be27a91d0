package cli

import (
	"context"

	"workhours/internal/errors"
	"workhours/internal/hours"
)

// RecomputeCommand handles the recompute command
type RecomputeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRecomputeCommand creates a new recompute command handler
func NewRecomputeCommand(app *App) *RecomputeCommand {
	return &RecomputeCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the recompute command: <from YYYY-MM> <to YYYY-MM>
func (c *RecomputeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "recompute", "usage: wh recompute <from YYYY-MM> <to YYYY-MM>")
	}

	reports, err := c.app.businessAPI.RollForwardRange(ctx, args[0], args[1])
	for _, report := range reports {
		c.app.printf("%-15s %3d days  %s -> %s\n", report.Period.Label(), len(report.Rows),
			hours.FormatMinutes(report.StartingBalance), hours.FormatMinutes(report.EndingBalance))
	}
	if err != nil {
		return c.errorHandler.Handle("recompute balances", err)
	}
	return nil
}
