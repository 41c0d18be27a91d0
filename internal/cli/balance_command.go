package cli

import (
	"context"

	"workhours/internal/errors"
	"workhours/internal/hours"
)

// BalanceCommand handles the balance command
type BalanceCommand struct {
	app          *App
	errorHandler *ErrorHandler
	all          bool
}

// NewBalanceCommand creates a new balance command handler
func NewBalanceCommand(app *App) *BalanceCommand {
	return &BalanceCommand{app: app, errorHandler: NewErrorHandler()}
}

// WithAll lists every stored balance instead of a single period
func (c *BalanceCommand) WithAll(all bool) *BalanceCommand {
	c.all = all
	return c
}

// Execute runs the balance command: [YYYY-MM]
func (c *BalanceCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 || (c.all && len(args) > 0) {
		return errors.NewInvalidInputError("command", "balance", "usage: wh balance [YYYY-MM] or wh balance --all")
	}
	if c.all {
		return c.listBalances(ctx)
	}

	periodArg := ""
	if len(args) == 1 {
		periodArg = args[0]
	}
	view, err := c.app.businessAPI.Balance(ctx, periodArg)
	if err != nil {
		return c.errorHandler.Handle("show balance", err)
	}

	c.app.printf("%s\n", view.Period.Label())
	c.app.printf("  carried in:  %s\n", view.PriorText)
	if view.HasEnding {
		c.app.printf("  carried out: %s\n", view.EndingText)
	} else {
		c.app.printf("  carried out: not saved yet, run wh report %s\n", view.Period.ISO())
	}
	return nil
}

func (c *BalanceCommand) listBalances(ctx context.Context) error {
	balances, err := c.app.businessAPI.ListBalances(ctx)
	if err != nil {
		return c.errorHandler.Handle("list balances", err)
	}
	if len(balances) == 0 {
		c.app.println("No balances saved")
		return nil
	}
	for _, b := range balances {
		c.app.printf("%s  %s\n", b.Period.ISO(), hours.FormatMinutes(b.Minutes))
	}
	return nil
}
