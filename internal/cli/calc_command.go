package cli

import (
	"context"

	"workhours/internal/errors"
)

// CalcCommand handles the calc command
type CalcCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCalcCommand creates a new calc command handler
func NewCalcCommand(app *App) *CalcCommand {
	return &CalcCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the calc command: HH:MM...
func (c *CalcCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "calc", "usage: wh calc HH:MM [HH:MM...]")
	}

	result, err := c.app.businessAPI.CalculateWorkedHours(ctx, args)
	if err != nil {
		return c.errorHandler.Handle("calculate hours", err)
	}

	c.app.printf("worked: %s\nbreak:  %s\nleft:   %s\nextra:  %s\n", result.Worked, result.Break, result.Left, result.Extra)
	printWarnings(c.app.out, result.Warnings)
	return nil
}
