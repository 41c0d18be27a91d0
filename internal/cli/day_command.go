package cli

import (
	"context"

	"workhours/internal/errors"
)

// DayCommand handles the day command
type DayCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDayCommand creates a new day command handler
func NewDayCommand(app *App) *DayCommand {
	return &DayCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the day command: [day]
func (c *DayCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "day", "usage: wh day [day]")
	}
	dayArg := ""
	if len(args) == 1 {
		dayArg = args[0]
	}

	view, err := c.app.businessAPI.GetDay(ctx, dayArg)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			c.app.println("No punches recorded for that day")
			return nil
		}
		return c.errorHandler.Handle("show day", err)
	}

	printDay(c.app.out, view)
	return nil
}
