package cli

import (
	"context"
	"strings"

	"workhours/internal/errors"
	"workhours/internal/validation"
)

// PunchCommand handles the punch command
type PunchCommand struct {
	app          *App
	validator    *validation.PunchValidator
	errorHandler *ErrorHandler
}

// NewPunchCommand creates a new punch command handler
func NewPunchCommand(app *App) *PunchCommand {
	return &PunchCommand{
		app:          app,
		validator:    validation.NewPunchValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the punch command: [day] HH:MM...
func (c *PunchCommand) Execute(ctx context.Context, args []string) error {
	dayArg, tokens := c.splitArgs(args)
	if len(tokens) == 0 {
		return errors.NewInvalidInputError("command", "punch", "usage: wh punch [day] HH:MM [HH:MM...]")
	}

	view, err := c.app.businessAPI.RecordDay(ctx, dayArg, tokens)
	if err != nil {
		return c.errorHandler.Handle("record day", err)
	}

	c.app.printf("Recorded ")
	printDay(c.app.out, view)
	return nil
}

// splitArgs separates an optional leading day argument from the punch tokens
func (c *PunchCommand) splitArgs(args []string) (string, []string) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" && c.validator.ValidateDayArgument(args[0]) == nil {
		return args[0], args[1:]
	}
	return "", args
}
