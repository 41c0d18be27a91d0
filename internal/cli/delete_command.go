package cli

import (
	"bufio"
	"context"
	"strings"

	"workhours/internal/errors"
)

// DeleteCommand handles the delete-day command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
	force        bool
}

// NewDeleteCommand creates a new delete-day command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// WithForce skips the confirmation prompt
func (c *DeleteCommand) WithForce(force bool) *DeleteCommand {
	c.force = force
	return c
}

// Execute runs the delete-day command: <day>
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete-day", "usage: wh delete-day <day>")
	}
	return c.deleteDay(ctx, args[0])
}

// deleteDay shows the day, asks for confirmation and deletes it
func (c *DeleteCommand) deleteDay(ctx context.Context, dayArg string) error {
	view, err := c.app.businessAPI.GetDay(ctx, dayArg)
	if err != nil {
		return c.errorHandler.Handle("delete day", err)
	}

	if !c.force {
		printDay(c.app.out, view)
		c.app.printf("Delete this day? [y/N]: ")

		input, _ := bufio.NewReader(c.app.in).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(input))
		if answer != "y" && answer != "yes" {
			c.app.println("Delete cancelled.")
			return nil
		}
	}

	if err := c.app.businessAPI.DeleteDay(ctx, view.Day); err != nil {
		return c.errorHandler.Handle("delete day", err)
	}

	c.app.printf("Deleted %s\n", view.DateText)
	return nil
}
