package cli

import (
	"context"

	"workhours/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the list command: [YYYY-MM]
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "list", "usage: wh list [YYYY-MM]")
	}
	periodArg := ""
	if len(args) == 1 {
		periodArg = args[0]
	}

	views, err := c.app.businessAPI.ListDays(ctx, periodArg)
	if err != nil {
		return c.errorHandler.Handle("list days", err)
	}

	if len(views) == 0 {
		c.app.println("No days recorded")
		return nil
	}

	for _, view := range views {
		marker := " "
		if view.Suspect {
			marker = "!"
		}
		c.app.printf("%s%s  %-43s worked %-8s break %s\n", marker, view.Day, formatTokens(view.Tokens), view.Worked, view.Break)
	}
	return nil
}
