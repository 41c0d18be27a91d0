package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"workhours/internal/api"
	"workhours/internal/config"
	"workhours/internal/observability/metrics"
)

// Command is implemented by every subcommand handler
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	metrics     *metrics.Metrics
	out         io.Writer
	in          io.Reader
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI) *App {
	return NewAppWithConfig(businessAPI, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance with configuration
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	return &App{
		businessAPI: businessAPI,
		config:      cfg,
		out:         os.Stdout,
		in:          os.Stdin,
	}
}

// SetIO redirects command output and confirmation input
func (a *App) SetIO(out io.Writer, in io.Reader) {
	if out != nil {
		a.out = out
	}
	if in != nil {
		a.in = in
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// width returns the configured display width
func (a *App) width() int {
	if a.config != nil && a.config.Display.Width > 0 {
		return a.config.Display.Width
	}
	return 100
}
