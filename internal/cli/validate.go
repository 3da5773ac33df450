package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/callprof/callprof/internal/config"
)

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Validate checks a callprof configuration file against the schema and the
// semantic rules, printing the result. An empty path falls back to the
// config discovered in the current directory. Returns an error when the
// file is invalid so the process exits nonzero.
func Validate(path string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		found, ok := config.FindConfig(dir)
		if !ok {
			return fmt.Errorf("no callprof config file found in %s", dir)
		}
		path = found
	}

	result, err := config.Validate(path)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Fprintln(out, validStyle.Render("✓")+" "+path+" is valid")
		return nil
	}

	fmt.Fprintln(out, invalidStyle.Render("✗")+" "+path+" is invalid:")
	for _, verr := range result.Errors {
		fmt.Fprintf(out, "  %s %s\n", fieldStyle.Render(verr.Field+":"), verr.Message)
	}
	return fmt.Errorf("config validation failed with %d error(s)", len(result.Errors))
}
