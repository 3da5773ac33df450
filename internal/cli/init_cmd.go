package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const sampleConfig = `# callprof configuration file

# Default ordering column for the summary table.
# One of: name, calls, average, longest, bottleneck, total
order_by: name

# Sort descending instead of ascending.
# reverse: false

# Display owner-qualified callable names.
# full_name: false

# Log level (debug, info, warn, error).
# log_level: warn

# Rendering style. Colors are ANSI numbers or hex values.
render:
  # Width of the gantt bar area, in terminal cells.
  width: 60
  # Bar fill color.
  fill: "6"
  # Table border and axis color.
  # edge: "8"
  # Label and header color.
  # label: "15"
  # Draw bars with a lighter shade block.
  # shade: false
`

// Init creates a sample .callprof.yml in the current directory.
func Init(out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	configPath := filepath.Join(currentDir, ".callprof.yml")

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := os.WriteFile(configPath, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(out, "Created %s\n", configPath)
	return nil
}
