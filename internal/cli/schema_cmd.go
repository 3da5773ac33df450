package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/callprof/callprof/internal/config"
)

// Schema prints the JSON Schema for callprof configuration files, for use
// with editor integrations.
func Schema(out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, config.GetSchemaJSON())
	return err
}
