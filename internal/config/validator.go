package config

import (
	"fmt"
	"os"

	"github.com/callprof/callprof/pkg/profiler"
)

// Validate validates a config file: schema first, then semantic checks the
// schema cannot express.
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not readable: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	cfg, err := Load(path)
	if err != nil {
		result.addError("syntax", fmt.Sprintf("failed to parse config: %v", err))
		return result, nil
	}

	if _, err := profiler.ParseOrderBy(cfg.OrderBy); err != nil {
		result.addError("order_by", err.Error())
	}
	if cfg.Render.Width < 10 {
		result.addError("render/width", fmt.Sprintf("bar area width %d is too narrow (minimum 10)", cfg.Render.Width))
	}
	return result, nil
}
