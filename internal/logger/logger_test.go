package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Debug().Str("component", "registry").Msg("snapshot taken")
	log.Info().Int("profiles", 3).Msg("report built")
	log.Warn().Bool("merged", true).Msg("window is empty")
	log.Error().Err(errors.New("bad column")).Msg("report failed")

	// Colored output may put escape codes between key and value, so keys
	// and values are asserted separately.
	out := buf.String()
	assert.Contains(t, out, "snapshot taken")
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "registry")
	assert.Contains(t, out, "report built")
	assert.Contains(t, out, "profiles")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "window is empty")
	assert.Contains(t, out, "bad column")
}

func TestLogger_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("also hidden")
	log.Warn().Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", &buf)

	log.Debug().Msg("filtered at info")
	log.Info().Msg("kept")

	assert.NotContains(t, buf.String(), "filtered at info")
	assert.Contains(t, buf.String(), "kept")
}

func TestLogger_DurFormatsMilliseconds(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.Info().Dur("elapsed", 1500*time.Microsecond).Msg("timed")
	assert.Contains(t, buf.String(), "elapsed")
	assert.Contains(t, buf.String(), "1.5")
}
