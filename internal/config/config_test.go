package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "name", cfg.OrderBy)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Reverse)
	assert.Equal(t, 60, cfg.Render.Width)
	assert.NotEmpty(t, cfg.Render.Fill)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, ".callprof.yml", `
order_by: bottleneck
reverse: true
full_name: true
log_level: debug
render:
  width: 100
  fill: "#ff8800"
  shade: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bottleneck", cfg.OrderBy)
	assert.True(t, cfg.Reverse)
	assert.True(t, cfg.FullName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 100, cfg.Render.Width)
	assert.Equal(t, "#ff8800", cfg.Render.Fill)
	assert.True(t, cfg.Render.Shade)
	// Unset values keep defaults.
	assert.Equal(t, "8", cfg.Render.Edge)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, ".callprof.toml", `
order_by = "calls"

[render]
width = 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "calls", cfg.OrderBy)
	assert.Equal(t, 42, cfg.Render.Width)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, ".callprof.json", `{"order_by": "total", "render": {"fill": "3"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "total", cfg.OrderBy)
	assert.Equal(t, "3", cfg.Render.Fill)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, ".callprof.ini", "order_by=name")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ".callprof.yml"))
	assert.Error(t, err)
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()

	_, found := FindConfig(dir)
	assert.False(t, found)

	// yml wins over toml per SupportedConfigNames preference.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".callprof.toml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".callprof.yml"), []byte(""), 0644))

	path, found := FindConfig(dir)
	require.True(t, found)
	assert.Equal(t, filepath.Join(dir, ".callprof.yml"), path)
}
