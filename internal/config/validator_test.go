package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWithSchema_Valid(t *testing.T) {
	content := []byte(`
order_by: average
reverse: false
render:
  width: 80
  fill: "2"
`)

	result, err := ValidateWithSchema(".callprof.yml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_UnknownField(t *testing.T) {
	content := []byte("order_by: name\ncolumns: 5\n")

	result, err := ValidateWithSchema(".callprof.yml", content)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
}

func TestValidateWithSchema_BadEnum(t *testing.T) {
	content := []byte("order_by: fastest\n")

	result, err := ValidateWithSchema(".callprof.yml", content)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"broken yaml", ".callprof.yml", "order_by: [unclosed"},
		{"broken json", ".callprof.json", `{"order_by": `},
		{"broken toml", ".callprof.toml", "order_by = "},
		{"unknown format", ".callprof.ini", "order_by=name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithSchema(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, "syntax", result.Errors[0].Field)
		})
	}
}

func TestValidateWithSchema_TOML(t *testing.T) {
	content := []byte("order_by = \"longest\"\n\n[render]\nwidth = 120\n")

	result, err := ValidateWithSchema(".callprof.toml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_File(t *testing.T) {
	path := writeConfig(t, ".callprof.yml", "order_by: calls\nrender:\n  width: 90\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_NarrowWidth(t *testing.T) {
	path := writeConfig(t, ".callprof.yml", "render:\n  width: 5\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)

	path = writeConfig(t, ".callprof.json", `{"render": {"width": 12}}`)
	result, err = Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := Validate("/nonexistent/.callprof.yml")
	assert.Error(t, err)
}

func TestGetSchemaJSON(t *testing.T) {
	assert.Contains(t, GetSchemaJSON(), "\"order_by\"")
}
