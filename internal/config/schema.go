package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for callprof configuration.
func GetSchemaJSON() string {
	return schemaJSON
}

// ValidationError describes one problem found in a config file.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// ValidateWithSchema validates raw config file content against the JSON
// Schema. The content is first normalized to a generic structure based on
// the file extension.
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{Valid: true}

	data, ok := decodeGeneric(path, content, result)
	if !ok {
		return result, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(data)

	validation, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	for _, desc := range validation.Errors() {
		result.addError(desc.Field(), desc.Description())
	}
	result.Valid = result.Valid && validation.Valid()
	return result, nil
}

// decodeGeneric converts file content into a JSON-compatible structure.
// Syntax errors are reported through result rather than returned.
func decodeGeneric(path string, content []byte, result *ValidationResult) (interface{}, bool) {
	var data interface{}

	switch {
	case strings.HasSuffix(path, ".yml"), strings.HasSuffix(path, ".yaml"):
		if err := yaml.Unmarshal(content, &data); err != nil {
			result.addError("syntax", fmt.Sprintf("invalid YAML syntax: %v", err))
			return nil, false
		}
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(content, &data); err != nil {
			result.addError("syntax", fmt.Sprintf("invalid JSON syntax: %v", err))
			return nil, false
		}
	case strings.HasSuffix(path, ".toml"):
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(content), ktoml.Parser()); err != nil {
			result.addError("syntax", fmt.Sprintf("invalid TOML syntax: %v", err))
			return nil, false
		}
		data = k.Raw()
	default:
		result.addError("syntax", fmt.Sprintf("unsupported config format: %s", path))
		return nil, false
	}
	return data, true
}
