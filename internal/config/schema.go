package config

import (
	"fmt"
	"strings"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeString
	TypeEnum
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Shell choices for the `shell` key.
const (
	ShellAuto = "auto"
	ShellSh   = "sh"
	ShellBash = "bash"
	ShellZsh  = "zsh"
	ShellPwsh = "pwsh"
	ShellCmd  = "cmd"
)

// Output modes for the `output` key.
const (
	OutputDefault = "default"
	OutputQuiet   = "quiet"
)

// ColorNames are the color names accepted by what_color and why_color.
var ColorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"hi_black", "hi_red", "hi_green", "hi_yellow", "hi_blue", "hi_magenta", "hi_cyan", "hi_white",
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // Key name as written in the config file
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
	Default       interface{}     // Default value
}

// keyOrder is the order keys are listed and written in.
var keyOrder = []string{"python", "node", "shell", "language", "output", "color", "what_color", "why_color"}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"python": {
		Path:        "python",
		Type:        TypeString,
		Description: "Python interpreter name or path used by py and pip",
		Default:     "python3",
	},
	"node": {
		Path:        "node",
		Type:        TypeString,
		Description: "Node.js interpreter name or path used by node, npm and npx",
		Default:     "node",
	},
	"shell": {
		Path:          "shell",
		Type:          TypeEnum,
		AllowedValues: []string{ShellAuto, ShellSh, ShellBash, ShellZsh, ShellPwsh, ShellCmd},
		Description:   "Shell used by run (auto picks the platform default)",
		Default:       ShellAuto,
	},
	"language": {
		Path:          "language",
		Type:          TypeEnum,
		AllowedValues: []string{"auto", "zh", "en"},
		Description:   "Message language (auto follows SHNOTE_LANG and the locale)",
		Default:       "auto",
	},
	"output": {
		Path:          "output",
		Type:          TypeEnum,
		AllowedValues: []string{OutputDefault, OutputQuiet},
		Description:   "quiet suppresses the WHAT/WHY preamble",
		Default:       OutputDefault,
	},
	"color": {
		Path:        "color",
		Type:        TypeBool,
		Description: "Colorize the WHAT/WHY labels when the terminal supports it",
		Default:     true,
	},
	"what_color": {
		Path:          "what_color",
		Type:          TypeEnum,
		AllowedValues: ColorNames,
		Description:   "Color of the WHAT: label",
		Default:       "cyan",
	},
	"why_color": {
		Path:          "why_color",
		Type:          TypeEnum,
		AllowedValues: ColorNames,
		Description:   "Color of the WHY: label",
		Default:       "magenta",
	},
}

// Keys returns the known keys in display order.
func Keys() []string {
	return append([]string(nil), keyOrder...)
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown config key: " + e.Key
}

// ErrInvalidValue is returned when a value does not fit the key's schema.
type ErrInvalidValue struct {
	Key     string
	Value   string
	Allowed []string
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value %q for %s (allowed: %s)", e.Value, e.Key, strings.Join(e.Allowed, ", "))
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// ParsedValue represents a configuration value after validation.
type ParsedValue struct {
	Raw    string      // Original string input from user
	Parsed interface{} // Value converted to correct type
	Type   ConfigValueType
}

// ValidateValue validates a value against the schema for a given key.
// Returns the parsed value or an error with details about what's wrong.
func ValidateValue(key, value string) (ParsedValue, error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return ParsedValue{}, err
	}
	return validateAgainstSchema(schema, value)
}

// validateAgainstSchema validates a value against a specific schema.
func validateAgainstSchema(schema ConfigKeySchema, value string) (ParsedValue, error) {
	switch schema.Type {
	case TypeBool:
		return parseBoolValue(schema, value)
	case TypeEnum:
		return parseEnumValue(schema, value)
	case TypeString:
		if strings.TrimSpace(value) == "" {
			return ParsedValue{}, ErrInvalidValue{Key: schema.Path, Value: value, Allowed: []string{"a non-empty name or path"}}
		}
		return ParsedValue{Raw: value, Parsed: value, Type: TypeString}, nil
	default:
		return ParsedValue{}, fmt.Errorf("unsupported type: %v", schema.Type)
	}
}

// parseBoolValue parses and validates a boolean value.
func parseBoolValue(schema ConfigKeySchema, value string) (ParsedValue, error) {
	switch strings.ToLower(value) {
	case "true", "on", "yes", "1":
		return ParsedValue{Raw: value, Parsed: true, Type: TypeBool}, nil
	case "false", "off", "no", "0":
		return ParsedValue{Raw: value, Parsed: false, Type: TypeBool}, nil
	default:
		return ParsedValue{}, ErrInvalidValue{Key: schema.Path, Value: value, Allowed: []string{"true", "false"}}
	}
}

// parseEnumValue validates a value against allowed enum options.
// Matching is case-insensitive and the canonical spelling is returned.
func parseEnumValue(schema ConfigKeySchema, value string) (ParsedValue, error) {
	for _, allowed := range schema.AllowedValues {
		if strings.EqualFold(value, allowed) {
			return ParsedValue{Raw: value, Parsed: allowed, Type: TypeEnum}, nil
		}
	}
	return ParsedValue{}, ErrInvalidValue{Key: schema.Path, Value: value, Allowed: schema.AllowedValues}
}
