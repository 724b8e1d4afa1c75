// Package config loads and persists shnote settings.
//
// Settings are layered with koanf: defaults, then ~/.shnote/config.yaml, then
// SHNOTE_CFG_* environment variables. The values shnote writes live inside a
// marked block of the YAML file so hand-written comments around it survive.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides, e.g. SHNOTE_CFG_PYTHON.
const EnvPrefix = "SHNOTE_CFG_"

// Config is the immutable per-invocation view of shnote settings.
type Config struct {
	Python    string `koanf:"python" validate:"required"`
	Node      string `koanf:"node" validate:"required"`
	Shell     string `koanf:"shell" validate:"oneof=auto sh bash zsh pwsh cmd"`
	Language  string `koanf:"language" validate:"oneof=auto zh en"`
	Output    string `koanf:"output" validate:"oneof=default quiet"`
	Color     bool   `koanf:"color"`
	WhatColor string `koanf:"what_color" validate:"color_name"`
	WhyColor  string `koanf:"why_color" validate:"color_name"`
}

// Quiet reports whether the WHAT/WHY preamble is suppressed.
func (c Config) Quiet() bool {
	return c.Output == OutputQuiet
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Python:    KnownKeys["python"].Default.(string),
		Node:      KnownKeys["node"].Default.(string),
		Shell:     KnownKeys["shell"].Default.(string),
		Language:  KnownKeys["language"].Default.(string),
		Output:    KnownKeys["output"].Default.(string),
		Color:     KnownKeys["color"].Default.(bool),
		WhatColor: KnownKeys["what_color"].Default.(string),
		WhyColor:  KnownKeys["why_color"].Default.(string),
	}
}

// Store holds the layered settings for one config file.
type Store struct {
	path string
	// saved holds defaults plus the file; it is what Set writes back.
	saved *koanf.Koanf
	// effective adds environment overrides on top of saved.
	effective *koanf.Koanf
}

// Open loads the layered configuration for the file at path.
// A missing file is not an error.
func Open(path string) (*Store, error) {
	saved := koanf.New(".")
	for key, value := range GetDefaults() {
		saved.Set(key, value)
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := CheckSyntax(data, path); err != nil {
			return nil, err
		}
		if err := saved.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	effective := saved.Copy()
	if err := effective.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	return &Store{path: path, saved: saved, effective: effective}, nil
}

// Load opens the config at path and returns the validated configuration.
func Load(path string) (Config, error) {
	s, err := Open(path)
	if err != nil {
		return Config{}, err
	}
	return s.Config()
}

// envTransform converts environment variable names to config keys.
// Example: SHNOTE_CFG_WHAT_COLOR -> what_color. Unknown keys are dropped.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if _, ok := KnownKeys[key]; !ok {
		return ""
	}
	return key
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Config unmarshals and validates the effective settings.
func (s *Store) Config() (Config, error) {
	var cfg Config
	if err := s.effective.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := newValidator().Struct(cfg); err != nil {
		return Config{}, fieldError(err, s.path)
	}
	return cfg, nil
}

// Get returns the effective value of key as a string.
func (s *Store) Get(key string) (string, error) {
	if _, err := GetKeySchema(key); err != nil {
		return "", err
	}
	return s.effective.String(key), nil
}

// Entry is one row of `config list`.
type Entry struct {
	Key         string
	Value       string
	Description string
}

// List returns every known key with its effective value in display order.
func (s *Store) List() []Entry {
	entries := make([]Entry, 0, len(keyOrder))
	for _, key := range keyOrder {
		entries = append(entries, Entry{
			Key:         key,
			Value:       s.effective.String(key),
			Description: KnownKeys[key].Description,
		})
	}
	return entries
}

// JSON renders the effective known keys as a JSON object.
func (s *Store) JSON() ([]byte, error) {
	k := koanf.New(".")
	for _, key := range keyOrder {
		k.Set(key, s.effective.Get(key))
	}
	return k.Marshal(json.Parser())
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, name := range ColorNames {
			if value == name {
				return true
			}
		}
		return false
	})
	return v
}
