package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wangnov/shnote/internal/blockmerge"
)

// BlockMarkers frame the shnote-managed settings inside config.yaml.
var BlockMarkers = blockmerge.HashMarkers("config")

// Set validates value for key and writes the saved settings back to the
// config file. Environment overrides are never persisted.
func (s *Store) Set(key, value string) (ParsedValue, error) {
	parsed, err := ValidateValue(key, value)
	if err != nil {
		return ParsedValue{}, err
	}
	if err := s.saved.Set(key, parsed.Parsed); err != nil {
		return ParsedValue{}, fmt.Errorf("setting %s: %w", key, err)
	}
	if err := s.effective.Set(key, parsed.Parsed); err != nil {
		return ParsedValue{}, fmt.Errorf("setting %s: %w", key, err)
	}

	values := make(map[string]interface{}, len(keyOrder))
	for _, k := range keyOrder {
		values[k] = s.saved.Get(k)
	}
	if err := s.write(values); err != nil {
		return ParsedValue{}, err
	}
	return parsed, nil
}

// Reset writes the defaults into the managed block and reloads.
func (s *Store) Reset() error {
	if err := s.write(GetDefaults()); err != nil {
		return err
	}
	fresh, err := Open(s.path)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// BrokenSuffix is appended to a config file that ResetFile moves aside.
const BrokenSuffix = ".broken"

// ResetFile restores the defaults in the config file at path without loading
// it first, so a file that fails validation can be repaired. A file that is
// not valid YAML cannot be merged into; it is renamed to path+BrokenSuffix
// and movedTo reports the new name.
func ResetFile(path string) (store *Store, movedTo string, err error) {
	if data, err := os.ReadFile(path); err == nil {
		if CheckSyntax(data, path) != nil {
			movedTo = path + BrokenSuffix
			if err := os.Rename(path, movedTo); err != nil {
				return nil, "", fmt.Errorf("moving aside %s: %w", path, err)
			}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("reading config %s: %w", path, err)
	}

	s := &Store{path: path}
	if err := s.Reset(); err != nil {
		return nil, movedTo, err
	}
	return s, movedTo, nil
}

// write stores values in the managed block. Known keys written by hand
// outside the block move into it.
func (s *Store) write(values map[string]interface{}) error {
	body, err := RenderBlock(values)
	if err != nil {
		return err
	}

	current, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config %s: %w", s.path, err)
	}
	content, _, err := absorbLooseKeys(string(current))
	if err != nil {
		return s.pathError(err)
	}
	updated, _, err := blockmerge.Apply(content, BlockMarkers, body)
	if err != nil {
		return s.pathError(err)
	}
	if updated == string(current) {
		return nil
	}
	if err := blockmerge.WriteAtomic(s.path, []byte(updated)); err != nil {
		return fmt.Errorf("writing config %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) pathError(err error) error {
	var corrupt *blockmerge.CorruptBlockError
	if errors.As(err, &corrupt) {
		corrupt.Path = s.path
		return err
	}
	return fmt.Errorf("%s: %w", s.path, err)
}

// RenderBlock renders values as a YAML mapping with keys in display order.
// Keys outside the schema are skipped.
func RenderBlock(values map[string]interface{}) (string, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range keyOrder {
		value, ok := values[key]
		if !ok {
			continue
		}
		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return "", fmt.Errorf("encoding %s: %w", key, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&valueNode,
		)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return string(out), nil
}
