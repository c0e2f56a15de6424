package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// record is the persisted shape: a single mapping field.
type record struct {
	Map map[string]string `json:"map" yaml:"map"`
}

// FileStore keeps a dictionary in a JSON file, or a YAML file when the
// path ends in .yml or .yaml.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (s *FileStore) Location() string {
	return s.path
}

func (s *FileStore) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

func (s *FileStore) Load(ctx context.Context) (*Dictionary, error) {
	dictionary, _, err := s.read()
	if err != nil {
		return nil, err
	}
	return dictionary, nil
}

// read decodes the file in document order and reports how many entries were
// dropped because their trimmed key was already seen.
func (s *FileStore) read() (*Dictionary, int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, 0, fmt.Errorf("os.Open(%s) > %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, 0, fmt.Errorf("io.ReadAll > %w", err)
	}

	if s.isYAML() {
		return decodeYAML(contents)
	}
	return decodeJSON(contents)
}

func (s *FileStore) Save(ctx context.Context, dictionary *Dictionary) error {
	var buf bytes.Buffer
	data := record{Map: dictionary.Entries()}
	if s.isYAML() {
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encoder.Close > %w", err)
		}
	} else {
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("json.NewEncoder().Encode() > %w", err)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return file.Close()
}

// Cleanup rewrites the file keyed by trimmed term, keeping the first
// occurrence of each key, and returns how many duplicates were removed.
func (s *FileStore) Cleanup(ctx context.Context) (int, error) {
	dictionary, dropped, err := s.read()
	if err != nil {
		return 0, fmt.Errorf("s.read > %w", err)
	}
	if err := s.Save(ctx, dictionary); err != nil {
		return 0, fmt.Errorf("s.Save > %w", err)
	}
	return dropped, nil
}

func decodeJSON(contents []byte) (*Dictionary, int, error) {
	var document struct {
		Map json.RawMessage `json:"map"`
	}
	if err := json.Unmarshal(contents, &document); err != nil {
		return nil, 0, fmt.Errorf("json.Unmarshal > %w", err)
	}

	dictionary := New()
	if len(document.Map) == 0 || string(document.Map) == "null" {
		return dictionary, 0, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(document.Map))
	token, err := decoder.Token()
	if err != nil {
		return nil, 0, fmt.Errorf("decoder.Token > %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, 0, fmt.Errorf("map must be a JSON object, got %v", token)
	}

	dropped := 0
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, 0, fmt.Errorf("decoder.Token > %w", err)
		}
		key, _ := token.(string)

		var value string
		if err := decoder.Decode(&value); err != nil {
			return nil, 0, fmt.Errorf("decoder.Decode(%s) > %w", key, err)
		}
		if !dictionary.add(key, value) {
			dropped++
		}
	}
	return dictionary, dropped, nil
}

func decodeYAML(contents []byte) (*Dictionary, int, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(contents, &document); err != nil {
		return nil, 0, fmt.Errorf("yaml.Unmarshal > %w", err)
	}

	dictionary := New()
	if len(document.Content) == 0 {
		return dictionary, 0, nil
	}
	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, 0, fmt.Errorf("dictionary document must be a mapping, line %d", root.Line)
	}

	dropped := 0
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "map" {
			continue
		}
		entries := root.Content[i+1]
		if entries.Kind == yaml.ScalarNode && entries.Tag == "!!null" {
			continue
		}
		if entries.Kind != yaml.MappingNode {
			return nil, 0, fmt.Errorf("map must be a mapping, line %d", entries.Line)
		}
		for j := 0; j+1 < len(entries.Content); j += 2 {
			key := entries.Content[j].Value
			var value string
			if err := entries.Content[j+1].Decode(&value); err != nil {
				return nil, 0, fmt.Errorf("node.Decode(%s) > %w", key, err)
			}
			if !dictionary.add(key, value) {
				dropped++
			}
		}
	}
	return dictionary, dropped, nil
}
