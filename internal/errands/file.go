package errands

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes present buckets as a mapping in rank order. Empty
// buckets are written as [] so they survive a round trip.
func (l *List) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range l.Present() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.String()}
		value := &yaml.Node{}
		if err := value.Encode(l.buckets[p.Rank()].items); err != nil {
			return nil, fmt.Errorf("encode %s: %w", p, err)
		}
		root.Content = append(root.Content, key, value)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}
	return root, nil
}

// UnmarshalYAML decodes a mapping of priority names to string sequences.
// Keys that are not present leave their buckets absent.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	*l = List{}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of priorities", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		p, ok := priorityByName(key.Value)
		if !ok {
			return fmt.Errorf("line %d: unknown priority %q", key.Line, key.Value)
		}
		if l.Has(p) {
			return fmt.Errorf("line %d: duplicate priority %q", key.Line, key.Value)
		}
		var items []string
		if err := val.Decode(&items); err != nil {
			return fmt.Errorf("line %d: %s: %w", val.Line, p, err)
		}
		l.set(p, items)
	}
	return nil
}

// Parse decodes and validates a list document. An empty document is an
// empty list.
func Parse(data []byte) (*List, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &List{}, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Errors: []error{err}}
	}
	if doc == nil {
		return &List{}, nil
	}
	if errs := Validate(doc); len(errs) > 0 {
		return nil, &ParseError{Errors: errs}
	}

	l := &List{}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, &ParseError{Errors: []error{err}}
	}
	return l, nil
}

// Encode returns the YAML document for l.
func (l *List) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("marshal errands list: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal errands list: %w", err)
	}
	return buf.Bytes(), nil
}

// Create writes a fresh list to path, replacing any existing file. The
// parent directory must already exist.
func Create(path string) (*List, error) {
	l := New()
	data, err := l.Encode()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("create errands file: %w", err)
	}
	return l, nil
}

// Load reads and parses the list file at path. A missing file yields an
// error wrapping ErrNotFound.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read errands file: %w", err)
	}

	l, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.File = path
		}
		return nil, err
	}
	return l, nil
}

// Save overwrites the list file at path, which must already exist. With
// truncate set the file is rewritten in place; otherwise the new contents
// go to a temporary file that is renamed over path.
func (l *List) Save(path string, truncate bool) error {
	data, err := l.Encode()
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("stat errands file: %w", err)
	}

	if truncate {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
		if err != nil {
			return fmt.Errorf("open errands file: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return fmt.Errorf("write errands file: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write errands file: %w", err)
		}
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace errands file: %w", err)
	}
	return nil
}
