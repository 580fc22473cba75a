package loader

import (
	"fmt"
	"os"

	"github.com/ppiankov/gostcite/internal/model"
	"gopkg.in/yaml.v3"
)

// document is the YAML/JSON input shape:
//
//	sources:
//	  - kind: book
//	    authors: Иванов И.М., Петров С.Н.
//	    title: Наука как искусство
//	    ...
//
// A bare top-level list of entries is accepted as well.
type document struct {
	Sources []map[string]any `yaml:"sources"`
}

func (l *Loader) loadDocument(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := parseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	records := make([]model.Record, 0, len(entries))
	for i, entry := range entries {
		rec, err := l.decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseDocument(data []byte) ([]map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	if root.Content[0].Kind == yaml.SequenceNode {
		var entries []map[string]any
		if err := root.Content[0].Decode(&entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var doc document
	if err := root.Content[0].Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Sources, nil
}

func (l *Loader) decodeEntry(entry map[string]any) (model.Record, error) {
	raw, ok := entry["kind"]
	if !ok {
		return nil, fmt.Errorf("%w: missing kind", ErrUnknownKind)
	}

	name, _ := raw.(string)
	kind, err := model.ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, raw)
	}

	return l.decode(kind, entry)
}
