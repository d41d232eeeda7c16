// Package document reads build documents: YAML or JSON files that describe
// ontology resources and their relations by catalog name, and turns them into
// a single RDF graph.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions recognised as build documents.
var Extensions = []string{".yaml", ".yml", ".json"}

// ErrNoMatch is returned when a path pattern matches no file.
var ErrNoMatch = errors.New("no matching documents")

// Document is a parsed build document.
type Document struct {
	// Path is the file the document was loaded from, if any.
	Path string `yaml:"-" json:"-"`

	// Base is the namespace used to mint URIs for entities without one.
	Base string `yaml:"base,omitempty" json:"base,omitempty"`

	Entities []EntitySpec `yaml:"entities" json:"entities"`
}

// EntitySpec describes one resource.
type EntitySpec struct {
	// ID is the document-local handle used by relation targets.
	ID string `yaml:"id" json:"id"`

	// Class is a catalog class name, compact IRI or IRI.
	Class string `yaml:"class" json:"class"`

	// URI is optional; see Builder for how missing URIs are filled.
	URI string `yaml:"uri,omitempty" json:"uri,omitempty"`

	// Labels are raw {lang, label} records, validated individually.
	Labels []map[string]any `yaml:"labels,omitempty" json:"labels,omitempty"`

	Literals  []LiteralSpec  `yaml:"literals,omitempty" json:"literals,omitempty"`
	Relations []RelationSpec `yaml:"relations,omitempty" json:"relations,omitempty"`
}

// LiteralSpec sets a literal property.
type LiteralSpec struct {
	Relation string `yaml:"relation" json:"relation"`
	Text     string `yaml:"text" json:"text"`
	Lang     string `yaml:"lang,omitempty" json:"lang,omitempty"`
}

// RelationSpec relates the entity to other entities of the build by ID
// and to external resources by URI.
type RelationSpec struct {
	Relation string   `yaml:"relation" json:"relation"`
	Targets  []string `yaml:"targets,omitempty" json:"targets,omitempty"`
	URIs     []string `yaml:"uris,omitempty" json:"uris,omitempty"`
}

// Parse decodes a document. JSON input is accepted as YAML. Unknown fields
// are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Expand resolves file paths, directories and doublestar patterns
// (docs/**/*.yaml) into a sorted list of document files. Directories expand
// to every document below them.
func Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}

	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			pattern = filepath.Join(pattern, "**", "*.{yaml,yml,json}")
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}
		for _, m := range matches {
			if IsDocument(m) {
				add(m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

// LoadAll expands patterns and loads every matching document.
func LoadAll(patterns ...string) ([]*Document, error) {
	paths, err := Expand(patterns...)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// IsDocument reports whether path has a build document extension.
func IsDocument(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
