package export

import (
	"fmt"
	"sort"
	"strings"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
	FormatDOT: {
		Name:        FormatDOT,
		MIMEType:    "text/vnd.graphviz",
		Extension:   ".dot",
		Description: "DOT - Graphviz rendering of the statement graph",
	},
}

var formatAliases = map[string]Format{
	"ttl":       FormatTurtle,
	"nt":        FormatNTriples,
	"n-triples": FormatNTriples,
	"json-ld":   FormatJSONLD,
	"graphviz":  FormatDOT,
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Formats returns the registered formats sorted by name.
func Formats() []FormatInfo {
	out := make([]FormatInfo, 0, len(FormatRegistry))
	for _, info := range FormatRegistry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseFormat resolves a format from its name, a short alias, a file
// extension or a MIME type. Matching is case-insensitive and an empty string
// selects Turtle.
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return FormatTurtle, nil
	}
	if _, ok := FormatRegistry[Format(key)]; ok {
		return Format(key), nil
	}
	if f, ok := formatAliases[key]; ok {
		return f, nil
	}
	for name, info := range FormatRegistry {
		if key == info.Extension || "."+key == info.Extension || key == info.MIMEType {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
}

// FormatForPath picks a format from a file name's extension.
func FormatForPath(path string) (Format, error) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "", fmt.Errorf("%w: no extension in %s", ErrUnsupportedFormat, path)
	}
	return ParseFormat(path[idx:])
}
