package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/semcrm/graph"
	"golang.org/x/text/language"
)

// ErrInvalidLabel is returned for label records that do not have the label shape.
var ErrInvalidLabel = errors.New("invalid label")

// Label is an rdfs:label value with an optional language tag.
type Label struct {
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`
	Text string `json:"label" yaml:"label"`
}

// LabelStatus describes how the supplied labels were handled.
type LabelStatus struct {
	// Loaded is true when at least one label was accepted.
	Loaded bool

	// Accepted and Dropped count the labels that passed and failed validation.
	Accepted int
	Dropped  int

	// Ambiguous is set when two labels share a language, or more than one
	// label has no language.
	Ambiguous bool

	// Degraded is set when more than one label has no language. All labels
	// are then emitted without language tags.
	Degraded bool
}

// LabelValidator accepts or rejects a label.
type LabelValidator interface {
	Validate(Label) error
}

// LabelValidatorFunc adapts a function to LabelValidator.
type LabelValidatorFunc func(Label) error

// Validate calls f(l).
func (f LabelValidatorFunc) Validate(l Label) error { return f(l) }

// ShapeValidator requires non-blank text and, if present, a well-formed
// BCP 47 language tag.
type ShapeValidator struct{}

// Validate checks the label shape.
func (ShapeValidator) Validate(l Label) error {
	if strings.TrimSpace(l.Text) == "" {
		return fmt.Errorf("%w: label text is required", ErrInvalidLabel)
	}
	if l.Lang != "" {
		if _, err := language.Parse(l.Lang); err != nil {
			return fmt.Errorf("%w: language %q: %v", ErrInvalidLabel, l.Lang, err)
		}
	}
	return nil
}

// ParseLabel converts a decoded {"lang": ..., "label": ...} record into a
// Label. Unknown keys and non-string values are rejected.
func ParseLabel(record map[string]any) (Label, error) {
	var l Label
	for k, v := range record {
		s, ok := v.(string)
		if !ok {
			return Label{}, fmt.Errorf("%w: field %q must be a string", ErrInvalidLabel, k)
		}
		switch k {
		case "label":
			l.Text = s
		case "lang":
			l.Lang = s
		default:
			return Label{}, fmt.Errorf("%w: unknown field %q", ErrInvalidLabel, k)
		}
	}
	if _, ok := record["label"]; !ok {
		return Label{}, fmt.Errorf("%w: missing field \"label\"", ErrInvalidLabel)
	}
	return l, nil
}

func (e *Entity) loadLabels(candidates []Label) {
	for _, l := range candidates {
		if err := e.validator.Validate(l); err != nil {
			e.status.Dropped++
			e.logger.Debug("Validation of label failed", "label", l.Text, "error", err)
			continue
		}
		e.labels = append(e.labels, l)
	}
	e.status.Accepted = len(e.labels)
	e.status.Loaded = len(e.labels) > 0

	if !e.status.Loaded {
		e.logger.Warn("Validation of labels failed. Not adding labels", "dropped", e.status.Dropped)
		return
	}
	if e.status.Dropped > 0 {
		e.logger.Warn("Dropped invalid labels", "dropped", e.status.Dropped, "accepted", e.status.Accepted)
	}

	untagged := 0
	seen := make(map[string]bool)
	for _, l := range e.labels {
		if l.Lang == "" {
			untagged++
			continue
		}
		key := strings.ToLower(l.Lang)
		if seen[key] {
			e.status.Ambiguous = true
		}
		seen[key] = true
	}

	if untagged > 1 {
		e.status.Ambiguous = true
		e.status.Degraded = true
		e.logger.Warn("Multiple labels without language tag, adding all labels as plain literals",
			"labels", len(e.labels), "untagged", untagged)
	} else if e.status.Ambiguous {
		e.logger.Warn("Multiple labels share a language tag", "labels", len(e.labels))
	}
}

func (e *Entity) labelStatements() []graph.Statement {
	out := make([]graph.Statement, 0, len(e.labels))
	for _, l := range e.labels {
		lang := l.Lang
		if e.status.Degraded {
			lang = ""
		}
		out = append(out, graph.Statement{
			Subject:   e.uri,
			Predicate: graph.RDFSLabel,
			Object:    graph.LangLiteral(l.Text, lang),
		})
	}
	return out
}
