package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semcrm/vocabulary/namespaces"
	"github.com/c360studio/semstreams/message"
	"github.com/cayleygraph/quad"
)

// GraphIngestSubject is the stream subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// Publisher publishes raw messages to a JetStream subject.
// *natsclient.Client satisfies it.
type Publisher interface {
	PublishToStream(ctx context.Context, subject string, data []byte) error
}

// Payloads groups the graph by subject into one EntityPayload per subject.
// Predicates registered in the vocabulary are emitted under their dotted
// name; any other predicate keeps its full IRI. Language-tagged literals are
// emitted as "text@lang".
func Payloads(g *Graph, source string, now time.Time) []*EntityPayload {
	var out []*EntityPayload
	var current *EntityPayload

	for _, st := range g.Statements() {
		id := string(st.Subject)
		if current == nil || current.EntityID_ != id {
			current = &EntityPayload{EntityID_: id, UpdatedAt: now}
			out = append(out, current)
		}
		current.TripleData = append(current.TripleData, message.Triple{
			Subject:    id,
			Predicate:  predicateName(st.Predicate),
			Object:     objectValue(st.Object),
			Source:     source,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	return out
}

// Publish sends the graph to the knowledge graph and returns the number of
// entities published. A nil publisher skips publishing.
func Publish(ctx context.Context, pub Publisher, g *Graph, source string) (int, error) {
	return PublishTo(ctx, pub, GraphIngestSubject, g, source)
}

// PublishTo is Publish with an explicit subject.
func PublishTo(ctx context.Context, pub Publisher, subject string, g *Graph, source string) (int, error) {
	if pub == nil {
		return 0, nil // Skip publishing if no NATS client (graceful degradation)
	}

	published := 0
	for _, payload := range Payloads(g, source, time.Now()) {
		data, err := json.Marshal(payload)
		if err != nil {
			return published, fmt.Errorf("marshal entity %s: %w", payload.EntityID_, err)
		}
		if err := pub.PublishToStream(ctx, subject, data); err != nil {
			return published, fmt.Errorf("publish entity %s: %w", payload.EntityID_, err)
		}
		published++
	}
	return published, nil
}

func predicateName(p quad.IRI) string {
	if name, ok := namespaces.PredicateName(string(p)); ok {
		return name
	}
	if p == RDFType {
		return "rdf.type"
	}
	if p == RDFSLabel {
		return "rdfs.label"
	}
	return string(p)
}

func objectValue(v quad.Value) any {
	switch t := v.(type) {
	case quad.IRI:
		return string(t)
	case quad.String:
		return string(t)
	case quad.LangString:
		if t.Lang == "" {
			return string(t.Value)
		}
		return string(t.Value) + "@" + t.Lang
	case quad.TypedString:
		return string(t.Value)
	default:
		return v.Native()
	}
}
