package graph_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/c360studio/semcrm/graph"
	"github.com/c360studio/semcrm/vocabulary/crm"
	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	subjects []string
	payloads []graph.EntityPayload
	failAt   int
}

func (r *recordingPublisher) PublishToStream(_ context.Context, subject string, data []byte) error {
	if r.failAt > 0 && len(r.payloads)+1 == r.failAt {
		return errors.New("stream unavailable")
	}
	var p graph.EntityPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	r.subjects = append(r.subjects, subject)
	r.payloads = append(r.payloads, p)
	return nil
}

func sampleGraph() *graph.Graph {
	g := graph.New()
	g.Add("urn:x", graph.RDFType, quad.IRI(crm.ClassThing))
	g.Add("urn:x", quad.IRI(crm.PropIsIdentifiedBy), quad.IRI("urn:y"))
	g.Add("urn:y", quad.IRI(crm.PropIdentifies), quad.IRI("urn:x"))
	g.Add("urn:y", graph.RDFSLabel, quad.LangString{Value: "Faust", Lang: "de"})
	g.Add("urn:y", quad.IRI("http://example.org/custom"), quad.String("v"))
	return g
}

func TestPayloadsGroupBySubject(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	payloads := graph.Payloads(sampleGraph(), "semcrm.build", now)
	require.Len(t, payloads, 2)

	x := payloads[0]
	assert.Equal(t, "urn:x", x.EntityID())
	assert.Len(t, x.Triples(), 2)
	assert.Equal(t, graph.EntityType, x.Schema())
	assert.NoError(t, x.Validate())

	preds := map[string]any{}
	for _, tr := range payloads[1].Triples() {
		preds[tr.Predicate] = tr.Object
		assert.Equal(t, "semcrm.build", tr.Source)
		assert.Equal(t, now, tr.Timestamp)
	}
	assert.Equal(t, "urn:x", preds[crm.Identifies])
	assert.Equal(t, "Faust@de", preds["rdfs.label"])
	assert.Equal(t, "v", preds["http://example.org/custom"])
}

func TestPayloadsKeepLanguageTags(t *testing.T) {
	g := graph.New()
	g.Add("urn:w", graph.RDFSLabel, quad.LangString{Value: "Faust", Lang: "de"})
	g.Add("urn:w", graph.RDFSLabel, quad.LangString{Value: "Faust", Lang: "en"})

	payloads := graph.Payloads(g, "semcrm.build", time.Now())
	require.Len(t, payloads, 1)

	var objects []any
	for _, tr := range payloads[0].Triples() {
		objects = append(objects, tr.Object)
	}
	assert.ElementsMatch(t, []any{"Faust@de", "Faust@en"}, objects)
}

func TestPublish(t *testing.T) {
	pub := &recordingPublisher{}
	n, err := graph.Publish(context.Background(), pub, sampleGraph(), "semcrm.build")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{graph.GraphIngestSubject, graph.GraphIngestSubject}, pub.subjects)
	assert.Equal(t, "urn:x", pub.payloads[0].EntityID())
}

func TestPublishToSubject(t *testing.T) {
	pub := &recordingPublisher{}
	n, err := graph.PublishTo(context.Background(), pub, "crm.build.test", sampleGraph(), "semcrm.build")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"crm.build.test", "crm.build.test"}, pub.subjects)
}

func TestPublishNilPublisher(t *testing.T) {
	n, err := graph.Publish(context.Background(), nil, sampleGraph(), "semcrm.build")
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestPublishStopsOnError(t *testing.T) {
	pub := &recordingPublisher{failAt: 2}
	n, err := graph.Publish(context.Background(), pub, sampleGraph(), "semcrm.build")
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, err.Error(), "urn:y")
}

func TestEntityPayloadValidate(t *testing.T) {
	p := &graph.EntityPayload{}
	assert.Error(t, p.Validate())
}
