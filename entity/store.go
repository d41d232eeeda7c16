package entity

import (
	"context"

	"github.com/c360studio/semcrm/graph"
	"github.com/cayleygraph/quad"
)

// Store is an external source of previously generated statements. Entities
// carry a Store so that callers can look up related resources; the entity
// itself never fetches.
type Store interface {
	Fetch(ctx context.Context, uri quad.IRI) (*graph.Graph, error)
}
