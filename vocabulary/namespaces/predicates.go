package namespaces

import (
	"sync"

	"github.com/c360studio/semstreams/vocabulary"
)

var (
	predicateMu    sync.RWMutex
	predicateNames = make(map[string]string)
)

// RegisterProperty registers an object property under its dotted vocabulary
// name and remembers the IRI -> name mapping for graph ingestion.
func RegisterProperty(name, iri, description string) {
	register(name, iri, description, "entity")
}

// RegisterDataProperty registers a literal-valued property.
func RegisterDataProperty(name, iri, description, dataType string) {
	register(name, iri, description, dataType)
}

func register(name, iri, description, dataType string) {
	vocabulary.Register(name,
		vocabulary.WithDescription(description),
		vocabulary.WithDataType(dataType),
		vocabulary.WithIRI(iri))

	predicateMu.Lock()
	predicateNames[iri] = name
	predicateMu.Unlock()
}

// PredicateName returns the dotted vocabulary name registered for iri.
func PredicateName(iri string) (string, bool) {
	predicateMu.RLock()
	defer predicateMu.RUnlock()
	name, ok := predicateNames[iri]
	return name, ok
}
