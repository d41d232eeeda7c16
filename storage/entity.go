// Package storage persists entity graphs in a NATS KV bucket, one entry per
// subject, and serves them back through the entity.Store interface.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/semcrm/export"
	"github.com/c360studio/semcrm/graph"
	"github.com/cayleygraph/quad"
	"github.com/nats-io/nats.go/jetstream"
)

// DefaultBucket is the KV bucket used when none is configured.
const DefaultBucket = "SEMCRM_ENTITIES"

// Store provides entity graph storage backed by NATS KV.
type Store struct {
	kv jetstream.KeyValue
}

// NewStore opens the named bucket, creating it if it doesn't exist.
func NewStore(ctx context.Context, js jetstream.JetStream, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	kv, err := getOrCreateBucket(ctx, js, bucket)
	if err != nil {
		return nil, fmt.Errorf("create %s bucket: %w", bucket, err)
	}
	return &Store{kv: kv}, nil
}

// NewStoreFromKV wraps an already opened bucket.
func NewStoreFromKV(kv jetstream.KeyValue) *Store {
	return &Store{kv: kv}
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("semcrm %s storage", strings.ToLower(name)),
		History:     5, // Keep last 5 revisions
	})
}

// Key returns the KV key for a subject URI. URIs contain characters KV keys
// do not allow, so keys are the unpadded base64url encoding of the URI.
func Key(uri quad.IRI) string {
	return base64.RawURLEncoding.EncodeToString([]byte(uri))
}

// URIFromKey reverses Key.
func URIFromKey(key string) (quad.IRI, error) {
	raw, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("decode key %q: %w", key, err)
	}
	return quad.IRI(raw), nil
}

// Put stores the statements of g whose subject is uri, replacing any
// previous entry.
func (s *Store) Put(ctx context.Context, uri quad.IRI, g *graph.Graph) error {
	sub := graph.New()
	for _, st := range g.Statements() {
		if st.Subject == uri {
			sub.AddStatement(st)
		}
	}
	if sub.IsEmpty() {
		return fmt.Errorf("%w: no statements about %s", ErrEmptyGraph, uri)
	}

	data, err := sub.Serialize(export.FormatNTriples)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", uri, err)
	}
	if _, err := s.kv.Put(ctx, Key(uri), data); err != nil {
		return fmt.Errorf("store %s: %w", uri, err)
	}
	return nil
}

// Save stores every subject of g and returns the number of entries written.
func (s *Store) Save(ctx context.Context, g *graph.Graph) (int, error) {
	saved := 0
	for _, subject := range g.Subjects() {
		if err := s.Put(ctx, subject, g); err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

// Fetch returns the stored statements about uri. It implements entity.Store.
func (s *Store) Fetch(ctx context.Context, uri quad.IRI) (*graph.Graph, error) {
	entry, err := s.kv.Get(ctx, Key(uri))
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, uri)
		}
		return nil, fmt.Errorf("get %s: %w", uri, err)
	}

	quads, err := export.ReadNTriples(bytes.NewReader(entry.Value()))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", uri, err)
	}
	return graph.FromQuads(quads)
}

// Delete removes the entry for uri.
func (s *Store) Delete(ctx context.Context, uri quad.IRI) error {
	if err := s.kv.Delete(ctx, Key(uri)); err != nil {
		return fmt.Errorf("delete %s: %w", uri, err)
	}
	return nil
}

// List returns the URIs of all stored subjects.
func (s *Store) List(ctx context.Context) ([]quad.IRI, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list keys: %w", err)
	}

	uris := make([]quad.IRI, 0, len(keys))
	for _, key := range keys {
		uri, err := URIFromKey(key)
		if err != nil {
			continue // Skip keys not written by this store
		}
		uris = append(uris, uri)
	}
	return uris, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound) ||
		(err != nil && strings.Contains(err.Error(), "key not found"))
}
