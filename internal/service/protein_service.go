// Package service provides the query logic behind the dashboard panels.
package service

import (
	"encoding/json"

	"github.com/protein-lab/server/internal/cache"
	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/internal/render"
)

// Config contains protein service configuration.
type Config struct {
	Symbol   string
	Record   *protein.Record
	Cache    *cache.Manager
	Renderer *render.SnapshotRenderer
}

// ProteinService answers panel queries over one immutable protein record.
type ProteinService struct {
	symbol   string
	record   *protein.Record
	cache    *cache.Manager
	renderer *render.SnapshotRenderer
}

// NewProteinService creates a service over a single record.
func NewProteinService(cfg Config) *ProteinService {
	return &ProteinService{
		symbol:   cfg.Symbol,
		record:   cfg.Record,
		cache:    cfg.Cache,
		renderer: cfg.Renderer,
	}
}

// Symbol returns the gene symbol this service answers for.
func (s *ProteinService) Symbol() string {
	return s.symbol
}

// Metadata returns the record metadata.
func (s *ProteinService) Metadata() protein.Metadata {
	return s.record.Metadata
}

// Record returns the underlying record.
func (s *ProteinService) Record() *protein.Record {
	return s.record
}

// cachedJSON serves an operation's marshaled response through the query
// cache, keyed by operation name and params.
func (s *ProteinService) cachedJSON(op string, params map[string]string, build func() (interface{}, error)) ([]byte, error) {
	key := cache.QueryKey(s.symbol, op, params)
	if s.cache != nil {
		if data, ok := s.cache.GetQuery(key); ok {
			return data, nil
		}
	}

	result, err := build()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetQuery(key, data)
	}
	return data, nil
}
