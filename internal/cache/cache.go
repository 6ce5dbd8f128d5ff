// Package cache persists parsed gene records keyed by order index, so a
// later run can skip parsing. Files ending in .sz are snappy-framed, .gz gzipped.
package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"gbkit/internal/fileio"
	"gbkit/internal/genbank"
	"gbkit/internal/jsonutil"
	"gbkit/pkg/api"
)

var _ genbank.Sink = (*FileSink)(nil)

// FileSink collects records and writes them to Path on Close.
// It implements genbank.Sink.
type FileSink struct {
	Path string

	mu   sync.Mutex
	recs api.RecordCacheV1
}

func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path, recs: api.RecordCacheV1{}}
}

// Add stores r. A repeated order index is rejected.
func (s *FileSink) Add(r genbank.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.recs[r.Order]; dup {
		return fmt.Errorf("cache: duplicate order %d", r.Order)
	}
	s.recs[r.Order] = api.CachedRecordV1{Gene: r.Gene, Translation: r.Translation}
	return nil
}

// Len is the number of records collected.
func (s *FileSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}

// Close writes the cache file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wc, err := fileio.Create(s.Path)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := jsonutil.EncodePretty(wc, s.recs); err != nil {
		_ = wc.Close()
		return fmt.Errorf("cache: write %s: %w", s.Path, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("cache: close %s: %w", s.Path, err)
	}
	return nil
}

// Load reads a cache file back into records sorted by order.
func Load(path string) ([]genbank.Record, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var c api.RecordCacheV1
	if err := json.NewDecoder(rc).Decode(&c); err != nil {
		return nil, fmt.Errorf("cache: decode %s: %w", path, err)
	}
	recs := make([]genbank.Record, 0, len(c))
	for order, v := range c {
		recs = append(recs, genbank.Record{Order: order, Gene: v.Gene, Translation: v.Translation})
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Order < recs[j].Order })
	return recs, nil
}
