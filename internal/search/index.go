// Package search provides full-text search over the entries of loaded books.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/host"
	"github.com/blackwell-systems/guidectl/internal/logger"
)

// DefaultLimit caps results when Params.Limit is unset.
const DefaultLimit = 20

// Index is an in-memory entry index. All methods are safe for concurrent
// use.
type Index struct {
	index  bleve.Index
	tr     host.Translator
	logger *slog.Logger

	mu    sync.Mutex // serializes book replacement
	books map[string][]string
}

// New creates an empty index. Entry names and page text are translated
// with tr before indexing; nil indexes the raw keys.
func New(tr host.Translator, log *slog.Logger) (*Index, error) {
	if log == nil {
		log = logger.Discard()
	}
	if tr == nil {
		tr = host.Identity{}
	}
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Index{
		index:  idx,
		tr:     tr,
		logger: log.With("component", "search"),
		books:  make(map[string][]string),
	}, nil
}

// Close releases the index.
func (s *Index) Close() error {
	return s.index.Close()
}

// IndexBook replaces every document of the book stored under key.
func (s *Index) IndexBook(key string, b *guide.Book) error {
	docs := FromBook(key, b, s.tr)

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.index.NewBatch()
	for _, id := range s.books[key] {
		batch.Delete(id)
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
		ids = append(ids, doc.ID)
	}
	if err := s.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch for %s: %w", key, err)
	}
	s.books[key] = ids

	s.logger.Debug("indexed book", "book", key, "entries", len(ids))
	return nil
}

// DeleteBook removes the documents of the book stored under key.
func (s *Index) DeleteBook(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, ok := s.books[key]
	if !ok {
		return nil
	}
	batch := s.index.NewBatch()
	for _, id := range ids {
		batch.Delete(id)
	}
	if err := s.index.Batch(batch); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	delete(s.books, key)
	return nil
}

// Books returns the keys of the indexed books.
func (s *Index) Books() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.books))
	for k := range s.books {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of indexed entries.
func (s *Index) Count() (uint64, error) {
	return s.index.DocCount()
}

// Params configures a search.
type Params struct {
	Query   string
	Book    string // restrict to one book key
	Variant string // restrict to entries using this entry or page variant
	Limit   int
	Offset  int
}

// Hit is one matching entry.
type Hit struct {
	ID       string  `json:"id"`
	Score    float64 `json:"score"`
	Book     string  `json:"book"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Entry    string  `json:"entry"`
	Name     string  `json:"name"`
}

// Result holds the hits of a search.
type Result struct {
	Query string `json:"query"`
	Total uint64 `json:"total"`
	Hits  []Hit  `json:"hits"`
}

// Search runs a query against entry names and page text.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	if params.Limit <= 0 {
		params.Limit = DefaultLimit
	}

	req := bleve.NewSearchRequestOptions(buildQuery(params), params.Limit, params.Offset, false)
	req.SortBy([]string{"-_score", "_id"})
	req.Fields = []string{"book", "title", "category", "entry", "name"}

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	out := &Result{
		Query: params.Query,
		Total: res.Total,
		Hits:  make([]Hit, 0, len(res.Hits)),
	}
	for _, h := range res.Hits {
		hit := Hit{ID: h.ID, Score: h.Score}
		hit.Book, _ = h.Fields["book"].(string)
		hit.Title, _ = h.Fields["title"].(string)
		hit.Category, _ = h.Fields["category"].(string)
		hit.Entry, _ = h.Fields["entry"].(string)
		hit.Name, _ = h.Fields["name"].(string)
		out.Hits = append(out.Hits, hit)
	}
	return out, nil
}

func buildQuery(params Params) query.Query {
	var queries []query.Query

	if q := strings.TrimSpace(params.Query); q != "" {
		nameMatch := bleve.NewMatchQuery(q)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)

		textMatch := bleve.NewMatchQuery(q)
		textMatch.SetField("text")

		categoryMatch := bleve.NewMatchQuery(q)
		categoryMatch.SetField("category")
		categoryMatch.SetBoost(0.5)

		fuzzy := bleve.NewFuzzyQuery(strings.ToLower(q))
		fuzzy.SetFuzziness(1)
		fuzzy.SetField("name")
		fuzzy.SetBoost(0.8)

		queries = append(queries, bleve.NewDisjunctionQuery(nameMatch, textMatch, categoryMatch, fuzzy))
	}

	if params.Book != "" {
		bq := bleve.NewTermQuery(params.Book)
		bq.SetField("book")
		queries = append(queries, bq)
	}

	if params.Variant != "" {
		vq := bleve.NewTermQuery(params.Variant)
		vq.SetField("variants")
		queries = append(queries, vq)
	}

	switch len(queries) {
	case 0:
		return bleve.NewMatchAllQuery()
	case 1:
		return queries[0]
	default:
		return bleve.NewConjunctionQuery(queries...)
	}
}
