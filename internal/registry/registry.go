// Package registry maps variant discriminators to codec capabilities.
//
// One Registry exists per polymorphic family (pages, entries, categories), so
// the same tag may be used in two families without conflict. Registration is
// expected to finish before documents are loaded; reads stay safe afterwards
// because the tag map is replaced, never mutated, on every registration.
package registry

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/logger"
)

// Registry holds the codecs of one variant family.
type Registry[C any] struct {
	family string
	logger *slog.Logger

	mu      sync.Mutex // serializes writers
	entries atomic.Pointer[map[string]C]
}

// New creates an empty registry for family ("page", "entry", "category").
func New[C any](family string, log *slog.Logger) *Registry[C] {
	if log == nil {
		log = logger.Discard()
	}
	r := &Registry[C]{
		family: family,
		logger: log.With("family", family),
	}
	empty := map[string]C{}
	r.entries.Store(&empty)
	return r
}

// Family returns the family name used in errors and logs.
func (r *Registry[C]) Family() string {
	return r.family
}

// Register associates tag with codec and reports whether it was accepted.
// An empty tag or a tag that is already registered is logged and ignored:
// the first registrant stays authoritative so built-in variants cannot be
// shadowed by a later extension.
func (r *Registry[C]) Register(tag string, codec C) bool {
	if tag == "" {
		r.logger.Warn("ignoring variant registration with empty tag")
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.entries.Load()
	if _, exists := current[tag]; exists {
		r.logger.Warn("duplicate variant registration ignored", "tag", tag)
		return false
	}

	next := make(map[string]C, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[tag] = codec
	r.entries.Store(&next)

	r.logger.Debug("registered variant", "tag", tag)
	return true
}

// Lookup returns the codec registered for tag, or an UnknownVariant error
// naming the tag.
func (r *Registry[C]) Lookup(tag string) (C, error) {
	codec, ok := (*r.entries.Load())[tag]
	if !ok {
		var zero C
		return zero, guideerr.UnknownVariant(r.family, tag)
	}
	return codec, nil
}

// Has reports whether tag is registered.
func (r *Registry[C]) Has(tag string) bool {
	_, ok := (*r.entries.Load())[tag]
	return ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry[C]) Tags() []string {
	current := *r.entries.Load()
	tags := make([]string, 0, len(current))
	for tag := range current {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of registered tags.
func (r *Registry[C]) Len() int {
	return len(*r.entries.Load())
}
