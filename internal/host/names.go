// Package host defines the services guidectl consumes from the game host:
// object name lookup and string translation. Tests and the CLI use the
// in-memory implementations here.
package host

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Kind selects one of the host's two independent name registries.
type Kind int

const (
	KindItem Kind = iota
	KindBlock
)

func (k Kind) String() string {
	if k == KindBlock {
		return "block"
	}
	return "item"
}

// Handle identifies one registered game object. It is only meaningful to the
// registry that issued it.
type Handle struct {
	kind Kind
	id   int
}

// Kind returns the registry the handle belongs to.
func (h Handle) Kind() Kind { return h.kind }

// IsZero reports whether h was never issued by a registry.
func (h Handle) IsZero() bool { return h.id == 0 }

// NameRegistry is the host's name lookup service.
type NameRegistry interface {
	// Resolve returns the object registered under name in the kind registry.
	Resolve(kind Kind, name string) (Handle, bool)
	// NameOf is the inverse of Resolve.
	NameOf(h Handle) (string, bool)
}

// Names is an in-memory NameRegistry.
type Names struct {
	mu     sync.RWMutex
	byName [2]map[string]int
	byID   [2][]string
}

// NewNames creates an empty registry.
func NewNames() *Names {
	return &Names{
		byName: [2]map[string]int{{}, {}},
		// id 0 is reserved for the zero Handle.
		byID: [2][]string{{""}, {""}},
	}
}

// Add registers name under kind and returns its handle. Adding an existing
// name returns the existing handle.
func (n *Names) Add(kind Kind, name string) Handle {
	n.mu.Lock()
	defer n.mu.Unlock()

	if id, ok := n.byName[kind][name]; ok {
		return Handle{kind: kind, id: id}
	}
	id := len(n.byID[kind])
	n.byID[kind] = append(n.byID[kind], name)
	n.byName[kind][name] = id
	return Handle{kind: kind, id: id}
}

// Resolve implements NameRegistry.
func (n *Names) Resolve(kind Kind, name string) (Handle, bool) {
	if kind != KindItem && kind != KindBlock {
		return Handle{}, false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	id, ok := n.byName[kind][name]
	if !ok {
		return Handle{}, false
	}
	return Handle{kind: kind, id: id}, true
}

// NameOf implements NameRegistry.
func (n *Names) NameOf(h Handle) (string, bool) {
	if h.IsZero() || (h.kind != KindItem && h.kind != KindBlock) {
		return "", false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	if h.id >= len(n.byID[h.kind]) {
		return "", false
	}
	return n.byID[h.kind][h.id], true
}

// List returns the sorted names registered under kind.
func (n *Names) List(kind Kind) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, 0, len(n.byName[kind]))
	for name := range n.byName[kind] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// namesFile is the on-disk fixture format.
type namesFile struct {
	Items  []string `yaml:"items"`
	Blocks []string `yaml:"blocks"`
}

// ParseNames decodes a YAML fixture of the form
//
//	items: [minecraft:potato, minecraft:banner]
//	blocks: [minecraft:cobblestone]
func ParseNames(data []byte) (*Names, error) {
	var f namesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing names YAML: %w", err)
	}
	n := NewNames()
	for _, name := range f.Items {
		n.Add(KindItem, name)
	}
	for _, name := range f.Blocks {
		n.Add(KindBlock, name)
	}
	return n, nil
}

// LoadNames reads a YAML name fixture from disk.
func LoadNames(path string) (*Names, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading names: %w", err)
	}
	return ParseNames(data)
}

// Vanilla returns a registry holding the handful of base-game objects the
// sample book and the CLI default to when no fixture is configured.
func Vanilla() *Names {
	n := NewNames()
	for _, name := range []string{
		"minecraft:potato",
		"minecraft:banner",
		"minecraft:acacia_boat",
		"minecraft:book",
		"minecraft:iron_ingot",
		"minecraft:planks",
		"minecraft:stick",
	} {
		n.Add(KindItem, name)
	}
	for _, name := range []string{
		"minecraft:cobblestone",
		"minecraft:stone",
		"minecraft:furnace",
		"minecraft:crafting_table",
		"minecraft:bookshelf",
	} {
		n.Add(KindBlock, name)
	}
	return n
}
