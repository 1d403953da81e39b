package guide

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultNamespace is assumed for identifiers written without one.
const DefaultNamespace = "minecraft"

// ResourceLocation is a namespaced identifier such as "guideapi:intro".
// Both parts are NFC-normalized and lowercased, so two spellings that differ
// only in case name the same location.
type ResourceLocation struct {
	Namespace string
	Path      string
}

// NewResourceLocation builds a normalized identifier.
func NewResourceLocation(namespace, path string) ResourceLocation {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return ResourceLocation{
		Namespace: normalizePart(namespace),
		Path:      normalizePart(path),
	}
}

// ParseResourceLocation parses "namespace:path" or a bare "path".
func ParseResourceLocation(s string) (ResourceLocation, error) {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = DefaultNamespace, s
	}
	loc, err := ResourceLocation{Namespace: ns, Path: path}.Normalize()
	if err != nil {
		return ResourceLocation{}, fmt.Errorf("invalid resource location %q", s)
	}
	return loc, nil
}

// Normalize returns the canonical form of r, the one ParseResourceLocation
// would produce for r.String(). A location with an empty path, or a colon in
// either part, has no text form that reads back to itself.
func (r ResourceLocation) Normalize() (ResourceLocation, error) {
	n := NewResourceLocation(r.Namespace, r.Path)
	if n.Path == "" || strings.Contains(n.Namespace, ":") || strings.Contains(n.Path, ":") {
		return ResourceLocation{}, fmt.Errorf("invalid resource location %q", r.String())
	}
	return n, nil
}

// String returns "namespace:path".
func (r ResourceLocation) String() string {
	return r.Namespace + ":" + r.Path
}

// MarshalText implements encoding.TextMarshaler. It writes the normalized
// form and fails for a location that could not be read back.
func (r ResourceLocation) MarshalText() ([]byte, error) {
	n, err := r.Normalize()
	if err != nil {
		return nil, err
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ResourceLocation) UnmarshalText(b []byte) error {
	parsed, err := ParseResourceLocation(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func normalizePart(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
