package host

import (
	"encoding/json"
	"fmt"
	"os"
)

// Translator turns a localization key into display text.
type Translator interface {
	Translate(key string) string
}

// Lang is a Translator backed by a key→text map, the shape of a JSON lang
// file such as en_us.json. Missing keys translate to themselves.
type Lang map[string]string

// Translate implements Translator.
func (l Lang) Translate(key string) string {
	if s, ok := l[key]; ok {
		return s
	}
	return key
}

// LoadLang reads a JSON lang file.
func LoadLang(path string) (Lang, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lang file: %w", err)
	}
	var l Lang
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing lang file: %w", err)
	}
	if l == nil {
		l = Lang{}
	}
	return l, nil
}

// Identity is a Translator that returns keys unchanged.
type Identity struct{}

// Translate implements Translator.
func (Identity) Translate(key string) string { return key }
