package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/guidectl/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BooksDir != "." {
		t.Errorf("BooksDir = %q, want %q", cfg.BooksDir, ".")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "pretty" {
		t.Errorf("Log = %+v, want info/pretty", cfg.Log)
	}
	if cfg.Search.Limit != 20 {
		t.Errorf("Search.Limit = %d, want 20", cfg.Search.Limit)
	}
	if cfg.Watch.SettleDelay != 200*time.Millisecond {
		t.Errorf("Watch.SettleDelay = %v, want 200ms", cfg.Watch.SettleDelay)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "books_dir: /srv/books\nlog:\n  level: debug\n  format: json\nsearch:\n  limit: 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BooksDir != "/srv/books" {
		t.Errorf("BooksDir = %q", cfg.BooksDir)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Search.Limit != 5 {
		t.Errorf("Search.Limit = %d, want 5", cfg.Search.Limit)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GUIDECTL_BOOKS_DIR", "/from/env")
	t.Setenv("GUIDECTL_LOG_FORMAT", "json")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BooksDir != "/from/env" {
		t.Errorf("BooksDir = %q, want /from/env", cfg.BooksDir)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("log:\n  format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for invalid log format")
	}
	if !strings.Contains(err.Error(), "format") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(config.EnvConfig, "/env/config.yml")
	if got := config.ResolvePath("/flag.yml"); got != "/flag.yml" {
		t.Errorf("ResolvePath(flag) = %q", got)
	}
	if got := config.ResolvePath(""); got != "/env/config.yml" {
		t.Errorf("ResolvePath(env) = %q", got)
	}
	t.Setenv(config.EnvConfig, "")
	if got := config.ResolvePath(""); got != config.DefaultPath() {
		t.Errorf("ResolvePath(default) = %q", got)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := &config.Config{
		BooksDir:  "/books",
		NamesFile: "/names.yml",
		Log:       config.LogConfig{Level: "warn", Format: "pretty"},
		Search:    config.SearchConfig{Limit: 7},
		Watch:     config.WatchConfig{SettleDelay: time.Second},
	}
	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.BooksDir != "/books" || got.NamesFile != "/names.yml" || got.Search.Limit != 7 {
		t.Errorf("round trip = %+v", got)
	}
	if got.Watch.SettleDelay != time.Second {
		t.Errorf("SettleDelay = %v, want 1s", got.Watch.SettleDelay)
	}
	if !got.HasNames() || got.HasLang() {
		t.Errorf("HasNames/HasLang = %v/%v", got.HasNames(), got.HasLang())
	}
}
