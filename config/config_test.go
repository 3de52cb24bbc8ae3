package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Duplicates.Threshold != 80 {
		t.Errorf("duplicate threshold = %d, want 80", cfg.Duplicates.Threshold)
	}
	if cfg.Cache.TTLHours != 24 {
		t.Errorf("cache ttl = %d hours, want 24", cfg.Cache.TTLHours)
	}
	if got := cfg.CacheTTL().Hours(); got != 24 {
		t.Errorf("CacheTTL = %v hours, want 24", got)
	}
	if len(cfg.Scan.Includes) == 0 {
		t.Error("default includes must not be empty")
	}
	if !cfg.Checks.Duplicates {
		t.Error("duplicate checks should default on")
	}
	if cfg.Properties.Title != "title" || cfg.Properties.Description != "description" {
		t.Errorf("default properties = %+v", cfg.Properties)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duplicates.Threshold != 80 {
		t.Errorf("threshold = %d, want default 80", cfg.Duplicates.Threshold)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notelint.yaml")

	cfg := DefaultConfig()
	cfg.Duplicates.Threshold = 65
	cfg.Scan.IgnoreUnderscore = true
	cfg.Checks.TitleMax = 70

	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Duplicates.Threshold != 65 {
		t.Errorf("threshold = %d, want 65", loaded.Duplicates.Threshold)
	}
	if !loaded.Scan.IgnoreUnderscore {
		t.Error("ignore_underscore lost in round trip")
	}
	if loaded.Checks.TitleMax != 70 {
		t.Errorf("title_max = %d, want 70", loaded.Checks.TitleMax)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notelint.yaml")
	if err := os.WriteFile(path, []byte("duplicates:\n  threshold: 70\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duplicates.Threshold != 70 {
		t.Errorf("threshold = %d, want 70", cfg.Duplicates.Threshold)
	}
	// Everything not in the file stays at its default.
	if cfg.Checks.TitleMin != 30 {
		t.Errorf("title_min = %d, want default 30", cfg.Checks.TitleMin)
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".notelint"), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(dir, ".notelint", "config.yaml")
	if err := os.WriteFile(nested, []byte("duplicates:\n  threshold: 55\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duplicates.Threshold != 55 {
		t.Errorf("threshold = %d, want 55 from nested config", cfg.Duplicates.Threshold)
	}

	// A root-level notelint.yaml takes precedence.
	root := filepath.Join(dir, "notelint.yaml")
	if err := os.WriteFile(root, []byte("duplicates:\n  threshold: 45\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadFromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duplicates.Threshold != 45 {
		t.Errorf("threshold = %d, want 45 from root config", cfg.Duplicates.Threshold)
	}
}

func TestFingerprint(t *testing.T) {
	cfg := DefaultConfig()
	fp := cfg.Fingerprint()

	if fp == "" || fp == "unfingerprintable" {
		t.Fatalf("fingerprint = %q", fp)
	}
	if cfg.Fingerprint() != fp {
		t.Error("fingerprint is not deterministic")
	}

	// Outcome-neutral settings must not move the fingerprint.
	cfg.Logging.Verbose = true
	cfg.Cache.MaxEntries = 10
	cfg.Cache.TTLHours = 1
	if cfg.Fingerprint() != fp {
		t.Error("cache and logging settings perturbed the fingerprint")
	}

	// Outcome-affecting settings must.
	cfg.Duplicates.Threshold = 50
	changed := cfg.Fingerprint()
	if changed == fp {
		t.Error("threshold change did not move the fingerprint")
	}

	cfg.Properties.Keyword = "seo"
	if cfg.Fingerprint() == changed {
		t.Error("property change did not move the fingerprint")
	}
}

func TestCacheDBPath(t *testing.T) {
	got := CacheDBPath("/vault")
	want := filepath.Join("/vault", ".notelint", "cache.db")
	if got != want {
		t.Errorf("CacheDBPath = %q, want %q", got, want)
	}
}
