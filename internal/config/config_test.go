package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BirthdayWindowDays != 7 {
		t.Errorf("BirthdayWindowDays = %d, want 7", cfg.BirthdayWindowDays)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BirthdayWindowDays != 7 {
		t.Errorf("BirthdayWindowDays = %d, want 7 (defaults)", cfg.BirthdayWindowDays)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{"birthday_window_days": 14, "db_max_open_conns": 1, "disabled_tools": ["note_search"]}`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BirthdayWindowDays != 14 {
		t.Errorf("BirthdayWindowDays = %d, want 14", cfg.BirthdayWindowDays)
	}
	if cfg.DBMaxOpenConns != 1 {
		t.Errorf("DBMaxOpenConns = %d, want 1", cfg.DBMaxOpenConns)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "note_search" {
		t.Errorf("DisabledTools = %v, want [note_search]", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("Load should fail on invalid JSON")
	}
}

func TestMerge(t *testing.T) {
	base := &Config{
		BirthdayWindowDays: 7,
		DBMaxOpenConns:     2,
		DisabledTools:      []string{"a"},
	}
	overlay := &Config{
		BirthdayWindowDays: 30,
		DisabledTools:      []string{"b", "a"},
	}

	merged := Merge(base, overlay)
	if merged.BirthdayWindowDays != 30 {
		t.Errorf("BirthdayWindowDays = %d, want 30 (overlay wins)", merged.BirthdayWindowDays)
	}
	if merged.DBMaxOpenConns != 2 {
		t.Errorf("DBMaxOpenConns = %d, want 2 (base kept for zero overlay)", merged.DBMaxOpenConns)
	}
	if len(merged.DisabledTools) != 2 {
		t.Errorf("DisabledTools = %v, want deduplicated [a b]", merged.DisabledTools)
	}
}
