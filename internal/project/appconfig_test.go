package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

func TestDefaultDataDir(t *testing.T) {
	dir := DefaultDataDir()
	if filepath.Base(dir) != ".drywallcalc" {
		t.Errorf("expected .drywallcalc, got %s", filepath.Base(dir))
	}
	if filepath.Base(ConfigPath(dir)) != "config.json" {
		t.Errorf("unexpected config path %s", ConfigPath(dir))
	}
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := ConfigPath(filepath.Join(t.TempDir(), "nested"))

	cfg := model.DefaultAppConfig()
	cfg.MaxRooms = 12
	cfg.StoreBackend = model.StoreSQLite
	cfg.TouchRecent("proj_1", 5)

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.MaxRooms != 12 {
		t.Errorf("expected MaxRooms=12, got %d", loaded.MaxRooms)
	}
	if loaded.StoreBackend != model.StoreSQLite {
		t.Errorf("expected sqlite backend, got %s", loaded.StoreBackend)
	}
	if len(loaded.RecentProjects) != 1 || loaded.RecentProjects[0] != "proj_1" {
		t.Errorf("unexpected recent projects %v", loaded.RecentProjects)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.MaxRooms != model.DefaultMaxRooms {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadAppConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"max_rooms":0}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxRooms != model.DefaultMaxRooms || cfg.ValidityDays != model.DefaultValidityDays {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
