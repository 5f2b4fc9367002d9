package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// File names inside the data directory.
const (
	configFile     = "config.json"
	companyFile    = "company.json"
	templatesFile  = "templates.json"
	priceListsFile = "pricelists.json"
	projectsFile   = "projects.json"
	sqliteFile     = "projects.db"
)

// DefaultDataDir returns the default directory for application data.
// On all platforms this is ~/.drywallcalc/
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".drywallcalc")
}

// ConfigPath returns the path of the application config file inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, configFile)
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	return config.Normalize(), nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
