package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// BackupVersion is written into every backup file.
const BackupVersion = "1.0.0"

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version    string                  `json:"version"`
	CreatedAt  string                  `json:"created_at"`
	Config     model.AppConfig         `json:"config"`
	Company    model.Company           `json:"company"`
	Templates  []model.ProjectTemplate `json:"templates"`
	PriceLists []model.PriceList       `json:"price_lists"`
	Projects   []model.Project         `json:"projects"`
}

// ExportAllData writes config, company, templates, price lists and every
// saved project to a single JSON file at exportPath.
func ExportAllData(exportPath string, backup BackupData) error {
	backup.Version = BackupVersion
	backup.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if backup.Projects == nil {
		backup.Projects = []model.Project{}
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying it, see RestoreBackup.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	backup.Config = backup.Config.Normalize()
	backup.Company = backup.Company.WithDefaultPrices()
	if backup.Projects == nil {
		backup.Projects = []model.Project{}
	}
	return backup, nil
}

// CollectBackup gathers everything stored under dir plus the projects in store.
func CollectBackup(ctx context.Context, dir string, store Store) (BackupData, error) {
	cfg, err := LoadAppConfig(ConfigPath(dir))
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to load config: %w", err)
	}
	company, err := LoadCompany(CompanyPath(dir))
	if err != nil {
		return BackupData{}, err
	}
	templates, err := LoadTemplates(TemplatesPath(dir))
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to load templates: %w", err)
	}
	catalog, err := LoadPriceCatalog(PriceListsPath(dir))
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to load price lists: %w", err)
	}
	projects, err := store.Projects(ctx)
	if err != nil {
		return BackupData{}, err
	}
	return BackupData{
		Config:     cfg,
		Company:    company,
		Templates:  templates.Templates,
		PriceLists: catalog.Lists,
		Projects:   projects,
	}, nil
}

// RestoreBackup writes a backup's files into dir and upserts its projects
// into store. Existing projects with other IDs are kept.
func RestoreBackup(ctx context.Context, dir string, store Store, backup BackupData) error {
	if err := SaveAppConfig(ConfigPath(dir), backup.Config); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}
	if err := SaveCompany(CompanyPath(dir), backup.Company); err != nil {
		return err
	}
	templates := model.NewTemplateStore()
	templates.Templates = append(templates.Templates, backup.Templates...)
	if err := SaveTemplates(TemplatesPath(dir), templates); err != nil {
		return fmt.Errorf("failed to restore templates: %w", err)
	}
	catalog := model.NewPriceCatalog()
	catalog.Lists = append(catalog.Lists, backup.PriceLists...)
	if err := SavePriceCatalog(PriceListsPath(dir), catalog); err != nil {
		return fmt.Errorf("failed to restore price lists: %w", err)
	}
	for _, p := range backup.Projects {
		if err := store.SaveProject(ctx, p); err != nil {
			return fmt.Errorf("failed to restore project %s: %w", p.ID, err)
		}
	}
	return nil
}
