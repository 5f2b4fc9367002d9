package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// CompanyPath returns the path of the company profile inside dir.
func CompanyPath(dir string) string {
	return filepath.Join(dir, companyFile)
}

// SaveCompany writes the company profile, including its price table.
func SaveCompany(path string, c model.Company) error {
	if err := model.ValidatePrices(c.MaterialPrices); err != nil {
		return err
	}
	if err := writeJSON(path, c); err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

// LoadCompany reads the company profile. A missing file yields
// DefaultCompany. Prices for materials added after the profile was saved are
// filled from the defaults.
func LoadCompany(path string) (model.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultCompany(), nil
		}
		return model.Company{}, fmt.Errorf("failed to read company: %w", err)
	}
	var c model.Company
	if err := json.Unmarshal(data, &c); err != nil {
		return model.Company{}, fmt.Errorf("failed to parse company: %w", err)
	}
	return c.WithDefaultPrices(), nil
}
