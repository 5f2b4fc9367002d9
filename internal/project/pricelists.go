package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// PriceListsPath returns the path of the saved price lists inside dir.
func PriceListsPath(dir string) string {
	return filepath.Join(dir, priceListsFile)
}

// SavePriceCatalog writes the saved price lists to a JSON file.
func SavePriceCatalog(path string, c model.PriceCatalog) error {
	return writeJSON(path, c)
}

// LoadPriceCatalog reads the saved price lists. A missing file is an empty catalog.
func LoadPriceCatalog(path string) (model.PriceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPriceCatalog(), nil
		}
		return model.PriceCatalog{}, err
	}
	var c model.PriceCatalog
	if err := json.Unmarshal(data, &c); err != nil {
		return model.PriceCatalog{}, err
	}
	if c.Lists == nil {
		c.Lists = []model.PriceList{}
	}
	return c, nil
}

// ExportPriceList writes a single price list so it can be shared.
func ExportPriceList(path string, pl model.PriceList) error {
	return writeJSON(path, pl)
}

// ImportPriceList reads a single price list file and puts it into existing,
// replacing a list with the same name. Prices are validated first.
func ImportPriceList(path string, existing model.PriceCatalog) (model.PriceCatalog, model.PriceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, model.PriceList{}, err
	}
	var pl model.PriceList
	if err := json.Unmarshal(data, &pl); err != nil {
		return existing, model.PriceList{}, fmt.Errorf("failed to parse price list: %w", err)
	}
	if pl.Name == "" {
		return existing, model.PriceList{}, fmt.Errorf("invalid price list: missing name")
	}
	if err := model.ValidatePrices(pl.Prices); err != nil {
		return existing, model.PriceList{}, err
	}

	imported := model.NewPriceList(pl.Name, pl.Supplier, pl.Prices)
	if pl.UpdatedAt != "" {
		imported.UpdatedAt = pl.UpdatedAt
	}
	existing.Put(imported)
	return existing, *existing.FindByName(pl.Name), nil
}
