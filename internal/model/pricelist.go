package model

import (
	"time"

	"github.com/google/uuid"
)

// PriceList is a named unit price table, usually a supplier quote. Keys it
// does not mention fall back to the company prices when it is used.
type PriceList struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Supplier  string         `json:"supplier"`
	UpdatedAt string         `json:"updated_at"`
	Prices    UnitPriceTable `json:"prices"`
}

// NewPriceList creates a price list with a fresh ID.
func NewPriceList(name, supplier string, prices UnitPriceTable) PriceList {
	if prices == nil {
		prices = UnitPriceTable{}
	}
	return PriceList{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Supplier:  supplier,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Prices:    prices,
	}
}

// Resolve returns the list's prices completed with fallback for missing keys.
func (pl PriceList) Resolve(fallback UnitPriceTable) UnitPriceTable {
	return pl.Prices.WithDefaults(fallback)
}

// PriceCatalog holds the user's saved price lists.
type PriceCatalog struct {
	Lists []PriceList `json:"lists"`
}

func NewPriceCatalog() PriceCatalog {
	return PriceCatalog{Lists: []PriceList{}}
}

// Put adds pl, replacing any list with the same name.
func (c *PriceCatalog) Put(pl PriceList) {
	for i := range c.Lists {
		if c.Lists[i].Name == pl.Name {
			pl.ID = c.Lists[i].ID
			c.Lists[i] = pl
			return
		}
	}
	c.Lists = append(c.Lists, pl)
}

// FindByID returns a pointer to the list with the given ID, or nil.
func (c *PriceCatalog) FindByID(id string) *PriceList {
	for i := range c.Lists {
		if c.Lists[i].ID == id {
			return &c.Lists[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the list with the given name, or nil.
func (c *PriceCatalog) FindByName(name string) *PriceList {
	for i := range c.Lists {
		if c.Lists[i].Name == name {
			return &c.Lists[i]
		}
	}
	return nil
}

// Names returns the list names in catalog order.
func (c *PriceCatalog) Names() []string {
	names := make([]string, len(c.Lists))
	for i, l := range c.Lists {
		names[i] = l.Name
	}
	return names
}
