package model

import "testing"

func TestPriceListResolve(t *testing.T) {
	pl := NewPriceList("Depósito Central", "Central", UnitPriceTable{KeySheet: 39.9})

	resolved := pl.Resolve(DefaultPrices())

	if resolved[KeySheet] != 39.9 {
		t.Errorf("list price should win, got %f", resolved[KeySheet])
	}
	if resolved[KeyCanvas] != DefaultPrices()[KeyCanvas] {
		t.Errorf("missing key should fall back, got %f", resolved[KeyCanvas])
	}
	if len(pl.Prices) != 1 {
		t.Error("Resolve must not modify the list")
	}
}

func TestNewPriceListNilPrices(t *testing.T) {
	pl := NewPriceList("Vazia", "", nil)
	if pl.Prices == nil {
		t.Error("Prices should not be nil")
	}
	if pl.ID == "" || pl.UpdatedAt == "" {
		t.Error("expected ID and UpdatedAt to be set")
	}
}

func TestPriceCatalogPutReplacesByName(t *testing.T) {
	c := NewPriceCatalog()
	first := NewPriceList("Loja A", "A", UnitPriceTable{KeySheet: 40})
	c.Put(first)
	c.Put(NewPriceList("Loja B", "B", nil))
	c.Put(NewPriceList("Loja A", "A", UnitPriceTable{KeySheet: 38}))

	if len(c.Lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(c.Lists))
	}
	got := c.FindByName("Loja A")
	if got == nil {
		t.Fatal("expected Loja A")
	}
	if got.Prices[KeySheet] != 38 {
		t.Errorf("expected updated price 38, got %f", got.Prices[KeySheet])
	}
	if got.ID != first.ID {
		t.Error("replacing a list keeps its ID")
	}
	if c.FindByID(first.ID) == nil {
		t.Error("expected to find list by ID")
	}
	if names := c.Names(); names[0] != "Loja A" || names[1] != "Loja B" {
		t.Errorf("unexpected names %v", names)
	}
}
