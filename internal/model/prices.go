package model

import "strings"

// MaterialKey names an entry of the unit price table.
type MaterialKey string

const (
	KeySheet      MaterialKey = "sheet"
	KeyStud       MaterialKey = "stud"
	KeyTrack      MaterialKey = "track"
	KeyF530       MaterialKey = "f530"
	KeyPerimeter  MaterialKey = "perimeter"
	KeyScrewSheet MaterialKey = "screw_sheet"
	KeyScrewMetal MaterialKey = "screw_metal"
	KeyTape       MaterialKey = "tape"
	KeyCompound   MaterialKey = "compound"
	KeyBucha6     MaterialKey = "bucha_6"
	KeyRegulator  MaterialKey = "regulator"
	KeyWire       MaterialKey = "wire"
	KeyPaint18L   MaterialKey = "paint_18l"
	KeyMassa15Kg  MaterialKey = "massa_15kg"
	KeySandpaper  MaterialKey = "sandpaper"
	KeyRoller     MaterialKey = "roller"
	KeyBrush      MaterialKey = "brush"
	KeyWideTape   MaterialKey = "wide_tape"
	KeyCanvas     MaterialKey = "canvas"
)

// MaterialKeys lists every price key in display order.
var MaterialKeys = []MaterialKey{
	KeySheet, KeyStud, KeyTrack, KeyF530, KeyPerimeter,
	KeyScrewSheet, KeyScrewMetal, KeyTape, KeyCompound, KeyBucha6,
	KeyRegulator, KeyWire,
	KeyPaint18L, KeyMassa15Kg, KeySandpaper, KeyRoller, KeyBrush, KeyWideTape, KeyCanvas,
}

var materialKeyLabels = map[MaterialKey]string{
	KeySheet:      "Chapa Drywall (und)",
	KeyStud:       "Montante 48mm (und)",
	KeyTrack:      "Guia 30mm (und)",
	KeyF530:       "Perfil F530 (und)",
	KeyPerimeter:  "Cantoneira/Tabica (und)",
	KeyScrewSheet: "Parafuso GN 25 (und)",
	KeyScrewMetal: "Parafuso Metal-Metal (und)",
	KeyTape:       "Fita Telada (rolo)",
	KeyCompound:   "Massa para Drywall (kg)",
	KeyBucha6:     "Bucha 6mm c/ Parafuso (und)",
	KeyRegulator:  "Regulador F530 (und)",
	KeyWire:       "Arame Galvanizado (kg)",
	KeyPaint18L:   "Tinta Acrílica (lata 18L)",
	KeyMassa15Kg:  "Massa Corrida (saco 15kg)",
	KeySandpaper:  "Lixa (folha)",
	KeyRoller:     "Rolo de Pintura (und)",
	KeyBrush:      "Pincel / Trincha (und)",
	KeyWideTape:   "Fita Crepe Larga (und)",
	KeyCanvas:     "Lona Plástica (m)",
}

// Label returns the human readable name of the priced item.
func (k MaterialKey) Label() string {
	if l, ok := materialKeyLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseMaterialKey looks a key up by name, case-insensitively.
func ParseMaterialKey(s string) (MaterialKey, bool) {
	want := MaterialKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range MaterialKeys {
		if k == want {
			return k, true
		}
	}
	return "", false
}

// UnitPriceTable maps every material key to a unit price. The engine only reads it.
type UnitPriceTable map[MaterialKey]float64

// Price returns the unit price for key, or 0 when the key is absent.
func (t UnitPriceTable) Price(key MaterialKey) float64 {
	return t[key]
}

// Clone returns an independent copy of the table.
func (t UnitPriceTable) Clone() UnitPriceTable {
	out := make(UnitPriceTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// WithDefaults returns a copy of t where every key missing from t is taken
// from defaults. Keys already present in t are kept.
func (t UnitPriceTable) WithDefaults(defaults UnitPriceTable) UnitPriceTable {
	out := defaults.Clone()
	for k, v := range t {
		out[k] = v
	}
	return out
}

// DefaultPrices returns the reference price table used when a company has not
// configured its own prices yet.
func DefaultPrices() UnitPriceTable {
	return UnitPriceTable{
		KeySheet:      42.90,
		KeyStud:       24.90,
		KeyTrack:      19.90,
		KeyF530:       18.90,
		KeyPerimeter:  22.50,
		KeyScrewSheet: 0.06,
		KeyScrewMetal: 0.08,
		KeyTape:       19.90,
		KeyCompound:   4.50,
		KeyBucha6:     0.35,
		KeyRegulator:  1.20,
		KeyWire:       28.00,
		KeyPaint18L:   289.90,
		KeyMassa15Kg:  45.90,
		KeySandpaper:  1.80,
		KeyRoller:     29.90,
		KeyBrush:      14.90,
		KeyWideTape:   12.90,
		KeyCanvas:     3.50,
	}
}
