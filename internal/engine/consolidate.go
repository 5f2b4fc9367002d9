package engine

import (
	"math"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// ToolOverride maps the summed quantity of a tool item to the quantity to buy.
type ToolOverride func(summed float64) float64

// ToolOverrides holds the purchase rule for each painting tool item. Each
// painted room adds its own allowance, and summing them across many rooms
// would over-buy, so the merged quantity is replaced by these rules.
var ToolOverrides = map[string]ToolOverride{
	NameRoller:   fixedQuantity(2),
	NameBrush:    fixedQuantity(2),
	NameWideTape: round2,
	NameCanvas:   func(summed float64) float64 { return math.Ceil(summed/5) * 10 },
}

func fixedQuantity(q float64) ToolOverride {
	return func(float64) float64 { return q }
}

// IsTool reports whether a line is a painting tool item subject to ToolOverrides.
func IsTool(line model.MaterialLine) bool {
	if line.Category != model.CategoryPainting {
		return false
	}
	_, ok := ToolOverrides[line.Name]
	return ok
}

// Consolidate merges the material lists of several rooms into one purchase
// list. Lines sharing category and name are summed; tool items are then
// replaced by their override and every other quantity is rounded to two
// decimals. Output order follows the first occurrence of each line.
func Consolidate(rooms [][]model.MaterialLine) []model.MaterialLine {
	index := make(map[model.LineKey]int)
	merged := []model.MaterialLine{}

	for _, lines := range rooms {
		for _, line := range lines {
			key := line.Key()
			if i, ok := index[key]; ok {
				merged[i].Quantity += line.Quantity
				continue
			}
			index[key] = len(merged)
			merged = append(merged, line)
		}
	}

	for i, line := range merged {
		if IsTool(line) {
			merged[i].Quantity = ToolOverrides[line.Name](line.Quantity)
			continue
		}
		merged[i].Quantity = round2(line.Quantity)
	}
	return merged
}
