package engine

import (
	"fmt"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// PricingScenario defines a named set of prices to compare a budget against.
type PricingScenario struct {
	Name          string
	Prices        model.UnitPriceTable
	LaborPrice    float64
	PaintingPrice float64
	PaintAll      bool // include painting in every room
}

// ScenarioResult holds the recalculated totals for a single scenario.
type ScenarioResult struct {
	Scenario     PricingScenario
	Totals       model.Totals
	MaterialRows int
	DeltaTotal   float64 // difference to the first scenario's total
}

// CompareScenarios recalculates a copy of the project for each scenario and
// returns the results in scenario order. The project itself is not modified.
func CompareScenarios(p model.Project, scenarios []PricingScenario) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		variant := p
		variant.Rooms = make([]model.Room, len(p.Rooms))
		copy(variant.Rooms, p.Rooms)
		if scenario.PaintAll {
			for i := range variant.Rooms {
				variant.Rooms[i].IncludePainting = true
			}
		}

		CalculateProject(&variant, scenario.Prices, scenario.LaborPrice, scenario.PaintingPrice)

		result := ScenarioResult{
			Scenario:     scenario,
			Totals:       variant.Totals,
			MaterialRows: len(variant.Materials),
		}
		if len(results) > 0 {
			result.DeltaTotal = variant.Totals.TotalValue - results[0].Totals.TotalValue
		}
		results = append(results, result)
	}

	return results
}

// BuildDefaultScenarios generates what-if alternatives around the company's
// current prices.
func BuildDefaultScenarios(company model.Company) []PricingScenario {
	base := PricingScenario{
		Name:          "Preços atuais",
		Prices:        company.MaterialPrices,
		LaborPrice:    company.DefaultLaborPrice,
		PaintingPrice: company.DefaultPaintingPrice,
	}
	scenarios := []PricingScenario{base}

	paintAll := base
	paintAll.Name = "Pintura em todos os ambientes"
	paintAll.PaintAll = true
	scenarios = append(scenarios, paintAll)

	if company.DefaultLaborPrice > 0 {
		labor := base
		labor.LaborPrice = company.DefaultLaborPrice * 1.10
		labor.Name = fmt.Sprintf("Mão de obra +10%% (%.2f/m²)", labor.LaborPrice)
		scenarios = append(scenarios, labor)
	}

	return scenarios
}

// ScenariosFromPriceLists returns one scenario per saved price list, using the
// company's labor and painting prices. Keys a list does not price are taken
// from the company table.
func ScenariosFromPriceLists(company model.Company, lists []model.PriceList) []PricingScenario {
	scenarios := make([]PricingScenario, 0, len(lists))
	for _, pl := range lists {
		scenarios = append(scenarios, PricingScenario{
			Name:          pl.Name,
			Prices:        pl.Resolve(company.MaterialPrices),
			LaborPrice:    company.DefaultLaborPrice,
			PaintingPrice: company.DefaultPaintingPrice,
		})
	}
	return scenarios
}
