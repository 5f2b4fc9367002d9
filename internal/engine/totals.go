package engine

import "github.com/piwi3910/DrywallCalc/internal/model"

// DownPaymentRate is the share of the total paid up front to buy materials.
const DownPaymentRate = 0.60

// MaterialTotal sums quantity times unit price over lines.
func MaterialTotal(lines []model.MaterialLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Quantity * l.UnitPrice
	}
	return total
}

// CalculateTotals derives the monetary summary for a list of materials and a
// surface. Painting rooms have no drywall labor and are charged painting on
// area; other rooms are charged labor on area plus, when painting is
// included, painting on the painting area (both faces for walls). Inputs are
// not validated: NaN or negative values propagate into the result.
func CalculateTotals(materials []model.MaterialLine, t model.RoomType, area, laborPrice, paintingPrice float64, includePainting bool) model.Totals {
	materialTotal := MaterialTotal(materials)

	var laborTotal, paintingTotal float64
	if t == model.RoomPainting {
		paintingTotal = area * paintingPrice
	} else {
		laborTotal = area * laborPrice
		if includePainting {
			paintingTotal = PaintingArea(t, area) * paintingPrice
		}
	}

	return combine(materialTotal, laborTotal, paintingTotal)
}

func combine(materialTotal, laborTotal, paintingTotal float64) model.Totals {
	totalValue := materialTotal + laborTotal + paintingTotal
	return model.Totals{
		MaterialTotal: materialTotal,
		LaborTotal:    laborTotal,
		PaintingTotal: paintingTotal,
		TotalValue:    totalValue,
		DownPayment:   totalValue * DownPaymentRate,
	}
}
