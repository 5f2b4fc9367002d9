package engine

import (
	"fmt"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// RoomTotals returns the totals of a single room using its own estimated materials.
func RoomTotals(r model.Room, laborPrice, paintingPrice float64) model.Totals {
	return CalculateTotals(r.Materials, r.Type, r.Area(), laborPrice, paintingPrice, r.Paints())
}

// ProjectTypeLabel names the service on a budget: the room type for a single
// room, otherwise a multi-room label with the room count.
func ProjectTypeLabel(rooms []model.Room) string {
	if len(rooms) == 1 {
		return rooms[0].Type.String()
	}
	return fmt.Sprintf("Múltiplos Ambientes (%d)", len(rooms))
}

// CalculateProject estimates every room, merges the material lists into a
// single purchase list and fills in the project totals. Labor and painting
// are accumulated per room; the material total is taken from the merged list
// so tool overrides and rounding are what the client pays for.
func CalculateProject(p *model.Project, prices model.UnitPriceTable, laborPrice, paintingPrice float64) {
	perRoom := make([][]model.MaterialLine, len(p.Rooms))
	var laborTotal, paintingTotal, totalArea float64
	includesPainting := false

	for i := range p.Rooms {
		room := &p.Rooms[i]
		if room.Type == model.RoomPainting {
			room.IncludePainting = true
		}
		room.Materials = EstimateRoom(*room, prices)
		perRoom[i] = room.Materials

		rt := RoomTotals(*room, laborPrice, paintingPrice)
		laborTotal += rt.LaborTotal
		paintingTotal += rt.PaintingTotal
		totalArea += room.Area()
		includesPainting = includesPainting || room.Paints()
	}

	p.Materials = Consolidate(perRoom)
	p.Totals = combine(MaterialTotal(p.Materials), laborTotal, paintingTotal)
	p.Type = ProjectTypeLabel(p.Rooms)
	p.TotalArea = totalArea
	p.IncludePainting = includesPainting
	p.LaborPrice = laborPrice
	p.PaintingPrice = paintingPrice
}

// SplitByCategory separates drywall lines from painting lines, preserving order.
func SplitByCategory(lines []model.MaterialLine) (drywall, painting []model.MaterialLine) {
	for _, l := range lines {
		if l.Category == model.CategoryPainting {
			painting = append(painting, l)
		} else {
			drywall = append(drywall, l)
		}
	}
	return drywall, painting
}
