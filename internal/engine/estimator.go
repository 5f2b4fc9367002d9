// Package engine turns room geometry and unit prices into itemized material
// lists, merges them across rooms and derives the budget totals. Every
// function here is pure and safe to call concurrently.
package engine

import (
	"math"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// WasteFactor inflates every raw quantity to cover cutting and installation loss.
// It is applied before any rounding.
const WasteFactor = 1.10

// Packaging and yield constants.
const (
	SheetWidth      = 1.20 // m
	SheetLength     = 1.80 // m
	SheetArea       = SheetWidth * SheetLength
	ProfileLength   = 3.0  // m, tracks, studs, F530 and perimeter trim
	StudSpacing     = 0.6  // m
	TapeRollLength  = 90.0 // m per roll of joint tape
	GN25BoxSize     = 1000 // screws per box
	Bucha6BoxSize   = 100  // anchors per box
	PaintCanLiters  = 18.0
	PaintYield18L   = 80.0 // m² covered by one 18 L can
	MassaBagKg      = 15.0
	MassaYield15Kg  = 12.0 // m² covered by one 15 kg bag
	WireYieldPerKg  = 10.0 // m of wire per kg
	WiresPerF530    = 3
	SandpaperPer100 = 2.0 // sheets per 100 m²
	MinSandpaper    = 2
)

// Material line names as printed on budgets.
const (
	NameSheet      = "Chapa Drywall 1.20x1.80m"
	NameTrack      = "Guia 30mm 3m"
	NameStud       = "Montante 48mm 3m"
	NameScrewMetal = "Parafuso Metal-Metal (LB)"
	NameGN25       = "Parafuso GN 25 (Gesso-Metal)"
	NameBucha6     = "Bucha 6mm c/ Parafuso (Fixação)"
	NameTape       = "Fita Telada"
	NameCompound   = "Massa para Drywall"
	NamePerimeter  = "Cantoneira/Tabica 3m"
	NameF530       = "Perfil F530 3m"
	NameRegulator  = "Regulador F530"
	NameWire       = "Arame Galvanizado nº 18"
	NamePaint      = "Tinta Acrílica (Consumo)"
	NameMassa      = "Massa Corrida (Consumo)"
	NameSandpaper  = "Lixa (Folha)"
	NameRoller     = "Rolo de Pintura"
	NameBrush      = "Pincel / Trincha"
	NameWideTape   = "Fita Crepe Larga"
	NameCanvas     = "Lona Plástica (Proteção)"

	bothSidesSuffix = " - 2 Lados"
)

// Units.
const (
	UnitPiece  = "und"
	UnitKg     = "kg"
	UnitLiter  = "L"
	UnitMeters = "m"
)

// canvasPerRoom is the protective sheeting allowance added by each painted room, in meters.
const canvasPerRoom = 10

// Estimate computes the ordered material list for one room. Drywall lines come
// first (none for painting rooms), followed by painting lines when the room is
// a painting room or includePainting is set. It never fails: degenerate
// dimensions produce zero or minimal quantities.
func Estimate(t model.RoomType, dims model.Dimensions, prices model.UnitPriceTable, includePainting bool) []model.MaterialLine {
	return estimator{waste: WasteFactor}.estimate(t, dims, prices, includePainting)
}

// estimator carries the waste factor so quantities can be compared against an
// uninflated estimate.
type estimator struct {
	waste float64
}

func (e estimator) estimate(t model.RoomType, dims model.Dimensions, prices model.UnitPriceTable, includePainting bool) []model.MaterialLine {
	area := dims.Area(t)
	var lines []model.MaterialLine

	switch t {
	case model.RoomWall:
		lines = e.wallLines(float64(dims.Length), area, prices)
	case model.RoomCeiling:
		lines = e.ceilingLines(float64(dims.Length), float64(dims.Width), dims.Drop, area, prices)
	}

	if t == model.RoomPainting || includePainting {
		lines = append(lines, paintingLines(t, area, prices)...)
	}
	if lines == nil {
		lines = []model.MaterialLine{}
	}
	return lines
}

// EstimateRoom is Estimate applied to a room's own type, geometry and painting flag.
func EstimateRoom(r model.Room, prices model.UnitPriceTable) []model.MaterialLine {
	return Estimate(r.Type, r.Dimensions, prices, r.Paints())
}

func (e estimator) wallLines(length, area float64, prices model.UnitPriceTable) []model.MaterialLine {
	numSheets := e.sheetCount(area)
	numTracks := math.Ceil(((length * 2) / ProfileLength) * e.waste)
	numStuds := math.Ceil(((length / StudSpacing) + 1) * e.waste)

	return []model.MaterialLine{
		drywall(NameSheet, numSheets, UnitPiece, prices.Price(model.KeySheet)),
		drywall(NameTrack, numTracks, UnitPiece, prices.Price(model.KeyTrack)),
		drywall(NameStud, numStuds, UnitPiece, prices.Price(model.KeyStud)),
		drywall(NameScrewMetal, math.Ceil((numStuds*4)*e.waste), UnitPiece, prices.Price(model.KeyScrewMetal)),
		drywall(NameGN25, e.gn25Count(numSheets), UnitPiece, prices.Price(model.KeyScrewSheet)),
		drywall(NameBucha6, roundUpToBox((numTracks*5)*e.waste, Bucha6BoxSize), UnitPiece, prices.Price(model.KeyBucha6)),
		drywall(NameTape, e.tapeRolls(area), UnitPiece, prices.Price(model.KeyTape)),
		drywall(NameCompound, e.compoundKg(area), UnitKg, prices.Price(model.KeyCompound)),
	}
}

func (e estimator) ceilingLines(length, width float64, drop model.Centimeters, area float64, prices model.UnitPriceTable) []model.MaterialLine {
	perimeter := (length + width) * 2
	numSheets := e.sheetCount(area)
	numPerimeter := math.Ceil((perimeter / ProfileLength) * e.waste)
	numF530 := math.Ceil(((length / StudSpacing) * (width / ProfileLength)) * e.waste)
	numHangers := math.Ceil((area * 1.2) * e.waste)

	// 5 anchors per perimeter trim plus one per wire hanger.
	fixing := roundUpToBox(((numPerimeter*5)+numHangers)*e.waste, Bucha6BoxSize)

	lines := []model.MaterialLine{
		drywall(NameSheet, numSheets, UnitPiece, prices.Price(model.KeySheet)),
		drywall(NamePerimeter, numPerimeter, UnitPiece, prices.Price(model.KeyPerimeter)),
		drywall(NameF530, numF530, UnitPiece, prices.Price(model.KeyF530)),
		drywall(NameRegulator, numHangers, UnitPiece, prices.Price(model.KeyRegulator)),
		drywall(NameGN25, e.gn25Count(numSheets), UnitPiece, prices.Price(model.KeyScrewSheet)),
		drywall(NameBucha6, fixing, UnitPiece, prices.Price(model.KeyBucha6)),
		drywall(NameTape, e.tapeRolls(area), UnitPiece, prices.Price(model.KeyTape)),
		drywall(NameCompound, e.compoundKg(area), UnitKg, prices.Price(model.KeyCompound)),
	}

	if kg := e.wireKg(numF530, drop); kg > 0 {
		lines = append(lines, drywall(NameWire, kg, UnitKg, prices.Price(model.KeyWire)))
	}
	return lines
}

func paintingLines(t model.RoomType, area float64, prices model.UnitPriceTable) []model.MaterialLine {
	paintingArea := PaintingArea(t, area)
	suffix := ""
	if t == model.RoomWall {
		suffix = bothSidesSuffix
	}

	liters := (paintingArea / PaintYield18L) * PaintCanLiters
	massaKg := (paintingArea / MassaYield15Kg) * MassaBagKg
	sandpaper := math.Max(MinSandpaper, math.Ceil((paintingArea/100)*SandpaperPer100))

	return []model.MaterialLine{
		painting(NamePaint+suffix, round2(liters), UnitLiter, prices.Price(model.KeyPaint18L)/PaintCanLiters),
		painting(NameMassa+suffix, round2(massaKg), UnitKg, prices.Price(model.KeyMassa15Kg)/MassaBagKg),
		painting(NameSandpaper, sandpaper, UnitPiece, prices.Price(model.KeySandpaper)),
		painting(NameRoller, 1, UnitPiece, prices.Price(model.KeyRoller)),
		painting(NameBrush, 1, UnitPiece, prices.Price(model.KeyBrush)),
		painting(NameWideTape, 1, UnitPiece, prices.Price(model.KeyWideTape)),
		painting(NameCanvas, canvasPerRoom, UnitMeters, prices.Price(model.KeyCanvas)),
	}
}

// PaintingArea returns the surface to paint: both faces of a wall, the plain
// area otherwise.
func PaintingArea(t model.RoomType, area float64) float64 {
	if t == model.RoomWall {
		return area * 2
	}
	return area
}

func (e estimator) sheetCount(area float64) float64 {
	return math.Ceil((area / SheetArea) * e.waste)
}

// gn25Count is 30 screws per sheet, sold in full boxes.
func (e estimator) gn25Count(numSheets float64) float64 {
	return roundUpToBox((numSheets*30)*e.waste, GN25BoxSize)
}

// tapeRolls assumes about 1.5 m of joint tape per m².
func (e estimator) tapeRolls(area float64) float64 {
	return math.Ceil(((area * 1.5) / TapeRollLength) * e.waste)
}

func (e estimator) compoundKg(area float64) float64 {
	return math.Ceil((area * 0.8) * e.waste)
}

// wireKg converts the hanger wire length for a ceiling into kilograms,
// rounded up to one decimal place.
func (e estimator) wireKg(numF530 float64, drop model.Centimeters) float64 {
	totalLength := (numF530 * WiresPerF530) * float64(drop.Meters())
	return math.Ceil((totalLength/WireYieldPerKg)*e.waste*10) / 10
}

// roundUpToBox rounds raw up to the next multiple of box.
func roundUpToBox(raw float64, box int) float64 {
	b := float64(box)
	return math.Ceil(raw/b) * b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func drywall(name string, qty float64, unit string, price float64) model.MaterialLine {
	return model.MaterialLine{Category: model.CategoryDrywall, Name: name, Quantity: qty, Unit: unit, UnitPrice: price}
}

func painting(name string, qty float64, unit string, price float64) model.MaterialLine {
	return model.MaterialLine{Category: model.CategoryPainting, Name: name, Quantity: qty, Unit: unit, UnitPrice: price}
}
