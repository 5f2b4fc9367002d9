package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// DefaultDXFScale converts millimeter drawings to meters.
const DefaultDXFScale = 0.001

// DefaultWallHeight is used for wall runs when the caller gives no height.
const DefaultWallHeight model.Meters = 2.70

// minRunLength drops slivers left over from snapping in the drawing.
const minRunLength = 0.01 // m

// DXFOptions controls how drawing geometry becomes rooms.
type DXFOptions struct {
	Scale           float64           // drawing units to meters
	WallHeight      model.Meters      // height of every wall run
	CeilingDrop     model.Centimeters // drop of every ceiling
	IncludePainting bool
}

func (o DXFOptions) withDefaults() DXFOptions {
	if o.Scale <= 0 {
		o.Scale = DefaultDXFScale
	}
	if o.WallHeight <= 0 {
		o.WallHeight = DefaultWallHeight
	}
	return o
}

// ImportDXF imports rooms from a floor plan. Each closed LWPOLYLINE becomes
// a ceiling sized by its bounding box. Each LINE, and each open LWPOLYLINE
// taken as a whole, becomes a wall run with the configured height.
func ImportDXF(path string, opts DXFOptions) ImportResult {
	drawing, err := dxf.Open(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open DXF file: %v", err)}}
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return ImportResult{Errors: []string{"DXF file contains no entities"}}
	}
	return roomsFromEntities(entities, opts)
}

func roomsFromEntities(entities []entity.Entity, opts DXFOptions) ImportResult {
	opts = opts.withDefaults()
	result := ImportResult{}
	var ceilings, walls, skipped int

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 2 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			if e.Closed && len(e.Vertices) >= 3 {
				length, width := boundingBox(e.Vertices)
				length *= opts.Scale
				width *= opts.Scale
				if length < minRunLength || width < minRunLength {
					result.Warnings = append(result.Warnings,
						fmt.Sprintf("Skipped degenerate outline (%.2f x %.2f m)", length, width))
					continue
				}
				ceilings++
				dims := model.Dimensions{Length: model.Meters(length), Width: model.Meters(width), Drop: opts.CeilingDrop}
				result.Rooms = append(result.Rooms,
					model.NewRoom(fmt.Sprintf("Forro %d", ceilings), model.RoomCeiling, dims, opts.IncludePainting))
				continue
			}
			if run := pathLength(e.Vertices) * opts.Scale; run >= minRunLength {
				walls++
				result.Rooms = append(result.Rooms, wallRoom(walls, run, opts))
			}

		case *entity.Line:
			run := math.Hypot(e.End[0]-e.Start[0], e.End[1]-e.Start[1]) * opts.Scale
			if run < minRunLength {
				continue
			}
			walls++
			result.Rooms = append(result.Rooms, wallRoom(walls, run, opts))

		default:
			skipped++
		}
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Ignored %d unsupported entities", skipped))
	}
	if len(result.Rooms) == 0 {
		result.Errors = append(result.Errors, "No walls or ceilings found in DXF file")
	}
	return result
}

func wallRoom(n int, run float64, opts DXFOptions) model.Room {
	dims := model.Dimensions{Length: model.Meters(run), Height: opts.WallHeight}
	return model.NewRoom(fmt.Sprintf("Parede %d", n), model.RoomWall, dims, opts.IncludePainting)
}

// boundingBox returns the extent of the vertices along X and Y.
func boundingBox(vertices [][]float64) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vertices {
		minX = math.Min(minX, v[0])
		maxX = math.Max(maxX, v[0])
		minY = math.Min(minY, v[1])
		maxY = math.Max(maxY, v[1])
	}
	return maxX - minX, maxY - minY
}

func pathLength(vertices [][]float64) float64 {
	var total float64
	for i := 1; i < len(vertices); i++ {
		total += math.Hypot(vertices[i][0]-vertices[i-1][0], vertices[i][1]-vertices[i-1][1])
	}
	return total
}
