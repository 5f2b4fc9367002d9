package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

func sampleProject(t *testing.T) model.Project {
	t.Helper()
	p := model.NewProject(model.Client{Name: "Maria Souza", Phone: "(11) 98888-7777"})
	require.NoError(t, p.AddRoom(model.NewRoom("Sala", model.RoomWall, wallDims(4, 2.5), false), 0))
	require.NoError(t, p.AddRoom(model.NewRoom("Quarto", model.RoomCeiling, ceilingDims(5, 4, 15), false), 0))
	require.NoError(t, p.AddRoom(model.NewRoom("Cozinha", model.RoomPainting, wallDims(3, 3), false), 0))
	return p
}

func TestCalculateProjectSingleRoom(t *testing.T) {
	p := model.NewProject(model.Client{Name: "João"})
	require.NoError(t, p.AddRoom(model.NewRoom("Sala", model.RoomWall, wallDims(4, 2.5), false), 0))

	CalculateProject(&p, model.DefaultPrices(), 35, 25)

	assert.Equal(t, "Parede", p.Type)
	assert.InDelta(t, 10.0, p.TotalArea, 1e-9)
	assert.False(t, p.IncludePainting)
	assert.Len(t, p.Materials, 8)
	assert.InDelta(t, 350.0, p.Totals.LaborTotal, 1e-9)
	assert.Zero(t, p.Totals.PaintingTotal)
	assert.Equal(t, 35.0, p.LaborPrice)
	assert.Equal(t, 25.0, p.PaintingPrice)
	assertTotalsConsistent(t, p.Totals)
}

func TestCalculateProjectMultipleRooms(t *testing.T) {
	p := sampleProject(t)

	CalculateProject(&p, model.DefaultPrices(), 35, 25)

	assert.Equal(t, "Múltiplos Ambientes (3)", p.Type)
	assert.InDelta(t, 39.0, p.TotalArea, 1e-9) // 10 + 20 + 9
	assert.True(t, p.IncludePainting, "a painting room makes the project include painting")

	// labor on wall and ceiling only, painting on the painting room only
	assert.InDelta(t, 30*35.0, p.Totals.LaborTotal, 1e-9)
	assert.InDelta(t, 9*25.0, p.Totals.PaintingTotal, 1e-9)
	assert.InDelta(t, MaterialTotal(p.Materials), p.Totals.MaterialTotal, 1e-9)
	assertTotalsConsistent(t, p.Totals)

	for _, r := range p.Rooms {
		assert.NotEmpty(t, r.Materials, r.Name)
	}
	assert.Equal(t, 17.0, findLine(t, p.Materials, NameSheet).Quantity)
	assert.Equal(t, 2.0, findLine(t, p.Materials, NameRoller).Quantity, "tool override applied to project list")
}

func TestCalculateProjectUsesConsolidatedMaterialTotal(t *testing.T) {
	p := model.NewProject(model.Client{Name: "Ana"})
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, p.AddRoom(model.NewRoom(name, model.RoomPainting, wallDims(3, 3), false), 0))
	}

	CalculateProject(&p, model.DefaultPrices(), 35, 25)

	assert.Equal(t, 2.0, findLine(t, p.Materials, NameRoller).Quantity)
	assert.Equal(t, 2.0, findLine(t, p.Materials, NameBrush).Quantity)
	assert.Equal(t, 3.0, findLine(t, p.Materials, NameWideTape).Quantity)
	assert.Equal(t, 60.0, findLine(t, p.Materials, NameCanvas).Quantity) // ceil(30/5)*10
	assert.InDelta(t, MaterialTotal(p.Materials), p.Totals.MaterialTotal, 1e-9)
}

func TestCalculateProjectToolOverridesSaveOnCheapCanvas(t *testing.T) {
	prices := model.DefaultPrices()
	prices[model.KeyCanvas] = 0.01

	p := model.NewProject(model.Client{Name: "Ana"})
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, p.AddRoom(model.NewRoom(name, model.RoomPainting, wallDims(3, 3), false), 0))
	}

	CalculateProject(&p, prices, 35, 25)

	var perRoom float64
	for _, r := range p.Rooms {
		perRoom += MaterialTotal(r.Materials)
	}
	// one roller and one brush fewer than pricing every room on its own
	assert.Less(t, p.Totals.MaterialTotal, perRoom)
	assert.InDelta(t, MaterialTotal(p.Materials), p.Totals.MaterialTotal, 1e-9)
}

func TestCalculateProjectIsRepeatable(t *testing.T) {
	p := sampleProject(t)

	CalculateProject(&p, model.DefaultPrices(), 35, 25)
	first := p.Totals
	firstMaterials := append([]model.MaterialLine(nil), p.Materials...)

	CalculateProject(&p, model.DefaultPrices(), 35, 25)

	assert.Equal(t, first, p.Totals)
	assert.Equal(t, firstMaterials, p.Materials)
}

func TestCalculateProjectEmpty(t *testing.T) {
	p := model.NewProject(model.Client{Name: "Vazio"})

	CalculateProject(&p, model.DefaultPrices(), 35, 25)

	assert.Empty(t, p.Materials)
	assert.Equal(t, model.Totals{}, p.Totals)
	assert.Equal(t, "Múltiplos Ambientes (0)", p.Type)
}

func TestCalculateProjectForcesPaintingOnPaintingRooms(t *testing.T) {
	p := model.NewProject(model.Client{Name: "Teste"})
	room := model.NewRoom("Hall", model.RoomPainting, wallDims(2, 2), false)
	room.IncludePainting = false
	p.Rooms = append(p.Rooms, room)

	CalculateProject(&p, model.DefaultPrices(), 35, 25)

	assert.True(t, p.Rooms[0].IncludePainting)
	assert.True(t, p.IncludePainting)
}

func TestRoomTotals(t *testing.T) {
	room := model.NewRoom("Sala", model.RoomWall, wallDims(4, 2.5), true)
	room.Materials = EstimateRoom(room, model.DefaultPrices())

	tot := RoomTotals(room, 35, 25)

	assert.InDelta(t, 350.0, tot.LaborTotal, 1e-9)
	assert.InDelta(t, 500.0, tot.PaintingTotal, 1e-9)
	assertTotalsConsistent(t, tot)
}

func TestProjectTypeLabel(t *testing.T) {
	ceiling := model.NewRoom("Forro", model.RoomCeiling, ceilingDims(2, 2, 0), false)
	paint := model.NewRoom("Pintura", model.RoomPainting, wallDims(2, 2), false)

	assert.Equal(t, "Forro", ProjectTypeLabel([]model.Room{ceiling}))
	assert.Equal(t, "Pintura", ProjectTypeLabel([]model.Room{paint}))
	assert.Equal(t, "Múltiplos Ambientes (2)", ProjectTypeLabel([]model.Room{ceiling, paint}))
}

func TestSplitByCategory(t *testing.T) {
	lines := Estimate(model.RoomWall, wallDims(4, 2.5), model.DefaultPrices(), true)

	drywall, painting := SplitByCategory(lines)

	assert.Len(t, drywall, 8)
	assert.Len(t, painting, 7)
	assert.Equal(t, NameSheet, drywall[0].Name)
	assert.Equal(t, NamePaint+bothSidesSuffix, painting[0].Name)
}
