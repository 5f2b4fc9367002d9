package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DrywallCalc/internal/engine"
	"github.com/piwi3910/DrywallCalc/internal/model"
)

// Sheet names in the materials workbook.
const (
	MaterialsSheet = "Materiais"
	RoomsSheet     = "Ambientes"
)

// brlFormat is the custom number format for currency cells.
const brlFormat = `"R$" #,##0.00`

// GenerateMaterialsExcel builds the purchase list workbook for a calculated
// project. The materials sheet groups lines by category with live subtotal
// formulas and a totals block; the rooms sheet lists each room's geometry.
func GenerateMaterialsExcel(p model.Project) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), MaterialsSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeMaterialsSheet(f, styles, p); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(RoomsSheet); err != nil {
		return nil, fmt.Errorf("create rooms sheet: %w", err)
	}
	if err := writeRoomsSheet(f, styles, p.Rooms); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	title, header, item, money, section, label, total int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	defs := []struct {
		dst   *int
		name  string
		style *excelize.Style
	}{
		{&s.title, "title", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}},
		{&s.header, "header", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2563EB"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    thinBorders(),
		}},
		{&s.item, "item", &excelize.Style{Border: thinBorders()}},
		{&s.money, "money", &excelize.Style{Border: thinBorders(), CustomNumFmt: strPtr(brlFormat)}},
		{&s.section, "section", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}},
		{&s.label, "label", &excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{&s.total, "total", &excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: strPtr(brlFormat)}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, fmt.Errorf("create %s style: %w", d.name, err)
		}
		*d.dst = id
	}
	return s, nil
}

func writeMaterialsSheet(f *excelize.File, st sheetStyles, p model.Project) error {
	sheet := MaterialsSheet
	widths := map[string]float64{"A": 42, "B": 10, "C": 8, "D": 16, "E": 16}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	f.SetCellValue(sheet, "A1", sanitizeExcelCell("Lista de Materiais - "+p.Client.Name))
	f.SetCellStyle(sheet, "A1", "A1", st.title)
	f.SetCellValue(sheet, "A2", sanitizeExcelCell(p.Type))

	row := 4
	var subtotalCells []string
	drywall, painting := engine.SplitByCategory(p.Materials)
	for _, group := range []struct {
		title string
		lines []model.MaterialLine
	}{
		{model.CategoryDrywall.String(), drywall},
		{model.CategoryPainting.String(), painting},
	} {
		if len(group.lines) == 0 {
			continue
		}
		f.SetCellValue(sheet, cell("A", row), group.title)
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), st.section)
		row++

		for i, h := range []string{"Material", "Qtd", "Und", "Valor unit.", "Subtotal"} {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, cell(col, row), h)
		}
		f.SetCellStyle(sheet, cell("A", row), cell("E", row), st.header)
		row++

		first := row
		for _, l := range group.lines {
			f.SetCellValue(sheet, cell("A", row), sanitizeExcelCell(l.Name))
			f.SetCellValue(sheet, cell("B", row), l.Quantity)
			f.SetCellValue(sheet, cell("C", row), l.Unit)
			f.SetCellValue(sheet, cell("D", row), l.UnitPrice)
			if err := f.SetCellFormula(sheet, cell("E", row), fmt.Sprintf("B%d*D%d", row, row)); err != nil {
				return fmt.Errorf("set subtotal formula: %w", err)
			}
			f.SetCellStyle(sheet, cell("A", row), cell("C", row), st.item)
			f.SetCellStyle(sheet, cell("D", row), cell("E", row), st.money)
			row++
		}

		f.SetCellValue(sheet, cell("D", row), "Subtotal "+group.title+":")
		f.SetCellStyle(sheet, cell("D", row), cell("D", row), st.label)
		if err := f.SetCellFormula(sheet, cell("E", row), fmt.Sprintf("SUM(E%d:E%d)", first, row-1)); err != nil {
			return fmt.Errorf("set category subtotal formula: %w", err)
		}
		f.SetCellStyle(sheet, cell("E", row), cell("E", row), st.total)
		subtotalCells = append(subtotalCells, cell("E", row))
		row += 2
	}

	t := p.Totals
	summary := []struct {
		label string
		value float64
	}{
		{"Total materiais (calculado):", t.MaterialTotal},
		{"Mão de obra:", t.LaborTotal},
		{"Pintura (mão de obra):", t.PaintingTotal},
		{"Valor total:", t.TotalValue},
		{"Entrada (60%):", t.DownPayment},
		{"Saldo (40%):", t.Balance()},
	}
	if len(subtotalCells) > 0 {
		f.SetCellValue(sheet, cell("D", row), "Soma das listas:")
		f.SetCellStyle(sheet, cell("D", row), cell("D", row), st.label)
		formula := "SUM(" + strings.Join(subtotalCells, ",") + ")"
		if err := f.SetCellFormula(sheet, cell("E", row), formula); err != nil {
			return fmt.Errorf("set materials sum formula: %w", err)
		}
		f.SetCellStyle(sheet, cell("E", row), cell("E", row), st.total)
		row++
	}
	for _, s := range summary {
		f.SetCellValue(sheet, cell("D", row), s.label)
		f.SetCellStyle(sheet, cell("D", row), cell("D", row), st.label)
		f.SetCellValue(sheet, cell("E", row), s.value)
		f.SetCellStyle(sheet, cell("E", row), cell("E", row), st.total)
		row++
	}
	return nil
}

func writeRoomsSheet(f *excelize.File, st sheetStyles, rooms []model.Room) error {
	sheet := RoomsSheet
	headers := []string{"Ambiente", "Tipo", "Comprimento (m)", "Largura (m)", "Altura (m)", "Rebaixo (cm)", "Área (m²)", "Pintura"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, cell(col, 1), h)
		if err := f.SetColWidth(sheet, col, col, 16); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	f.SetCellStyle(sheet, "A1", "H1", st.header)

	for i, r := range rooms {
		row := i + 2
		painting := "Não"
		if r.Paints() {
			painting = "Sim"
		}
		values := []interface{}{
			sanitizeExcelCell(r.Name),
			r.Type.String(),
			float64(r.Dimensions.Length),
			float64(r.Dimensions.Width),
			float64(r.Dimensions.Height),
			float64(r.Dimensions.Drop),
			r.Area(),
			painting,
		}
		if err := f.SetSheetRow(sheet, cell("A", row), &values); err != nil {
			return fmt.Errorf("write room %d: %w", i+1, err)
		}
		f.SetCellStyle(sheet, cell("A", row), cell("H", row), st.item)
	}
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func strPtr(s string) *string {
	return &s
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
