// Package importer reads room lists for batch budgets from spreadsheets,
// floor plans and job files. It supports automatic delimiter detection,
// flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// ImportResult holds the results of an import operation. Rows that fail are
// reported in Errors and left out of Rooms.
type ImportResult struct {
	Rooms    []model.Room
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name     int
	Type     int
	Length   int
	Width    int
	Height   int
	Drop     int
	Painting int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "nome", "ambiente", "room", "cômodo", "comodo", "descrição", "descricao"},
	"type":     {"type", "tipo", "serviço", "servico", "service"},
	"length":   {"length", "comprimento", "len", "c"},
	"width":    {"width", "largura", "w"},
	"height":   {"height", "altura", "pé-direito", "pé direito", "pe direito", "h"},
	"drop":     {"drop", "rebaixo", "descida", "rebaixamento", "drop (cm)", "rebaixo (cm)"},
	"painting": {"painting", "pintura", "paint", "pintar", "incluir pintura"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. A row
// holding any numeric cell is never a header. Returns the mapping and true
// if a header was detected, or the positional mapping Name, Type, Length,
// Width, Height, Drop, Painting and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Name: -1, Type: -1, Length: -1, Width: -1, Height: -1, Drop: -1, Painting: -1}
	slots := map[string]*int{
		"name":     &mapping.Name,
		"type":     &mapping.Type,
		"length":   &mapping.Length,
		"width":    &mapping.Width,
		"height":   &mapping.Height,
		"drop":     &mapping.Drop,
		"painting": &mapping.Painting,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if _, err := parseNumber(normalized); err == nil {
			// "Pintura" is both a header and a room type; data rows carry numbers
			isHeader = false
			break
		}
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if *slots[role] == -1 {
						*slots[role] = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Name: 0, Type: 1, Length: 2, Width: 3, Height: 4, Drop: 5, Painting: 6}, false
	}
	return mapping, true
}

// parseNumber accepts both "2.5" and the Brazilian "2,5".
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// parseFlag converts a yes/no cell. It returns the value and whether the
// string was recognized.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sim", "s", "yes", "y", "true", "1", "x":
		return true, true
	case "", "não", "nao", "n", "no", "false", "0", "-":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDimension reads a required positive-looking number from a cell.
func parseDimension(row []string, idx int, what, rowLabel string) (float64, string) {
	raw := getCell(row, idx)
	if raw == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, what)
	}
	v, err := parseNumber(raw)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, what, raw)
	}
	return v, ""
}

// parseRow extracts a Room from a row using the given column mapping.
// Returns the room, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, roomCount int) (model.Room, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Ambiente %d", roomCount+1)
	}

	typeStr := getCell(row, mapping.Type)
	if typeStr == "" {
		return model.Room{}, fmt.Sprintf("%s: Missing type value", rowLabel), ""
	}
	roomType, err := model.ParseRoomType(typeStr)
	if err != nil {
		return model.Room{}, fmt.Sprintf("%s: Invalid type '%s'", rowLabel, typeStr), ""
	}

	var dims model.Dimensions
	length, errMsg := parseDimension(row, mapping.Length, "length", rowLabel)
	if errMsg != "" {
		return model.Room{}, errMsg, ""
	}
	dims.Length = model.Meters(length)

	if roomType == model.RoomCeiling {
		width, errMsg := parseDimension(row, mapping.Width, "width", rowLabel)
		if errMsg != "" {
			return model.Room{}, errMsg, ""
		}
		dims.Width = model.Meters(width)
		if raw := getCell(row, mapping.Drop); raw != "" {
			drop, err := parseNumber(raw)
			if err != nil {
				return model.Room{}, fmt.Sprintf("%s: Invalid drop '%s'", rowLabel, raw), ""
			}
			dims.Drop = model.Centimeters(drop)
		}
	} else {
		height, errMsg := parseDimension(row, mapping.Height, "height", rowLabel)
		if errMsg != "" {
			return model.Room{}, errMsg, ""
		}
		dims.Height = model.Meters(height)
	}

	var warning string
	paintStr := getCell(row, mapping.Painting)
	painting, ok := parseFlag(paintStr)
	if !ok {
		warning = fmt.Sprintf("%s: Unknown painting flag '%s', painting not included", rowLabel, paintStr)
	}

	room := model.NewRoom(name, roomType, dims, painting)
	if err := model.ValidateRoom(room); err != nil {
		return model.Room{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}
	return room, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports rooms from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports rooms from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports rooms from the first sheet of an Excel (.xlsx) file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Type == -1 {
			missing = append(missing, "Type")
		}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Width == -1 && mapping.Height == -1 {
			missing = append(missing, "Width or Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		if _, err := parseNumber(rows[0][2]); err != nil {
			// unrecognized header, keep positional mapping
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		room, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Rooms))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Rooms = append(result.Rooms, room)
	}

	if len(result.Rooms) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}
