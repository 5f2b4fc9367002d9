package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/DrywallCalc/internal/engine"
	"github.com/piwi3910/DrywallCalc/internal/model"
)

// buildTestProject returns a calculated three-room project covering every room type.
func buildTestProject() model.Project {
	p := model.NewProject(model.Client{Name: "João Araújo", Phone: "(11) 98888-7777", Address: "Rua das Acácias, 12"})
	p.CreatedAt = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	p.Rooms = []model.Room{
		model.NewRoom("Sala", model.RoomWall, model.Dimensions{Length: 4, Height: 2.5}, true),
		model.NewRoom("Quarto", model.RoomCeiling, model.Dimensions{Length: 5, Width: 4, Drop: 15}, false),
		model.NewRoom("Cozinha", model.RoomPainting, model.Dimensions{Length: 3, Height: 3}, false),
	}
	engine.CalculateProject(&p, model.DefaultPrices(), model.DefaultLaborPrice, model.DefaultPaintingPrice)
	return p
}

func assertPDF(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	head := make([]byte, 5)
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open PDF: %v", err)
	}
	defer f.Close()
	if _, err := f.Read(head); err != nil || string(head) != "%PDF-" {
		t.Errorf("file does not start with a PDF header: %q", head)
	}
	return info.Size()
}

func TestExportBudgetPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orcamento.pdf")

	err := ExportBudgetPDF(path, buildTestProject(), model.DefaultCompany(), BudgetOptions{})
	if err != nil {
		t.Fatalf("ExportBudgetPDF returned error: %v", err)
	}

	if size := assertPDF(t, path); size < 1000 {
		t.Errorf("PDF file seems too small: %d bytes", size)
	}
}

func TestExportBudgetPDF_NoRooms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	p := model.NewProject(model.Client{Name: "Vazio"})
	if err := ExportBudgetPDF(path, p, model.DefaultCompany(), BudgetOptions{}); err == nil {
		t.Fatal("expected error for project without rooms, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("no file should be written, stat err = %v", err)
	}
}

func TestExportBudgetPDF_WithShareQR(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.pdf")
	withQR := filepath.Join(dir, "qr.pdf")
	p := buildTestProject()

	if err := ExportBudgetPDF(plain, p, model.DefaultCompany(), BudgetOptions{}); err != nil {
		t.Fatalf("ExportBudgetPDF returned error: %v", err)
	}
	if err := ExportBudgetPDF(withQR, p, model.DefaultCompany(), BudgetOptions{ShareQR: true, ValidityDays: 15}); err != nil {
		t.Fatalf("ExportBudgetPDF with QR returned error: %v", err)
	}

	if assertPDF(t, withQR) <= assertPDF(t, plain) {
		t.Error("PDF with an embedded QR image should be larger than without")
	}
}

func TestExportBudgetPDF_ManyRoomsSpansPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	p := model.NewProject(model.Client{Name: "Condomínio"})
	for i := 0; i < model.DefaultMaxRooms; i++ {
		p.Rooms = append(p.Rooms, model.NewRoom("", model.RoomWall, model.Dimensions{Length: 3, Height: 2.7}, i%2 == 0))
	}
	engine.CalculateProject(&p, model.DefaultPrices(), 35, 25)

	if err := ExportBudgetPDF(path, p, model.DefaultCompany(), BudgetOptions{}); err != nil {
		t.Fatalf("ExportBudgetPDF returned error: %v", err)
	}
	assertPDF(t, path)
}

func TestExportBudgetPDF_MissingLogoIsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.pdf")
	company := model.DefaultCompany()
	company.Logo = filepath.Join(t.TempDir(), "does-not-exist.png")

	if err := ExportBudgetPDF(path, buildTestProject(), company, BudgetOptions{}); err != nil {
		t.Fatalf("missing logo should not fail the export: %v", err)
	}
	assertPDF(t, path)
}

func TestExportBudgetPDF_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.pdf")

	if err := ExportBudgetPDF(path, buildTestProject(), model.DefaultCompany(), BudgetOptions{}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestDescribeDimensions(t *testing.T) {
	tests := []struct {
		room model.Room
		want string
	}{
		{model.NewRoom("a", model.RoomWall, model.Dimensions{Length: 4, Height: 2.5}, false), "4 x 2,5 m"},
		{model.NewRoom("b", model.RoomCeiling, model.Dimensions{Length: 5, Width: 4, Drop: 15}, false), "5 x 4 m, rebaixo 15 cm"},
		{model.NewRoom("c", model.RoomCeiling, model.Dimensions{Length: 5, Width: 4}, false), "5 x 4 m"},
	}
	for _, tt := range tests {
		if got := describeDimensions(tt.room); got != tt.want {
			t.Errorf("describeDimensions(%s) = %q, want %q", tt.room.Name, got, tt.want)
		}
	}
}
