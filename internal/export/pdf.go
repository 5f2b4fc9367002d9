// Package export renders calculated budgets to client-facing documents: a
// printable PDF and a materials spreadsheet.
package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/DrywallCalc/internal/engine"
	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/money"
	"github.com/piwi3910/DrywallCalc/internal/share"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
	qrSize       = 32.0
)

// accent is the blue used for section titles and the down payment box.
var accent = struct{ R, G, B int }{37, 99, 235}

// BudgetOptions controls optional parts of the budget document.
type BudgetOptions struct {
	ValidityDays int       // days the budget stays valid; defaults to model.DefaultValidityDays
	ShareQR      bool      // print a QR code that opens the WhatsApp summary
	Now          time.Time // issue date for projects that were never saved
}

var terms = []string{
	"Pagamento: o início dos trabalhos e a compra de materiais estão condicionados à confirmação do pagamento da entrada.",
	"Armazenamento: é responsabilidade do contratante disponibilizar local seco e seguro para a estocagem dos materiais.",
	"Garantia de quantitativos: a prestadora garante que não haverá falta de materiais para a execução do escopo contratado.",
	"Sobras de material: todo material excedente permanece sendo de propriedade da prestadora de serviços.",
	"Limpeza: todo entulho gerado pela instalação será retirado pela prestadora.",
}

// budgetDoc wraps the PDF with the cp1252 translator needed for Portuguese text.
type budgetDoc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// ExportBudgetPDF writes the client budget for a calculated project: company
// header, client block, rooms, drywall and painting materials, totals with the
// 60/40 payment split, validity date and terms.
func ExportBudgetPDF(path string, p model.Project, company model.Company, opts BudgetOptions) error {
	if len(p.Rooms) == 0 {
		return fmt.Errorf("project %s has no rooms to export", p.ID)
	}
	if opts.ValidityDays <= 0 {
		opts.ValidityDays = model.DefaultValidityDays
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	doc := &budgetDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 4, doc.tr(fmt.Sprintf("%s  |  Página %d", company.Name, pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	issued := share.Issued(p, opts.Now)
	doc.header(company, p, issued)
	doc.clientBlock(p)
	doc.roomsTable(p.Rooms)

	drywall, painting := engine.SplitByCategory(p.Materials)
	doc.materialsTable("Materiais de Drywall", drywall)
	doc.materialsTable("Materiais de Pintura", painting)

	doc.totals(p.Totals)
	doc.validity(issued, opts.ValidityDays)
	if opts.ShareQR {
		if err := doc.shareQR(share.ProjectLink(p, company, opts.ValidityDays)); err != nil {
			return err
		}
	}
	doc.termsAndSignatures()

	return pdf.OutputFileAndClose(path)
}

func (d *budgetDoc) header(company model.Company, p model.Project, issued time.Time) {
	pdf := d.pdf
	textX := marginLeft
	if company.Logo != "" {
		if _, err := os.Stat(company.Logo); err == nil {
			pdf.ImageOptions(company.Logo, marginLeft, marginTop, 18, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
			textX += 22
		}
	}

	pdf.SetXY(textX, marginTop)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(110, 8, d.tr(company.Name), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(110, 4, d.tr(fmt.Sprintf("CNPJ: %s | %s", company.CNPJ, company.Phone)), "", 2, "L", false, 0, "")
	pdf.CellFormat(110, 4, d.tr(company.Email), "", 0, "L", false, 0, "")

	pdf.SetXY(pageWidth-marginRight-60, marginTop)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(accent.R, accent.G, accent.B)
	pdf.CellFormat(60, 8, d.tr("ORÇAMENTO"), "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(60, 4, "Nº "+strings.ToUpper(p.ID), "", 2, "R", false, 0, "")
	pdf.CellFormat(60, 4, d.tr("Emissão: "+money.Date(issued)), "", 0, "R", false, 0, "")

	y := marginTop + 22
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(y + 4)
}

func (d *budgetDoc) clientBlock(p model.Project) {
	pdf := d.pdf
	half := contentWidth / 2
	top := pdf.GetY()

	d.label(marginLeft, top, "CLIENTE / DESTINATÁRIO")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(half, 6, d.tr(p.Client.Name), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{p.Client.Phone, p.Client.Email, p.Client.Address} {
		if line != "" {
			pdf.CellFormat(half, 4.5, d.tr(line), "", 2, "L", false, 0, "")
		}
	}
	bottom := pdf.GetY()

	d.label(marginLeft+half, top, "DESCRIÇÃO DA OBRA")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(half, 6, d.tr(p.Type), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(half, 4.5, d.tr("Área total: "+money.Area(p.TotalArea)), "", 2, "L", false, 0, "")
	painting := "Pintura não inclusa"
	if p.IncludePainting {
		painting = "Pintura inclusa"
	}
	pdf.CellFormat(half, 4.5, d.tr(painting), "", 2, "L", false, 0, "")

	if y := pdf.GetY(); y > bottom {
		bottom = y
	}
	pdf.SetY(bottom + 6)
}

// label prints a small uppercase section caption at (x, y) and leaves the
// cursor below it.
func (d *budgetDoc) label(x, y float64, text string) {
	pdf := d.pdf
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(accent.R, accent.G, accent.B)
	pdf.CellFormat(contentWidth/2, 5, d.tr(text), "", 2, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (d *budgetDoc) sectionTitle(text string) {
	pdf := d.pdf
	d.ensureSpace(rowHeight * 3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 8, d.tr(text), "", 1, "L", false, 0, "")
}

// ensureSpace starts a new page when fewer than h mm remain on the current one.
func (d *budgetDoc) ensureSpace(h float64) {
	if d.pdf.GetY()+h > pageHeight-marginBottom {
		d.pdf.AddPage()
	}
}

func (d *budgetDoc) tableHeader(widths []float64, headers []string) {
	pdf := d.pdf
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetX(marginLeft)
	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, d.tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func (d *budgetDoc) tableRow(widths []float64, aligns []string, cells []string, shade bool) {
	pdf := d.pdf
	if shade {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(marginLeft)
	for i, c := range cells {
		pdf.CellFormat(widths[i], rowHeight, d.tr(c), "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)
}

func (d *budgetDoc) roomsTable(rooms []model.Room) {
	d.sectionTitle("Ambientes")
	widths := []float64{55, 25, 50, 25, 25}
	aligns := []string{"L", "C", "C", "R", "C"}
	d.tableHeader(widths, []string{"Ambiente", "Tipo", "Dimensões", "Área", "Pintura"})

	for i, r := range rooms {
		d.ensureSpace(rowHeight)
		painting := "Não"
		if r.Paints() {
			painting = "Sim"
		}
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("Ambiente %d", i+1)
		}
		d.tableRow(widths, aligns, []string{name, r.Type.String(), describeDimensions(r), money.Area(r.Area()), painting}, i%2 == 0)
	}
	d.pdf.Ln(4)
}

// describeDimensions prints the measurements that drive a room's area.
func describeDimensions(r model.Room) string {
	dims := r.Dimensions
	if r.Type == model.RoomCeiling {
		s := fmt.Sprintf("%s x %s m", money.Quantity(float64(dims.Length)), money.Quantity(float64(dims.Width)))
		if dims.Drop > 0 {
			s += fmt.Sprintf(", rebaixo %s cm", money.Quantity(float64(dims.Drop)))
		}
		return s
	}
	return fmt.Sprintf("%s x %s m", money.Quantity(float64(dims.Length)), money.Quantity(float64(dims.Height)))
}

func (d *budgetDoc) materialsTable(title string, lines []model.MaterialLine) {
	if len(lines) == 0 {
		return
	}
	d.sectionTitle(title)
	widths := []float64{80, 20, 15, 32.5, 32.5}
	aligns := []string{"L", "R", "C", "R", "R"}
	d.tableHeader(widths, []string{"Material", "Qtd", "Und", "Valor unit.", "Subtotal"})

	for i, l := range lines {
		d.ensureSpace(rowHeight)
		d.tableRow(widths, aligns, []string{
			l.Name,
			money.Quantity(l.Quantity),
			l.Unit,
			money.BRL(l.UnitPrice),
			money.BRL(l.Subtotal()),
		}, i%2 == 0)
	}

	pdf := d.pdf
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], rowHeight, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], rowHeight, d.tr(money.BRL(engine.MaterialTotal(lines))), "1", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func (d *budgetDoc) totals(t model.Totals) {
	pdf := d.pdf
	d.ensureSpace(60)
	d.sectionTitle("Resumo do Investimento")

	items := []struct {
		label string
		value float64
	}{
		{"Materiais", t.MaterialTotal},
		{"Mão de obra (drywall)", t.LaborTotal},
		{"Mão de obra (pintura)", t.PaintingTotal},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		if item.value == 0 && item.label != "Materiais" {
			continue
		}
		pdf.SetX(marginLeft + 90)
		pdf.CellFormat(50, 6, d.tr(item.label+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, d.tr(money.BRL(item.value)), "", 1, "R", false, 0, "")
	}

	pdf.SetX(marginLeft + 90)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(50, 8, "Valor total:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, d.tr(money.BRL(t.TotalValue)), "T", 1, "R", false, 0, "")
	pdf.Ln(3)

	y := pdf.GetY()
	pdf.SetFillColor(accent.R, accent.G, accent.B)
	pdf.Rect(marginLeft, y, contentWidth, 18, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(marginLeft+4, y+2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(110, 5, d.tr("ENTRADA PARA AQUISIÇÃO DE MATERIAIS (60%)"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentWidth-118, 7, d.tr(money.BRL(t.DownPayment)), "", 1, "R", false, 0, "")
	pdf.SetXY(marginLeft+4, y+10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentWidth-8, 5, d.tr("Saldo final (40%): "+money.BRL(t.Balance())), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(y + 22)
}

func (d *budgetDoc) validity(issued time.Time, days int) {
	pdf := d.pdf
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(marginLeft)
	text := fmt.Sprintf("Validade do orçamento: %d dias (%s)", days, money.Date(money.ValidUntil(issued, days)))
	pdf.CellFormat(contentWidth, 6, d.tr(text), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// shareQR prints a QR code that opens the WhatsApp budget summary.
func (d *budgetDoc) shareQR(link string) error {
	png, err := qrcode.Encode(link, qrcode.Medium, 512)
	if err != nil {
		return fmt.Errorf("failed to generate share QR code: %w", err)
	}

	pdf := d.pdf
	d.ensureSpace(qrSize + 4)
	pdf.RegisterImageOptionsReader("share_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	y := pdf.GetY()
	pdf.ImageOptions("share_qr", marginLeft, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetXY(marginLeft+qrSize+4, y+qrSize/2-5)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentWidth-qrSize-4, 5, d.tr("Aponte a câmera do celular para receber o resumo deste orçamento pelo WhatsApp."), "", "L", false)
	pdf.SetY(y + qrSize + 4)
	return nil
}

func (d *budgetDoc) termsAndSignatures() {
	pdf := d.pdf
	d.ensureSpace(70)
	d.sectionTitle("Termos e Condições de Serviço")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	for _, term := range terms {
		pdf.SetX(marginLeft)
		pdf.MultiCell(contentWidth, 4, d.tr("• "+term), "", "J", false)
	}
	pdf.SetTextColor(0, 0, 0)

	y := pdf.GetY() + 20
	sigWidth := 75.0
	pdf.SetLineWidth(0.3)
	pdf.Line(marginLeft, y, marginLeft+sigWidth, y)
	pdf.Line(pageWidth-marginRight-sigWidth, y, pageWidth-marginRight, y)
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetXY(marginLeft, y+1)
	pdf.CellFormat(sigWidth, 4, "CONTRATADA (ASSINATURA E CARIMBO)", "", 0, "C", false, 0, "")
	pdf.SetXY(pageWidth-marginRight-sigWidth, y+1)
	pdf.CellFormat(sigWidth, 4, "CONTRATANTE (CIENTE E ACORDO)", "", 0, "C", false, 0, "")
}
