package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/engine"
	"github.com/piwi3910/DrywallCalc/internal/export"
	"github.com/piwi3910/DrywallCalc/internal/importer"
	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/project"
)

type estimateOptions struct {
	template   string
	priceList  string
	clientName string
	phone      string
	labor      float64
	painting   float64
	paintAll   bool
	wallHeight float64
	drop       float64
	dxfScale   float64
	pdfPath    string
	xlsxPath   string
	shareQR    bool
	save       bool
}

// budgetInput is a draft project with the prices it should be calculated with.
type budgetInput struct {
	project       model.Project
	prices        model.UnitPriceTable
	laborPrice    float64
	paintingPrice float64
}

func estimateCmd(a *app) *cobra.Command {
	var opts estimateOptions

	cmd := &cobra.Command{
		Use:   "estimate [job.yaml | rooms.csv | rooms.xlsx | plan.dxf]",
		Short: "Calculate a budget from a job file, spreadsheet, floor plan or template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.template == "" {
				return fmt.Errorf("give an input file or --template")
			}
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return a.runEstimate(cmd, source, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.template, "template", "", "start from a saved room template")
	f.StringVar(&opts.priceList, "price-list", "", "price the materials with a saved supplier price list")
	f.StringVar(&opts.clientName, "client", "", "client name")
	f.StringVar(&opts.phone, "phone", "", "client phone, used for the WhatsApp link")
	f.Float64Var(&opts.labor, "labor", 0, "drywall labor price per m² (default from company)")
	f.Float64Var(&opts.painting, "painting", 0, "painting labor price per m² (default from company)")
	f.BoolVar(&opts.paintAll, "paint-all", false, "include painting in every room")
	f.Float64Var(&opts.wallHeight, "wall-height", float64(importer.DefaultWallHeight), "wall height in m for DXF wall runs")
	f.Float64Var(&opts.drop, "drop", 0, "ceiling drop in cm for DXF ceilings")
	f.Float64Var(&opts.dxfScale, "dxf-scale", importer.DefaultDXFScale, "DXF drawing units to meters")
	f.StringVar(&opts.pdfPath, "pdf", "", "write the budget PDF to this path")
	f.StringVar(&opts.xlsxPath, "xlsx", "", "write the materials workbook to this path")
	f.BoolVar(&opts.shareQR, "qr", false, "print a WhatsApp QR code on the PDF")
	f.BoolVar(&opts.save, "save", false, "save the budget to the project history")
	return cmd
}

func (a *app) runEstimate(cmd *cobra.Command, source string, opts estimateOptions) error {
	in, err := a.buildInput(source, opts)
	if err != nil {
		return err
	}

	if opts.priceList != "" {
		catalog, err := project.LoadPriceCatalog(project.PriceListsPath(a.cfg.DataDir))
		if err != nil {
			return fmt.Errorf("load price lists: %w", err)
		}
		pl := catalog.FindByName(opts.priceList)
		if pl == nil {
			return fmt.Errorf("price list %q not found", opts.priceList)
		}
		in.prices = pl.Resolve(in.prices)
		a.debugf("using price list %s (%s)", pl.Name, pl.Supplier)
	}
	if cmd.Flags().Changed("labor") {
		in.laborPrice = opts.labor
	}
	if cmd.Flags().Changed("painting") {
		in.paintingPrice = opts.painting
	}
	if err := model.ValidateRates(in.laborPrice, in.paintingPrice); err != nil {
		return err
	}

	p := &in.project
	if opts.clientName != "" {
		p.Client.Name = opts.clientName
	}
	if opts.phone != "" {
		p.Client.Phone = opts.phone
	}
	if opts.paintAll {
		for i := range p.Rooms {
			p.Rooms[i].IncludePainting = true
		}
	}

	engine.CalculateProject(p, in.prices, in.laborPrice, in.paintingPrice)
	a.debugf("calculated %d rooms into %d material lines", len(p.Rooms), len(p.Materials))
	printBudget(a.out, *p)

	return a.writeOutputs(cmd.Context(), *p, opts)
}

// buildInput loads the rooms from a template or the input file and picks the
// company prices as the starting point.
func (a *app) buildInput(source string, opts estimateOptions) (budgetInput, error) {
	in := budgetInput{
		prices:        a.company.MaterialPrices.Clone(),
		laborPrice:    a.company.DefaultLaborPrice,
		paintingPrice: a.company.DefaultPaintingPrice,
	}
	client := model.Client{Name: opts.clientName, Phone: opts.phone}

	if opts.template != "" {
		templates, err := project.LoadTemplates(project.TemplatesPath(a.cfg.DataDir))
		if err != nil {
			return in, fmt.Errorf("load templates: %w", err)
		}
		tmpl := templates.FindByName(opts.template)
		if tmpl == nil {
			return in, fmt.Errorf("template %q not found", opts.template)
		}
		in.project = tmpl.ToProject(client)
		if tmpl.LaborPrice > 0 {
			in.laborPrice = tmpl.LaborPrice
		}
		if tmpl.PaintingPrice > 0 {
			in.paintingPrice = tmpl.PaintingPrice
		}
		if source == "" {
			return in, nil
		}
	} else {
		in.project = model.NewProject(client)
	}

	switch ext := strings.ToLower(filepath.Ext(source)); ext {
	case ".yaml", ".yml":
		job, err := importer.LoadJob(source)
		if err != nil {
			return in, err
		}
		jobProject, err := job.Project(a.config.MaxRooms)
		if err != nil {
			return in, err
		}
		if in.prices, err = job.PriceTable(in.prices); err != nil {
			return in, err
		}
		in.laborPrice, in.paintingPrice = job.Rates(a.company)
		if opts.template != "" {
			return in, a.addRooms(&in.project, jobProject.Rooms)
		}
		in.project = jobProject
		return in, nil
	case ".csv", ".xlsx", ".dxf":
		var result importer.ImportResult
		switch ext {
		case ".csv":
			result = importer.ImportCSV(source)
		case ".xlsx":
			result = importer.ImportExcel(source)
		default:
			result = importer.ImportDXF(source, importer.DXFOptions{
				Scale:       opts.dxfScale,
				WallHeight:  model.Meters(opts.wallHeight),
				CeilingDrop: model.Centimeters(opts.drop),
			})
		}
		for _, w := range result.Warnings {
			log.Printf("import: %s", w)
		}
		for _, e := range result.Errors {
			log.Printf("import error: %s", e)
		}
		if len(result.Rooms) == 0 {
			return in, fmt.Errorf("no rooms imported from %s", source)
		}
		return in, a.addRooms(&in.project, result.Rooms)
	default:
		return in, fmt.Errorf("unsupported input %q: use .yaml, .csv, .xlsx or .dxf", source)
	}
}

func (a *app) addRooms(p *model.Project, rooms []model.Room) error {
	for _, r := range rooms {
		if err := p.AddRoom(r, a.config.MaxRooms); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeOutputs(ctx context.Context, p model.Project, opts estimateOptions) error {
	if opts.pdfPath != "" {
		err := export.ExportBudgetPDF(opts.pdfPath, p, a.company, export.BudgetOptions{
			ValidityDays: a.config.ValidityDays,
			ShareQR:      opts.shareQR,
		})
		if err != nil {
			return fmt.Errorf("export PDF: %w", err)
		}
		fmt.Fprintf(a.out, "PDF salvo em %s\n", opts.pdfPath)
	}
	if opts.xlsxPath != "" {
		data, err := export.GenerateMaterialsExcel(p)
		if err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		if err := os.WriteFile(opts.xlsxPath, data, 0644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Fprintf(a.out, "Planilha salva em %s\n", opts.xlsxPath)
	}
	if opts.save {
		if err := a.storeProject(ctx, p); err != nil {
			return err
		}
		a.config.TouchRecent(p.ID, 10)
		if err := a.saveConfig(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(a.out, "Orçamento salvo: %s\n", p.ID)
	}
	return nil
}
