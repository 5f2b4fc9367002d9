package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/DrywallCalc/internal/engine"
	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/money"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printBudget(w io.Writer, p model.Project) {
	fmt.Fprintf(w, "Orçamento %s", p.ID)
	if p.Client.Name != "" {
		fmt.Fprintf(w, " - %s", p.Client.Name)
	}
	fmt.Fprintf(w, "\nServiço: %s | Área total: %s\n\n", p.Type, money.Area(p.TotalArea))

	tw := newTable(w)
	fmt.Fprintln(tw, "AMBIENTE\tTIPO\tÁREA\tPINTURA")
	for _, r := range p.Rooms {
		painting := "não"
		if r.Paints() {
			painting = "sim"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Type, money.Area(r.Area()), painting)
	}
	tw.Flush()

	drywall, painting := engine.SplitByCategory(p.Materials)
	printMaterials(w, "Materiais de Drywall", drywall)
	printMaterials(w, "Materiais de Pintura", painting)

	t := p.Totals
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintf(tw, "Materiais:\t%s\n", money.BRL(t.MaterialTotal))
	fmt.Fprintf(tw, "Mão de obra:\t%s\n", money.BRL(t.LaborTotal))
	if t.PaintingTotal > 0 {
		fmt.Fprintf(tw, "Pintura:\t%s\n", money.BRL(t.PaintingTotal))
	}
	fmt.Fprintf(tw, "TOTAL:\t%s\n", money.BRL(t.TotalValue))
	fmt.Fprintf(tw, "Entrada (60%%):\t%s\n", money.BRL(t.DownPayment))
	fmt.Fprintf(tw, "Saldo (40%%):\t%s\n", money.BRL(t.Balance()))
	tw.Flush()
}

func printMaterials(w io.Writer, title string, lines []model.MaterialLine) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	tw := newTable(w)
	fmt.Fprintln(tw, "MATERIAL\tQTD\tUND\tUNIT.\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Name, money.Quantity(l.Quantity), l.Unit, money.BRL(l.UnitPrice), money.BRL(l.Subtotal()))
	}
	tw.Flush()
}

func printProjectList(w io.Writer, projects []model.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "Nenhum orçamento encontrado.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATA\tCLIENTE\tSERVIÇO\tTOTAL")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, money.Date(p.CreatedAt.Local()), p.Client.Name, p.Type, money.BRL(p.Totals.TotalValue))
	}
	tw.Flush()
}

func printPrices(w io.Writer, prices model.UnitPriceTable) {
	tw := newTable(w)
	fmt.Fprintln(tw, "CHAVE\tITEM\tPREÇO")
	for _, k := range model.MaterialKeys {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, k.Label(), money.BRL(prices.Price(k)))
	}
	tw.Flush()
}
