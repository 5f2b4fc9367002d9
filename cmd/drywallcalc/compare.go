package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/engine"
	"github.com/piwi3910/DrywallCalc/internal/money"
	"github.com/piwi3910/DrywallCalc/internal/project"
)

func compareCmd(a *app) *cobra.Command {
	var withLists bool

	cmd := &cobra.Command{
		Use:   "compare <project-id>",
		Short: "Recalculate a saved budget under alternative prices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			scenarios := engine.BuildDefaultScenarios(a.company)
			if withLists {
				catalog, err := project.LoadPriceCatalog(project.PriceListsPath(a.cfg.DataDir))
				if err != nil {
					return err
				}
				scenarios = append(scenarios, engine.ScenariosFromPriceLists(a.company, catalog.Lists)...)
			}

			tw := newTable(a.out)
			fmt.Fprintln(tw, "CENÁRIO\tMATERIAIS\tMÃO DE OBRA\tTOTAL\tDIFERENÇA")
			for _, r := range engine.CompareScenarios(p, scenarios) {
				labor := r.Totals.LaborTotal + r.Totals.PaintingTotal
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Scenario.Name,
					money.BRL(r.Totals.MaterialTotal), money.BRL(labor), money.BRL(r.Totals.TotalValue), money.BRL(r.DeltaTotal))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&withLists, "price-lists", true, "add one scenario per saved price list")
	return cmd
}
