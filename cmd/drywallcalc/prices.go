package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/project"
)

func pricesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Manage supplier price lists",
	}
	cmd.AddCommand(pricesImportCmd(a), pricesListCmd(a), pricesShowCmd(a), pricesExportCmd(a))
	return cmd
}

func pricesImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a price list, replacing any list with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := project.PriceListsPath(a.cfg.DataDir)
			catalog, err := project.LoadPriceCatalog(path)
			if err != nil {
				return err
			}
			catalog, pl, err := project.ImportPriceList(args[0], catalog)
			if err != nil {
				return err
			}
			if err := project.SavePriceCatalog(path, catalog); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Lista %q importada (%d preços).\n", pl.Name, len(pl.Prices))
			return nil
		},
	}
}

func pricesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved price lists",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog, err := project.LoadPriceCatalog(project.PriceListsPath(a.cfg.DataDir))
			if err != nil {
				return err
			}
			if len(catalog.Lists) == 0 {
				fmt.Fprintln(a.out, "Nenhuma lista de preços salva.")
				return nil
			}
			tw := newTable(a.out)
			fmt.Fprintln(tw, "NOME\tFORNECEDOR\tPREÇOS\tATUALIZADA")
			for _, pl := range catalog.Lists {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", pl.Name, pl.Supplier, len(pl.Prices), pl.UpdatedAt)
			}
			return tw.Flush()
		},
	}
}

func pricesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a price list completed with the company prices",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			catalog, err := project.LoadPriceCatalog(project.PriceListsPath(a.cfg.DataDir))
			if err != nil {
				return err
			}
			pl := catalog.FindByName(args[0])
			if pl == nil {
				return fmt.Errorf("price list %q not found", args[0])
			}
			fmt.Fprintf(a.out, "%s (%s)\n", pl.Name, pl.Supplier)
			printPrices(a.out, pl.Resolve(a.company.MaterialPrices))
			return nil
		},
	}
}

func pricesExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <file.json>",
		Short: "Write a price list to a file so it can be shared",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			catalog, err := project.LoadPriceCatalog(project.PriceListsPath(a.cfg.DataDir))
			if err != nil {
				return err
			}
			pl := catalog.FindByName(args[0])
			if pl == nil {
				return fmt.Errorf("price list %q not found", args[0])
			}
			return project.ExportPriceList(args[1], *pl)
		},
	}
}

