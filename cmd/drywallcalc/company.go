package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/money"
	"github.com/piwi3910/DrywallCalc/internal/project"
)

func companyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Show or edit the company data and unit prices",
	}
	cmd.AddCommand(companyShowCmd(a), companySetCmd(a), companySetPriceCmd(a))
	return cmd
}

func companyShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the company data and price table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := a.company
			fmt.Fprintf(a.out, "%s\nCNPJ: %s\nTelefone: %s\nE-mail: %s\n", c.Name, c.CNPJ, c.Phone, c.Email)
			fmt.Fprintf(a.out, "Mão de obra: %s/m²  Pintura: %s/m²\n\n", money.BRL(c.DefaultLaborPrice), money.BRL(c.DefaultPaintingPrice))
			printPrices(a.out, c.MaterialPrices)
			return nil
		},
	}
}

func companySetCmd(a *app) *cobra.Command {
	var name, cnpj, phone, email, logo string
	var labor, painting float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update company fields and default per-m² prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.company
			f := cmd.Flags()
			if f.Changed("name") {
				c.Name = name
			}
			if f.Changed("cnpj") {
				c.CNPJ = cnpj
			}
			if f.Changed("phone") {
				c.Phone = phone
			}
			if f.Changed("email") {
				c.Email = email
			}
			if f.Changed("logo") {
				c.Logo = logo
			}
			if f.Changed("labor") {
				c.DefaultLaborPrice = labor
			}
			if f.Changed("painting") {
				c.DefaultPaintingPrice = painting
			}
			if err := model.ValidateRates(c.DefaultLaborPrice, c.DefaultPaintingPrice); err != nil {
				return err
			}
			return a.saveCompany(c)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "company name")
	f.StringVar(&cnpj, "cnpj", "", "CNPJ")
	f.StringVar(&phone, "phone", "", "phone")
	f.StringVar(&email, "email", "", "e-mail")
	f.StringVar(&logo, "logo", "", "path to a PNG or JPEG logo printed on budgets")
	f.Float64Var(&labor, "labor", 0, "default drywall labor price per m²")
	f.Float64Var(&painting, "painting", 0, "default painting labor price per m²")
	return cmd
}

func companySetPriceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-price <key> <value>",
		Short: "Set one unit price, e.g. set-price sheet 44.90",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			key, ok := model.ParseMaterialKey(args[0])
			if !ok {
				return fmt.Errorf("unknown price key %q", args[0])
			}
			value, err := strconv.ParseFloat(strings.ReplaceAll(args[1], ",", "."), 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[1], err)
			}

			c := a.company
			c.MaterialPrices = c.MaterialPrices.Clone()
			c.MaterialPrices[key] = value
			if err := a.saveCompany(c); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: %s\n", key.Label(), money.BRL(value))
			return nil
		},
	}
}

func (a *app) saveCompany(c model.Company) error {
	if err := project.SaveCompany(project.CompanyPath(a.cfg.DataDir), c); err != nil {
		return err
	}
	a.company = c
	return nil
}
