package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/project"
)

func templateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable room templates",
	}
	cmd.AddCommand(templateSaveCmd(a), templateListCmd(a), templateDeleteCmd(a))
	return cmd
}

func templateSaveCmd(a *app) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "save <project-id>",
		Short: "Save the rooms of a saved budget as a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = p.Type
			}

			path := project.TemplatesPath(a.cfg.DataDir)
			templates, err := project.LoadTemplates(path)
			if err != nil {
				return err
			}
			if templates.FindByName(name) != nil {
				return fmt.Errorf("template %q already exists", name)
			}
			templates.Add(model.NewProjectTemplate(name, description, p))
			if err := project.SaveTemplates(path, templates); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Modelo %q salvo com %d ambientes.\n", name, len(p.Rooms))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "template name (default: the budget's service label)")
	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func templateListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			templates, err := project.LoadTemplates(project.TemplatesPath(a.cfg.DataDir))
			if err != nil {
				return err
			}
			if len(templates.Templates) == 0 {
				fmt.Fprintln(a.out, "Nenhum modelo salvo.")
				return nil
			}
			tw := newTable(a.out)
			fmt.Fprintln(tw, "NOME\tAMBIENTES\tDESCRIÇÃO")
			for _, t := range templates.Templates {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Name, len(t.Rooms), t.Description)
			}
			return tw.Flush()
		},
	}
}

func templateDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := project.TemplatesPath(a.cfg.DataDir)
			templates, err := project.LoadTemplates(path)
			if err != nil {
				return err
			}
			t := templates.FindByName(args[0])
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			templates.Remove(t.ID)
			return project.SaveTemplates(path, templates)
		},
	}
}
