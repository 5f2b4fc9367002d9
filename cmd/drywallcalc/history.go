package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/project"
	"github.com/piwi3910/DrywallCalc/internal/share"
)

func historyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history [search]",
		Short: "List saved budgets, newest first, optionally filtered by client or service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			projects, err := store.Projects(cmd.Context())
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			printProjectList(a.out, project.SearchProjects(projects, query))
			return nil
		},
	}
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Print a saved budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printBudget(a.out, p)
			return nil
		},
	}
}

func deleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Remove a saved budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ok, err := store.DeleteProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("project %s not found", args[0])
			}
			fmt.Fprintf(a.out, "Orçamento %s removido.\n", args[0])
			return nil
		},
	}
}

func shareCmd(a *app) *cobra.Command {
	var linkOnly bool

	cmd := &cobra.Command{
		Use:   "share <project-id>",
		Short: "Print the WhatsApp summary and link for a saved budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !linkOnly {
				fmt.Fprintln(a.out, share.BudgetMessage(p, a.company, a.config.ValidityDays))
				fmt.Fprintln(a.out)
			}
			fmt.Fprintln(a.out, share.ProjectLink(p, a.company, a.config.ValidityDays))

			if p.Status == model.StatusDraft {
				p.Status = model.StatusSent
				return a.storeProject(cmd.Context(), p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&linkOnly, "link-only", false, "print only the link")
	return cmd
}

func (a *app) loadProject(ctx context.Context, id string) (model.Project, error) {
	store, err := a.openStore()
	if err != nil {
		return model.Project{}, err
	}
	defer store.Close()

	p, ok, err := store.Project(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	if !ok {
		return model.Project{}, fmt.Errorf("project %s not found", id)
	}
	return p, nil
}

func (a *app) storeProject(ctx context.Context, p model.Project) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveProject(ctx, p)
}
