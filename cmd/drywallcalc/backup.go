package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/project"
)

func backupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore all data",
	}
	cmd.AddCommand(backupExportCmd(a), backupImportCmd(a))
	return cmd
}

func backupExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.json>",
		Short: "Write config, company, templates, price lists and budgets to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			backup, err := project.CollectBackup(cmd.Context(), a.cfg.DataDir, store)
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], backup); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Backup salvo em %s (%d orçamentos).\n", args[0], len(backup.Projects))
			return nil
		},
	}
}

func backupImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Restore a backup; budgets with other IDs are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := project.RestoreBackup(cmd.Context(), a.cfg.DataDir, store, backup); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Backup restaurado (%d orçamentos).\n", len(backup.Projects))
			return nil
		},
	}
}
