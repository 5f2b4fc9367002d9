package main

import (
	"fmt"
	"io"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/project"
)

// Config holds settings read from the environment. Command-line flags take
// precedence, then the environment, then config.json in the data directory.
type Config struct {
	DataDir  string `env:"DRYWALLCALC_DATA_DIR"`
	Store    string `env:"DRYWALLCALC_STORE"`
	MaxRooms int    `env:"DRYWALLCALC_MAX_ROOMS"`
	Verbose  bool   `env:"DRYWALLCALC_VERBOSE"`
}

// app is the state shared by every subcommand once the root pre-run has
// resolved the configuration.
type app struct {
	cfg     Config
	out     io.Writer
	config  model.AppConfig
	company model.Company
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:          "drywallcalc",
		Short:        "Drywall and painting material budgets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.DataDir, "data-dir", "", "data directory (default ~/.drywallcalc)")
	flags.StringVar(&a.cfg.Store, "store", "", "project store backend: json or sqlite")
	flags.IntVar(&a.cfg.MaxRooms, "max-rooms", 0, "maximum rooms per budget")
	flags.BoolVarP(&a.cfg.Verbose, "verbose", "v", false, "log every step to stderr")

	root.AddCommand(
		estimateCmd(a),
		historyCmd(a),
		showCmd(a),
		deleteCmd(a),
		shareCmd(a),
		companyCmd(a),
		templateCmd(a),
		pricesCmd(a),
		compareCmd(a),
		backupCmd(a),
	)
	return root
}

// load resolves the configuration: flags that were set win over the
// environment, which wins over config.json.
func (a *app) load(cmd *cobra.Command) error {
	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	flags := cmd.Flags()
	if !flags.Changed("data-dir") {
		a.cfg.DataDir = fromEnv.DataDir
	}
	if !flags.Changed("store") {
		a.cfg.Store = fromEnv.Store
	}
	if !flags.Changed("max-rooms") {
		a.cfg.MaxRooms = fromEnv.MaxRooms
	}
	if !flags.Changed("verbose") {
		a.cfg.Verbose = fromEnv.Verbose
	}
	if a.cfg.DataDir == "" {
		a.cfg.DataDir = project.DefaultDataDir()
	}

	config, err := project.LoadAppConfig(project.ConfigPath(a.cfg.DataDir))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.cfg.Store != "" {
		config.StoreBackend = a.cfg.Store
	}
	if a.cfg.MaxRooms > 0 {
		config.MaxRooms = a.cfg.MaxRooms
	}
	a.config = config

	company, err := project.LoadCompany(project.CompanyPath(a.cfg.DataDir))
	if err != nil {
		return fmt.Errorf("load company: %w", err)
	}
	a.company = company

	a.debugf("data dir %s, store %s, max rooms %d", a.cfg.DataDir, a.config.StoreBackend, a.config.MaxRooms)
	return nil
}

func (a *app) openStore() (project.Store, error) {
	return project.OpenStore(a.config.StoreBackend, a.cfg.DataDir)
}

// saveConfig persists the app config without the per-invocation overrides
// coming from flags or the environment.
func (a *app) saveConfig() error {
	path := project.ConfigPath(a.cfg.DataDir)
	onDisk, err := project.LoadAppConfig(path)
	if err != nil {
		return err
	}
	onDisk.RecentProjects = a.config.RecentProjects
	return project.SaveAppConfig(path, onDisk)
}

func (a *app) debugf(format string, args ...any) {
	if a.cfg.Verbose {
		log.Printf(format, args...)
	}
}
