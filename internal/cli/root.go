// Package cli wires the build, serve and mcp commands.
package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mosheDeveloper/league-standings/internal/config"
	"github.com/mosheDeveloper/league-standings/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand; zero values mean "not set"
// and leave the config/env value alone.
type rootFlags struct {
	configPath string
	debug      bool

	games        string
	teams        string
	outDir       string
	title        string
	delimiter    string
	addr         string
	rebuildEvery time.Duration
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "league-standings",
		Short:        "league-standings — build and host a standings site from match results",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Setup(flags.debug)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to YAML config file")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.games, "games", "", "games file (.json or delimited, default games.json)")
	pf.StringVar(&flags.teams, "teams", "", "optional JSON roster file")
	pf.StringVar(&flags.outDir, "out", "", "output directory (default dist)")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// loadConfig resolves file + env config, then lets non-empty flags win.
func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.games != "" {
		cfg.GamesPath = flags.games
	}
	if flags.teams != "" {
		cfg.TeamsPath = flags.teams
	}
	if flags.outDir != "" {
		cfg.OutDir = flags.outDir
	}
	if flags.title != "" {
		cfg.SiteTitle = flags.title
	}
	if flags.delimiter != "" {
		cfg.Delimiter = flags.delimiter
	}
	if flags.addr != "" {
		cfg.Addr = flags.addr
	}
	if flags.rebuildEvery > 0 {
		cfg.RebuildEvery = flags.rebuildEvery
	}
	return cfg, nil
}
