package cli

import (
	"github.com/spf13/cobra"

	"github.com/mosheDeveloper/league-standings/internal/logger"
	"github.com/mosheDeveloper/league-standings/internal/site"
)

func newBuildCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site once and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			res, err := site.Build(cfg)
			if err != nil {
				return err
			}
			logger.L().Info("site built",
				"out", cfg.OutDir,
				"build_id", res.BuildID,
				"teams", len(res.Standings),
				"matches", len(res.Matches))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.title, "title", "", "site title")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", "delimiter for non-JSON game files (default ,)")
	return cmd
}
