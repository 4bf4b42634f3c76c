package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mosheDeveloper/league-standings/internal/logger"
	"github.com/mosheDeveloper/league-standings/internal/site"
	"github.com/mosheDeveloper/league-standings/internal/web"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site, host it, and rebuild on an interval",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			hub := web.NewHub()
			go hub.Run()

			server := web.NewServer(cfg.Addr, cfg.OutDir, hub)

			sched := site.NewScheduler(cfg, cfg.RebuildEvery)
			sched.OnBuild = server.SetResult

			res, err := sched.Start()
			if err != nil {
				return err
			}
			logger.L().Info("initial build done",
				"build_id", res.BuildID,
				"teams", len(res.Standings),
				"matches", len(res.Matches))

			errc := make(chan error, 1)
			go func() {
				errc <- server.Start()
			}()
			logger.L().Info("serving site",
				"addr", cfg.Addr,
				"out", cfg.OutDir,
				"rebuild_every", cfg.RebuildEvery.String())

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errc:
				sched.Stop()
				return err
			case <-quit:
			}

			logger.L().Info("shutting down")
			sched.Stop()
			server.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.title, "title", "", "site title")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", "delimiter for non-JSON game files (default ,)")
	cmd.Flags().StringVar(&flags.addr, "addr", "", "HTTP listen address (default :8080)")
	cmd.Flags().DurationVar(&flags.rebuildEvery, "rebuild-every", 0, "rebuild interval (default 15m)")
	return cmd
}
