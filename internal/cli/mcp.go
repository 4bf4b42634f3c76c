package cli

import (
	"github.com/spf13/cobra"

	"github.com/mosheDeveloper/league-standings/internal/mcptool"
)

func newMCPCmd(flags *rootFlags) *cobra.Command {
	var mcpPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the standings, matches and teams MCP tools over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return mcptool.Serve(cfg, cfg.Addr, mcpPath)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "HTTP listen address (default :8080)")
	cmd.Flags().StringVar(&mcpPath, "path", "/mcp", "HTTP path for the MCP endpoint")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", "delimiter for non-JSON game files (default ,)")
	return cmd
}
