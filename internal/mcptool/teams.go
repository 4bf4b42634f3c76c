package mcptool

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mosheDeveloper/league-standings/internal/config"
)

// TeamsArgs is the input schema for the teams tool.
type TeamsArgs struct{}

// TeamsResult is the output of the teams tool.
type TeamsResult struct {
	Teams []string `json:"teams"`
}

func buildTeams(cfg config.Config) (*TeamsResult, error) {
	facts, roster, err := loadFacts(cfg)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, name := range roster {
		seen[name] = true
	}
	for _, f := range facts {
		seen[f.HomeTeam] = true
		seen[f.AwayTeam] = true
	}
	teams := make([]string, 0, len(seen))
	for name := range seen {
		teams = append(teams, name)
	}
	sort.Strings(teams)
	return &TeamsResult{Teams: teams}, nil
}

func teamsHandler(cfg config.Config) func(context.Context, *mcp.CallToolRequest, TeamsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TeamsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeams(cfg)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
