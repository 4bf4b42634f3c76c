package mcptool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mosheDeveloper/league-standings/internal/config"
	"github.com/mosheDeveloper/league-standings/internal/standings"
)

// StandingsArgs is the input schema for the standings tool.
type StandingsArgs struct{}

// StandingsResult is the output of the standings tool.
type StandingsResult struct {
	Matches   int             `json:"matches"`
	Standings []standings.Row `json:"standings"`
}

func buildStandings(cfg config.Config) (*StandingsResult, error) {
	facts, roster, err := loadFacts(cfg)
	if err != nil {
		return nil, err
	}
	table, _ := standings.Table(facts, roster)
	return &StandingsResult{Matches: len(facts), Standings: table}, nil
}

func standingsHandler(cfg config.Config) func(context.Context, *mcp.CallToolRequest, StandingsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args StandingsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildStandings(cfg)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
