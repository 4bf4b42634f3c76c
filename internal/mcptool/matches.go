package mcptool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mosheDeveloper/league-standings/internal/config"
	"github.com/mosheDeveloper/league-standings/internal/match"
)

// MatchesArgs is the input schema for the matches tool.
type MatchesArgs struct {
	Round int `json:"round" jsonschema:"Round number to filter by (0 = all rounds)"`
}

// MatchesResult is the output of the matches tool.
type MatchesResult struct {
	Round   int          `json:"round,omitempty"`
	Matches []match.Fact `json:"matches"`
}

func buildMatches(cfg config.Config, round int) (*MatchesResult, error) {
	facts, _, err := loadFacts(cfg)
	if err != nil {
		return nil, err
	}
	if round <= 0 {
		return &MatchesResult{Matches: facts}, nil
	}
	filtered := make([]match.Fact, 0, len(facts))
	for _, f := range facts {
		if f.Round == round {
			filtered = append(filtered, f)
		}
	}
	return &MatchesResult{Round: round, Matches: filtered}, nil
}

func matchesHandler(cfg config.Config) func(context.Context, *mcp.CallToolRequest, MatchesArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args MatchesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMatches(cfg, args.Round)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
