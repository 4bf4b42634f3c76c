// Package mcptool exposes the standings pipeline as MCP tools over
// streamable HTTP, so an agent can query the table without scraping the
// generated site.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mosheDeveloper/league-standings/internal/config"
	"github.com/mosheDeveloper/league-standings/internal/logger"
	"github.com/mosheDeveloper/league-standings/internal/match"
	"github.com/mosheDeveloper/league-standings/internal/source"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewServer builds the MCP server with every tool registered.
func NewServer(cfg config.Config) (*mcp.Server, []toolInfo) {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "league-standings",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 4)

	addTool(server, &registry, &mcp.Tool{
		Name:        "standings",
		Description: "Ranked league table computed from the games file",
	}, standingsHandler(cfg))

	addTool(server, &registry, &mcp.Tool{
		Name:        "matches",
		Description: "Eligible (played) matches in source order, optionally one round",
	}, matchesHandler(cfg))

	addTool(server, &registry, &mcp.Tool{
		Name:        "teams",
		Description: "Distinct team names seen in played matches plus the roster",
	}, teamsHandler(cfg))

	return server, registry
}

// Serve hosts the MCP endpoint at mcpPath plus /health and /tools.
func Serve(cfg config.Config, addr, mcpPath string) error {
	server, registry := NewServer(cfg)

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	})
	mux.Handle(mcpPath, handler)

	logger.L().Info("MCP server listening", "addr", addr, "path", mcpPath)
	return http.ListenAndServe(addr, mux)
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// loadFacts reads and validates the games file fresh on every call, so
// the tools always reflect the file on disk.
func loadFacts(cfg config.Config) ([]match.Fact, []string, error) {
	rows, err := source.ReadGames(cfg.GamesPath, cfg.Comma())
	if err != nil {
		return nil, nil, err
	}
	var roster []string
	if cfg.TeamsPath != "" {
		roster, err = source.ReadRoster(cfg.TeamsPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return match.ParseRows(rows), roster, nil
}

func toolMarshal(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(b []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
