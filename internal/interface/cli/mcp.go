package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tripdeck/tripdeck/cmd/tripdeck/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start MCP server exposing trip data to agents",
	Long: `Start an MCP (Model Context Protocol) server over stdio that lets agents
list trips, fetch budget summaries and browse expenses through the backend.

Configure in your agent's MCP config:
  {
    "mcpServers": {
      "tripdeck": {
        "command": "tripdeck",
        "args": ["serve-mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}

	if err := mcp.StartServer(client); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
