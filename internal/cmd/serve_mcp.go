package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/mcp"
)

// serveMCPCmd runs the MCP server over stdio. Unlike the JSON
// commands, a startup failure here surfaces as a normal CLI error.
var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve project queries over the Model Context Protocol",
	RunE:  runServeMCP,
}

var (
	serveMCPCwd     string
	serveMCPTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(serveMCPCmd)
	serveMCPCmd.Flags().StringVar(&serveMCPCwd, "cwd", ".", "Project working directory")
	serveMCPCmd.Flags().DurationVar(&serveMCPTimeout, "timeout", 0, "Exit after this much inactivity (0 = never)")
}

func runServeMCP(cmd *cobra.Command, args []string) error {
	s, err := mcp.New(mcp.Config{
		ProjectRoot: serveMCPCwd,
		Timeout:     serveMCPTimeout,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	verbosef("serve-mcp: serving stdio for %s", serveMCPCwd)
	return s.ServeStdio()
}
