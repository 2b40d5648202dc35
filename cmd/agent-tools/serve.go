package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzaessahbaoui/agent-tools/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over MCP on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcpserver.New(toolSet().Toolkit(), Version, logger)
		if err != nil {
			return fmt.Errorf("building MCP server: %w", err)
		}
		logger.Info("serving MCP over stdio", "version", Version)
		return mcpserver.Serve(cmd.Context(), server)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
