package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var schemaJSON bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the toolkit description and request schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tk := toolSet().Toolkit()
		if !schemaJSON {
			fmt.Fprintln(cmd.OutOrStdout(), tk.GetToolkitDescription())
			return nil
		}
		b, err := json.MarshalIndent(tk.GetToolkitSchema("anthropic"), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "print the JSON request schema instead of the description")
	rootCmd.AddCommand(schemaCmd)
}
