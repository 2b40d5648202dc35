package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamzaessahbaoui/agent-tools/pkg/tools/search"
)

var (
	searchNum  int
	searchType string
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search the web and print formatted results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := toolSet().Search.Search(cmd.Context(), search.Args{
			Query:      strings.Join(args, " "),
			NumResults: searchNum,
			SearchType: search.Category(searchType),
		})
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchNum, "num", "n", 5, "number of results to return")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", string(search.CategorySearch), "search type: search, news, images or places")
	rootCmd.AddCommand(searchCmd)
}
