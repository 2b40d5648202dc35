package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamzaessahbaoui/agent-tools/pkg/tools/reports"
)

var (
	storeContent    string
	storeFile       string
	storeMeta       map[string]string
	storeCollection string
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Store a report in MongoDB",
	Long:  "Store a report in MongoDB. The content comes from --content, --file, or stdin when neither is given.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := reportContent(cmd)
		if err != nil {
			return err
		}
		meta := make(map[string]any, len(storeMeta))
		for k, v := range storeMeta {
			meta[k] = v
		}
		out := toolSet().Reports.Store(cmd.Context(), reports.Args{
			ReportContent:  content,
			ReportMetadata: meta,
			CollectionName: storeCollection,
		})
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func reportContent(cmd *cobra.Command) (string, error) {
	switch {
	case storeContent != "" && storeFile != "":
		return "", fmt.Errorf("--content and --file are mutually exclusive")
	case storeContent != "":
		return storeContent, nil
	case storeFile != "":
		b, err := os.ReadFile(storeFile)
		if err != nil {
			return "", fmt.Errorf("reading report file: %w", err)
		}
		return string(b), nil
	default:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading report from stdin: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	}
}

func init() {
	storeCmd.Flags().StringVarP(&storeContent, "content", "c", "", "report content")
	storeCmd.Flags().StringVarP(&storeFile, "file", "f", "", "read report content from a file")
	storeCmd.Flags().StringToStringVarP(&storeMeta, "meta", "m", nil, "metadata as key=value pairs")
	storeCmd.Flags().StringVar(&storeCollection, "collection", reports.DefaultCollection, "target collection")
	rootCmd.AddCommand(storeCmd)
}
