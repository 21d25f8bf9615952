package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fulltext-engine/internal/fetch"
	"github.com/pdiddy/fulltext-engine/internal/strategy"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <doi>",
	Short: "Download the full text of one article by DOI",
	Long: `Fetch resolves a DOI to its publisher, derives the download strategies
known to work for that publisher, and tries them in order until one produces
a file. The strategy list can be overridden with --strategies.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("output-dir", "o", "downloads", "directory to save the downloaded file")
	fetchCmd.Flags().String("filename", "", "explicit output file name (extension added from the strategy if missing)")
	fetchCmd.Flags().StringSlice("strategies", nil, "comma-separated strategy override, bypassing publisher classification")
	fetchCmd.Flags().String("log-file", "", "append structured log lines to this file")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().String("credentials", "", "credentials file (default ~/.fulltext_keys)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	doi := args[0]

	resolver, err := newResolver(cmd)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	filename, _ := cmd.Flags().GetString("filename")
	logFile, _ := cmd.Flags().GetString("log-file")

	var override []strategy.ID
	if cmd.Flags().Changed("strategies") {
		names, _ := cmd.Flags().GetStringSlice("strategies")
		override = make([]strategy.ID, 0, len(names))
		for _, name := range names {
			override = append(override, strategy.ID(name))
		}
	}

	path, err := resolver.Fetch(fetch.Request{
		DOI:            doi,
		OutputDir:      outputDir,
		OutputFilename: filename,
		Strategies:     override,
		LogFile:        logFile,
	})
	if err != nil {
		return fmt.Errorf("downloading %s: %w", doi, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully downloaded %s to %s\n", doi, path)
	return nil
}
