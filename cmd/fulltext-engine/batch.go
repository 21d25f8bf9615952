package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fulltext-engine/internal/fetch"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dois...]",
	Short: "Download the full text of many articles by DOI",
	Long: `Batch resolves each DOI in turn with the publisher-derived strategy
selection. One DOI's failure never aborts the run: the batch always completes
and reports per-DOI outcomes. DOIs are taken from the arguments and/or from
--input, one per line ('#' starts a comment).`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("input", "i", "", "file with one DOI per line")
	batchCmd.Flags().StringP("output-dir", "o", "downloads", "directory to save the downloaded files")
	batchCmd.Flags().Duration("delay", defaultDelay, "pause between consecutive downloads")
	batchCmd.Flags().String("log-file", "", "append structured log lines to this file")
	batchCmd.Flags().String("report", "", "write the per-DOI result map to this YAML file")
	batchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	batchCmd.Flags().String("credentials", "", "credentials file (default ~/.fulltext_keys)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	dois := append([]string(nil), args...)

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		fromFile, err := readDOIFile(input)
		if err != nil {
			return err
		}
		dois = append(dois, fromFile...)
	}
	if len(dois) == 0 {
		return fmt.Errorf("provide one or more DOIs as arguments or via --input")
	}

	resolver, err := newResolver(cmd)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	logFile, _ := cmd.Flags().GetString("log-file")

	result := resolver.FetchBatch(dois, outputDir, logFile, cmd.OutOrStdout())

	if report, _ := cmd.Flags().GetString("report"); report != "" {
		if err := writeReport(report, result); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d of %d DOIs failed", len(result.Failed()), result.Total())
	}
	return nil
}

// readDOIFile reads one DOI per line, skipping blanks and '#' comments.
func readDOIFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading DOI list %s: %w", path, err)
	}
	defer f.Close()

	var dois []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dois = append(dois, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading DOI list %s: %w", path, err)
	}
	return dois, nil
}

// writeReport writes the batch result map as YAML: DOI to output path, or to
// an "ERROR: ..." string for failures.
func writeReport(path string, result fetch.BatchResult) error {
	report := make(map[string]string, len(result.DOIs))
	for _, doi := range result.DOIs {
		outcome := result.Results[doi]
		if outcome.Err != nil {
			report[doi] = "ERROR: " + outcome.Err.Error()
			continue
		}
		report[doi] = outcome.Path
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
