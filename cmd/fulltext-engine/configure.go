package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
)

// credentialPrompts pairs each known key with its interactive description.
var credentialPrompts = []struct {
	key  string
	desc string
}{
	{credentials.ElsevierAPIKey, "Elsevier API Key"},
	{credentials.SpringerAPIKey, "Springer API Key"},
	{credentials.WileyAPIKey, "Wiley API Key"},
	{credentials.UnpaywallEmail, "Unpaywall contact email"},
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactively set provider API keys",
	Long: `Configure prompts for the API keys and contact addresses the download
strategies need and writes them to the credentials file. Press Enter without
typing to keep an existing value or skip setting a new one.`,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().String("credentials", "", "credentials file to write (default ~/.fulltext_keys)")

	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	path := credentialsPath(cmd)

	existing, err := credentials.ReadFile(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unable to read existing credentials file: %v\n", err)
		existing = credentials.Credentials{}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuring API keys for fulltext-engine.")
	fmt.Fprintln(out, "Press Enter without typing to keep an existing value or skip setting a new one.")

	updated := credentials.Credentials{}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for _, p := range credentialPrompts {
		if existing.Get(p.key) != "" {
			fmt.Fprintf(out, "%s (leave blank to keep current): ", p.desc)
		} else {
			fmt.Fprintf(out, "%s: ", p.desc)
		}
		if !scanner.Scan() {
			break
		}
		value := strings.TrimSpace(scanner.Text())
		switch {
		case value != "":
			updated[p.key] = value
		case existing.Get(p.key) != "":
			updated[p.key] = existing.Get(p.key)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if err := credentials.Save(path, updated); err != nil {
		return err
	}
	fmt.Fprintf(out, "Configuration saved to %s\n", path)
	return nil
}
