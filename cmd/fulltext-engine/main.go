// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fulltext-engine CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// consoleLog is the shared console logger, built by the root command before
// any subcommand runs.
var consoleLog *slog.Logger

// rootCmd is the base command for the fulltext-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "fulltext-engine",
	Short: "Download the full text of scholarly articles by DOI",
	Long: `fulltext-engine resolves a DOI to its publisher and tries the download
strategies known to work for that publisher in a fallback sequence: open-access
aggregators, publisher APIs, direct content URLs, and page scraping.

Single articles are fetched with "fetch"; lists of DOIs with "batch". API keys
for the publisher strategies are set once with "configure".`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelInfo
		}
		consoleLog = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fulltext-engine.yaml or ~/.config/fulltext-engine/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-strategy progress to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fulltext-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fulltext-engine"))
		}
	}

	viper.SetEnvPrefix("FULLTEXT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
