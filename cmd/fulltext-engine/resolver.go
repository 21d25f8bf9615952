package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
	"github.com/pdiddy/fulltext-engine/internal/fetch"
	"github.com/pdiddy/fulltext-engine/internal/fetchlog"
	"github.com/pdiddy/fulltext-engine/internal/httputil"
	"github.com/pdiddy/fulltext-engine/internal/strategy"
	"github.com/pdiddy/fulltext-engine/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "fulltext-engine/0.1"
)

// credentialsPath picks the credentials file: flag, then config, then
// ~/.fulltext_keys.
func credentialsPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("credentials"); path != "" {
		return path
	}
	if path := viper.GetString("credentials_file"); path != "" {
		return path
	}
	return credentials.DefaultPath()
}

// newResolver assembles the engine from flags and config: HTTP client with
// bounded timeout and optional per-host throttle, the strategy registry built
// from the loaded credentials, and a logger fanning out to the console.
func newResolver(cmd *cobra.Command) (*fetch.Resolver, error) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")

	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	credsFile := credentialsPath(cmd)
	creds, err := credentials.Load(credsFile)
	if err != nil {
		return nil, err
	}

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		DownloadDelay:     delay,
		CredentialsFile:   credsFile,
		APSCookiesFile:    viper.GetString("aps_cookies_file"),
		RequestsPerSecond: viper.GetFloat64("requests_per_second"),
	}

	client := httputil.NewClient(cfg.HTTPConfig, cfg.RequestsPerSecond)
	registry := strategy.NewRegistry(creds, cfg.APSCookiesFile)
	return fetch.NewResolver(client, registry, fetchlog.New(consoleLog), cfg), nil
}
