package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "fulltext-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the resolution-and-fallback engine.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDelay is the pause between consecutive downloads in a batch
	// (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// OutputDir is the default directory for downloaded files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// CredentialsFile is the KEY=VALUE file holding provider API keys and
	// contact addresses (default ~/.fulltext_keys).
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`

	// APSCookiesFile is a Netscape-format cookies export used by the APS
	// strategy for entitled downloads. Empty disables the strategy.
	APSCookiesFile string `json:"aps_cookies_file" yaml:"aps_cookies_file"`

	// RequestsPerSecond throttles outbound requests per remote host.
	// Zero or negative disables throttling.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}
