// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the weatherctl CLI, a one-shot
// weather lookup: read the API token from the environment, join the
// positional arguments into a search keyword, query the search endpoint,
// and print the decoded JSON response.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/weatherctl/internal/lookup"
	"github.com/pdiddy/weatherctl/internal/weather"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "weatherctl/0.1"

// rootCmd performs the lookup itself; there is no subcommand for it.
var rootCmd = &cobra.Command{
	Use:   "weatherctl [words...]",
	Short: "Look up weather by keyword",
	Long: `weatherctl performs a single weather lookup against the search endpoint.
The API token is read from the API_TOKEN environment variable. All positional
arguments are joined, in order and without separators, into the search
keyword; no arguments means an empty keyword, which is still dispatched.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runLookup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().String("endpoint", "", "override the search endpoint URL")
	rootCmd.Flags().String("user-agent", "", fmt.Sprintf("User-Agent header (default %q)", defaultUserAgent))
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default: none)")
	rootCmd.Flags().String("output", lookup.FormatDebug, "output format: debug, json, or yaml")
}

// initConfig wires environment overrides. There is no config file: every
// setting comes from a flag or a WEATHERCTL_-prefixed variable.
func initConfig() {
	viper.SetEnvPrefix("WEATHERCTL")
	viper.AutomaticEnv()
	viper.SetDefault("user_agent", defaultUserAgent)
}

func runLookup(cmd *cobra.Command, args []string) error {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	if endpoint == "" {
		endpoint = viper.GetString("endpoint")
	}
	userAgent, _ := cmd.Flags().GetString("user-agent")
	if userAgent == "" {
		userAgent = viper.GetString("user_agent")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	format, _ := cmd.Flags().GetString("output")

	client := &weather.Client{
		HTTP:      &http.Client{Timeout: timeout},
		BaseURL:   endpoint,
		UserAgent: userAgent,
	}

	return lookup.Run(cmd.Context(), lookup.Options{
		Lookup: os.LookupEnv,
		Args:   args,
		Client: client,
		Format: format,
		Out:    os.Stdout,
		Diag:   os.Stderr,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
