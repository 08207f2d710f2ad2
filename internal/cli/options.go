package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/presbot/internal/model"
	"github.com/ppiankov/presbot/internal/qa"
	"github.com/ppiankov/presbot/internal/wiki"
)

var (
	httpTimeout  time.Duration
	userAgent    string
	maxBytes     int64
	wikiLang     string
	wikiEndpoint string
	noRobots     bool
)

func init() {
	defaults := model.DefaultConfig()

	rootCmd.PersistentFlags().DurationVar(&httpTimeout, "timeout", defaults.HTTP.Timeout, "HTTP timeout per request")
	rootCmd.PersistentFlags().StringVar(&userAgent, "ua", defaults.HTTP.UserAgent, "HTTP User-Agent")
	rootCmd.PersistentFlags().Int64Var(&maxBytes, "max-bytes", defaults.HTTP.MaxBodyBytes, "max response bytes to read")
	rootCmd.PersistentFlags().StringVar(&wikiLang, "lang", defaults.Wiki.Language, "Wikipedia language code")
	rootCmd.PersistentFlags().StringVar(&wikiEndpoint, "endpoint", "", "MediaWiki API endpoint (overrides --lang)")
	rootCmd.PersistentFlags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checking")
}

// loadConfig merges defaults, config file / env values and flags,
// highest priority last
func loadConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration: %v\n", err)
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout = httpTimeout
	}
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if flags.Changed("lang") {
		cfg.Wiki.Language = wikiLang
	}
	if flags.Changed("endpoint") {
		cfg.Wiki.Endpoint = wikiEndpoint
	}
	if noRobots {
		cfg.Robots.Enabled = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	return cfg
}

// newRegistry wires the query registry to a live Wikipedia client
func newRegistry(cfg *model.Config) *qa.Registry {
	return qa.NewRegistry(qa.NewService(wiki.NewClient(cfg)))
}
