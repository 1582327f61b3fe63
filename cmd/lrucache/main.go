// Command lrucache exercises the lru package from the command line. It is a
// development tool: the cache itself is a library and carries no binary of
// its own beyond this.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/btcsuite/btclog/v2"
	"github.com/spf13/cobra"

	"github.com/satmihir/lrucache/lru"
)

var (
	capacity   int
	defaultTTL time.Duration
	allowStale bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "lrucache",
	Short: "Exercise an in-process LRU cache from the command line",
	Long: `lrucache drives the lru package through scripted scenarios.

The cache maps string keys to string values, holds at most --capacity
entries and evicts the least recently used entry when full. Entries can
carry a TTL after which an access treats them as missing.

Use 'lrucache demo' for a step-by-step walkthrough of the semantics, or
'lrucache bench' to measure throughput under a synthetic workload. Pass
--log-level debug to see the cache's own eviction logging.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger := btclog.NewSLogger(btclog.NewDefaultHandler(os.Stdout))
		level, _ := btclog.LevelFromString(logLevel)
		logger.SetLevel(level)
		lru.UseLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", 3,
		"maximum number of cache entries")
	rootCmd.PersistentFlags().DurationVar(&defaultTTL, "default-ttl", 0,
		"TTL applied to entries stored without an explicit one (0 means never stale)")
	rootCmd.PersistentFlags().BoolVar(&allowStale, "allow-stale", false,
		"serve stale values one last time while discarding them")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (trace, debug, info, warn, error, critical, off)")
}

// newCache builds a cache from the persistent flags.
func newCache() (*lru.Cache, error) {
	c, err := lru.New(capacity,
		lru.WithDefaultTTL(defaultTTL),
		lru.WithAllowStale(allowStale),
	)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
