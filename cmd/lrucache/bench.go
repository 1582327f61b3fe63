package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	benchOps  int
	benchKeys int
	benchSeed int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure cache throughput under a skewed synthetic workload",
	Long: `Measure cache throughput under a skewed synthetic workload.

The bench draws keys from a Zipf distribution over --keys distinct keys
and runs --ops cache-aside lookups: every miss is followed by a put of
the missing key. The hit ratio therefore reflects how well the LRU
policy holds on to the hot part of the key space at the configured
--capacity.

Examples:
  lrucache bench --capacity 1024 --ops 1000000
  lrucache bench --capacity 256 --keys 65536 --default-ttl 500ms`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchOps, "ops", 200000,
		"number of lookups to run")
	benchCmd.Flags().IntVar(&benchKeys, "keys", 4096,
		"number of distinct keys in the workload")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1,
		"seed for the workload generator")
}

func runBench(_ *cobra.Command, _ []string) error {
	if benchKeys < 1 {
		return fmt.Errorf("keys must be positive, got %d", benchKeys)
	}

	c, err := newCache()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(benchSeed))
	zipf := rand.NewZipf(rng, 1.1, 1, uint64(benchKeys-1))

	start := time.Now()
	for i := 0; i < benchOps; i++ {
		key := strconv.FormatUint(zipf.Uint64(), 10)
		if _, ok := c.Get(key); !ok {
			if err := c.Put(key, key); err != nil {
				return fmt.Errorf("put %q: %w", key, err)
			}
		}
	}
	elapsed := time.Since(start)

	st := c.Stats()
	total := st.Hits + st.Misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(st.Hits) / float64(total) * 100
	}

	fmt.Printf("ran %d ops in %v (%.0f ops/sec)\n",
		benchOps, elapsed.Round(time.Millisecond),
		float64(benchOps)/elapsed.Seconds())
	fmt.Printf("capacity=%d keys=%d\n", c.Cap(), benchKeys)
	fmt.Printf("hits=%d misses=%d hit-ratio=%.1f%%\n",
		st.Hits, st.Misses, hitRatio)
	fmt.Printf("evictions=%d expirations=%d resident=%d bytes=%d\n",
		st.Evictions, st.Expirations, c.Len(), c.BytesUsed())

	return nil
}
