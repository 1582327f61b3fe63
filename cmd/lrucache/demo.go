package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/satmihir/lrucache/lru"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the cache's behavior step by step",
	Long: `Walk through the cache's behavior step by step.

The demo stores a few named entries, shows how lookups reorder them, fills
the cache until the oldest entries fall out, and lets a short-lived entry
go stale. The default capacity of 3 keeps every step visible; a larger
--capacity works too, the filler phase just takes more inserts.

Examples:
  lrucache demo
  lrucache demo --log-level debug     # include the cache's eviction logs
  lrucache demo --allow-stale         # stale values are served one last time`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	c, err := newCache()
	if err != nil {
		return err
	}

	fmt.Printf("Created cache with capacity %d\n\n", c.Cap())

	fmt.Println("Putting alpha=1, beta=2, gamma=3")
	for _, kv := range [][2]string{{"alpha", "1"}, {"beta", "2"}, {"gamma", "3"}} {
		if err := c.Put(kv[0], kv[1]); err != nil {
			return fmt.Errorf("put %q: %w", kv[0], err)
		}
	}
	printOrder(c)

	fmt.Println("Getting alpha promotes it to most recently used")
	c.Get("alpha")
	printOrder(c)

	fmt.Println("Peeking beta leaves the order alone")
	c.Peek("beta")
	printOrder(c)

	fmt.Println("Overwriting gamma replaces its value and promotes it")
	if err := c.Put("gamma", "33"); err != nil {
		return fmt.Errorf("put gamma: %w", err)
	}
	printOrder(c)

	fmt.Println("Filling the cache until the oldest entries fall out")
	for i := 0; c.Contains("beta"); i++ {
		key := fmt.Sprintf("filler-%03d", i)
		if err := c.Put(key, "x"); err != nil {
			return fmt.Errorf("put %q: %w", key, err)
		}
	}
	printOrder(c)
	fmt.Printf("beta was evicted; alpha still present: %v\n\n", c.Contains("alpha"))

	fmt.Println("Entries with a TTL go stale and are discarded on access")
	if err := c.PutWithTTL("ephemeral", "short-lived", time.Second); err != nil {
		return fmt.Errorf("put ephemeral: %w", err)
	}
	fmt.Println("  put ephemeral (ttl=1s), sleeping 1.5s...")
	time.Sleep(1500 * time.Millisecond)
	_, found := c.Get("ephemeral")
	fmt.Printf("  get ephemeral -> found=%v, still resident=%v\n\n",
		found, c.Contains("ephemeral"))

	fmt.Println("Walking entries most to least recently used:")
	for k, v := range c.All() {
		fmt.Printf("  %s = %s\n", k, v)
	}

	if v, ok := c.Pop(); ok {
		fmt.Printf("\nPopped the least recently used value: %q\n", v)
	}

	st := c.Stats()
	fmt.Printf("\nStats: hits=%d misses=%d evictions=%d expirations=%d bytes=%d\n",
		st.Hits, st.Misses, st.Evictions, st.Expirations, c.BytesUsed())

	return nil
}

func printOrder(c *lru.Cache) {
	fmt.Printf("  order (most recent first): %v\n\n", c.Keys())
}
