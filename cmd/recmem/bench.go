package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/recmem/recmem/memtree"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "compare tree writes/reads against a flat map",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of keys to write and read",
			Value:   1000,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "fake data generator seed",
			Value: 12345,
		},
	},
	Action: runBench,
}

func runBench(cctx *cli.Context) error {
	n := cctx.Int("count")
	faker := gofakeit.New(cctx.Int64("seed"))

	paths := make([]string, n)
	values := make([]string, n)
	for i := 0; i < n; i++ {
		paths[i] = fmt.Sprintf("data.category_%d.item_%d.value", i%10, i)
		values[i] = faker.HackerPhrase()
	}
	slog.Debug("generated fake data", "count", n)

	tree := memtree.New()
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := tree.SetString(paths[i], values[i]); err != nil {
			return err
		}
	}
	treeWrite := time.Since(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		tree.GetString(paths[i])
	}
	treeRead := time.Since(start)

	flat := make(map[string]string, n)
	start = time.Now()
	for i := 0; i < n; i++ {
		flat[paths[i]] = values[i]
	}
	flatWrite := time.Since(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		_ = flat[paths[i]]
	}
	flatRead := time.Since(start)

	fmt.Printf("writing %d values:\n", n)
	fmt.Printf("  tree:     %v\n", treeWrite)
	fmt.Printf("  flat map: %v\n", flatWrite)
	fmt.Printf("  ratio:    %.2fx\n", ratio(treeWrite, flatWrite))
	fmt.Printf("reading %d values:\n", n)
	fmt.Printf("  tree:     %v\n", treeRead)
	fmt.Printf("  flat map: %v\n", flatRead)
	fmt.Printf("  ratio:    %.2fx\n", ratio(treeRead, flatRead))
	fmt.Println()
	printStats(os.Stdout, tree.Stats())
	return nil
}

func ratio(a, b time.Duration) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
