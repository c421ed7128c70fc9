package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/recmem/recmem/memtree"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

var cmdViz = &cli.Command{
	Name:      "viz",
	Usage:     "render an exported memory tree",
	ArgsUsage: `<export.json>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "list leaf paths instead of drawing the tree",
		},
		&cli.BoolFlag{
			Name:  "histogram",
			Usage: "show node counts per depth",
		},
		&cli.BoolFlag{
			Name:  "no-values",
			Usage: "hide node values",
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "deepest level to draw (0 for unlimited)",
		},
	},
	Action: runViz,
}

var cmdStats = &cli.Command{
	Name:      "stats",
	Usage:     "show shape statistics for an exported memory tree",
	ArgsUsage: `<export.json>`,
	Action:    runStats,
}

func runViz(cctx *cli.Context) error {
	fp := cctx.Args().First()
	if fp == "" {
		return fmt.Errorf("need to provide an export file as an argument")
	}
	tree, err := loadTreeFile(fp)
	if err != nil {
		return err
	}
	switch {
	case cctx.Bool("compact"):
		fmt.Print(compactView(tree))
	case cctx.Bool("histogram"):
		fmt.Print(depthHistogram(tree))
	default:
		fmt.Println(renderTree(tree, vizOptions{
			showValues: !cctx.Bool("no-values"),
			maxDepth:   cctx.Int("max-depth"),
		}))
	}
	return nil
}

func runStats(cctx *cli.Context) error {
	fp := cctx.Args().First()
	if fp == "" {
		return fmt.Errorf("need to provide an export file as an argument")
	}
	tree, err := loadTreeFile(fp)
	if err != nil {
		return err
	}
	printStats(os.Stdout, tree.Stats())
	return nil
}

type vizOptions struct {
	showValues bool
	maxDepth   int
}

// renderTree draws the tree with box-drawing branches, children in insertion
// order.
func renderTree(t *memtree.Tree, opts vizOptions) string {
	root := treeprint.NewWithRoot(displayNode(t.Root(), opts))
	walkRender(t.Root(), root, 1, opts)
	return root.String()
}

func walkRender(n *memtree.Node, branch treeprint.Tree, depth int, opts vizOptions) {
	if opts.maxDepth > 0 && depth > opts.maxDepth {
		return
	}
	for _, c := range n.Children() {
		if len(c.Children()) == 0 {
			branch.AddNode(displayNode(c, opts))
			continue
		}
		sub := branch.AddBranch(displayNode(c, opts))
		walkRender(c, sub, depth+1, opts)
	}
}

func displayNode(n *memtree.Node, opts vizOptions) string {
	name := n.Name()
	if name == "" {
		name = "root"
	}
	v, ok := n.Value()
	if !ok || !opts.showValues {
		return name
	}
	return name + " = " + truncate(formatValue(v), 40)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// compactView lists every leaf path with its value, sorted, aligned.
func compactView(t *memtree.Tree) string {
	type leaf struct {
		path  string
		value string
	}
	var leaves []leaf
	t.Walk(func(path memtree.Path, n *memtree.Node) {
		if len(n.Children()) > 0 {
			return
		}
		value := "(empty)"
		if v, ok := n.Value(); ok {
			value = truncate(formatValue(v), 50)
		}
		name := path.String()
		if name == "" {
			name = "root"
		}
		leaves = append(leaves, leaf{path: name, value: value})
	})
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].path < leaves[j].path })

	width := 0
	for _, l := range leaves {
		if len(l.path) > width {
			width = len(l.path)
		}
	}
	var b strings.Builder
	for _, l := range leaves {
		fmt.Fprintf(&b, "%-*s -> %s\n", width, l.path, l.value)
	}
	return b.String()
}

// depthHistogram prints node counts per depth as horizontal bars.
func depthHistogram(t *memtree.Tree) string {
	counts := map[int]int{}
	maxDepth := 0
	t.Walk(func(path memtree.Path, n *memtree.Node) {
		d := len(path)
		counts[d]++
		if d > maxDepth {
			maxDepth = d
		}
	})
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	var b strings.Builder
	for d := 0; d <= maxDepth; d++ {
		bar := strings.Repeat("█", counts[d]*40/maxCount)
		fmt.Fprintf(&b, "depth %2d: %s (%d nodes)\n", d, bar, counts[d])
	}
	return b.String()
}
