package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/recmem/recmem/memtree"

	"github.com/urfave/cli/v2"
)

var cmdRepl = &cli.Command{
	Name:  "repl",
	Usage: "interactively explore and manipulate a memory tree",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "load",
			Aliases: []string{"l"},
			Usage:   "file path of an exported tree to start from",
		},
		&cli.BoolFlag{
			Name:  "no-seed",
			Usage: "start with an empty tree instead of example data",
		},
	},
	Action: runRepl,
}

type replSession struct {
	tree *memtree.Tree
	out  io.Writer
	done bool
}

// replCommand is one entry of the fixed dispatch table. No reflection: the
// table is the complete command set.
type replCommand struct {
	name    string
	aliases []string
	usage   string
	summary string
	handler func(s *replSession, args []string) error
}

var replCommands = []replCommand{
	{
		name:    "set",
		usage:   "set <path> <value>",
		summary: "store a value at a dot-delimited path",
		handler: replSet,
	},
	{
		name:    "get",
		usage:   "get <path>",
		summary: "read the value at a path",
		handler: replGet,
	},
	{
		name:    "delete",
		aliases: []string{"del"},
		usage:   "delete <path>",
		summary: "remove a path and its whole subtree",
		handler: replDelete,
	},
	{
		name:    "search",
		usage:   "search <value>",
		summary: "find every path storing a value",
		handler: replSearch,
	},
	{
		name:    "search-key",
		usage:   "search-key <segment>",
		summary: "find every path containing a segment",
		handler: replSearchKey,
	},
	{
		name:    "tree",
		aliases: []string{"display"},
		usage:   "tree [--compact|--histogram]",
		summary: "render the memory tree",
		handler: replTree,
	},
	{
		name:    "stats",
		usage:   "stats",
		summary: "show tree shape statistics",
		handler: replStats,
	},
	{
		name:    "export",
		usage:   "export [file]",
		summary: "print or write the tree as JSON",
		handler: replExport,
	},
	{
		name:    "load",
		usage:   "load <file>",
		summary: "replace the tree with an exported JSON document",
		handler: replLoad,
	},
	{
		name:    "clear",
		usage:   "clear",
		summary: "reset to an empty tree",
		handler: replClear,
	},
	{
		name:    "help",
		usage:   "help [command]",
		summary: "show command help",
	},
	{
		name:    "exit",
		aliases: []string{"quit"},
		usage:   "exit",
		summary: "leave the repl",
		handler: replExit,
	},
}

func init() {
	for i := range replCommands {
		if replCommands[i].name == "help" {
			replCommands[i].handler = replHelp
		}
	}
}

func findReplCommand(name string) *replCommand {
	for i := range replCommands {
		cmd := &replCommands[i]
		if cmd.name == name {
			return cmd
		}
		for _, alias := range cmd.aliases {
			if alias == name {
				return cmd
			}
		}
	}
	return nil
}

func runRepl(cctx *cli.Context) error {
	sess := &replSession{
		tree: memtree.New(),
		out:  os.Stdout,
	}

	if fp := cctx.String("load"); fp != "" {
		tree, err := loadTreeFile(fp)
		if err != nil {
			return err
		}
		sess.tree = tree
		slog.Info("loaded tree", "path", fp, "nodes", tree.Stats().TotalNodes)
	} else if !cctx.Bool("no-seed") {
		seedExampleData(sess.tree)
		fmt.Fprintln(sess.out, "loaded example data; type 'tree' to see it")
	}

	fmt.Fprintln(sess.out, "recursive memory tree repl; 'help' for commands, 'exit' to quit")

	scanner := bufio.NewScanner(os.Stdin)
	for !sess.done {
		fmt.Fprint(sess.out, "recmem> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd := findReplCommand(strings.ToLower(fields[0]))
		if cmd == nil {
			fmt.Fprintf(sess.out, "unknown command: %s (try 'help')\n", fields[0])
			continue
		}
		if err := cmd.handler(sess, fields[1:]); err != nil {
			fmt.Fprintf(sess.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// parseReplValue types free-form input: anything that parses as JSON is
// stored as that value (numbers, booleans, null, arrays, objects), everything
// else is stored as the raw string.
func parseReplValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

func formatValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func replSet(s *replSession, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: set <path> <value>")
	}
	path := args[0]
	value := parseReplValue(strings.Join(args[1:], " "))
	if err := s.tree.SetString(path, value); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "set %s = %s\n", path, formatValue(value))
	return nil
}

func replGet(s *replSession, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <path>")
	}
	v, ok := s.tree.GetString(args[0])
	if !ok {
		fmt.Fprintf(s.out, "path not found: %s\n", args[0])
		return nil
	}
	fmt.Fprintf(s.out, "%s = %s\n", args[0], formatValue(v))
	return nil
}

func replDelete(s *replSession, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <path>")
	}
	if !s.tree.DeleteString(args[0]) {
		fmt.Fprintf(s.out, "path not found: %s\n", args[0])
		return nil
	}
	fmt.Fprintf(s.out, "deleted %s\n", args[0])
	return nil
}

func replSearch(s *replSession, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: search <value>")
	}
	needle := parseReplValue(strings.Join(args, " "))
	results := s.tree.Search(needle)
	if len(results) == 0 {
		fmt.Fprintf(s.out, "no results for %s\n", formatValue(needle))
		return nil
	}
	fmt.Fprintf(s.out, "found %d result(s):\n", len(results))
	for _, path := range results {
		fmt.Fprintf(s.out, "  %s\n", path)
	}
	return nil
}

func replSearchKey(s *replSession, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: search-key <segment>")
	}
	results := s.tree.SearchKey(args[0])
	if len(results) == 0 {
		fmt.Fprintf(s.out, "no paths contain segment %q\n", args[0])
		return nil
	}
	fmt.Fprintf(s.out, "found %d path(s) containing %q:\n", len(results), args[0])
	for _, path := range results {
		fmt.Fprintf(s.out, "  %s\n", path)
	}
	return nil
}

func replTree(s *replSession, args []string) error {
	switch {
	case len(args) > 0 && args[0] == "--compact":
		fmt.Fprint(s.out, compactView(s.tree))
	case len(args) > 0 && args[0] == "--histogram":
		fmt.Fprint(s.out, depthHistogram(s.tree))
	default:
		fmt.Fprintln(s.out, renderTree(s.tree, vizOptions{showValues: true}))
	}
	return nil
}

func replStats(s *replSession, args []string) error {
	printStats(s.out, s.tree.Stats())
	return nil
}

func replExport(s *replSession, args []string) error {
	b, err := s.tree.ExportJSON()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if err := os.WriteFile(args[0], b, 0666); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "exported to %s\n", args[0])
		return nil
	}
	fmt.Fprintln(s.out, string(b))
	return nil
}

func replLoad(s *replSession, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <file>")
	}
	tree, err := loadTreeFile(args[0])
	if err != nil {
		return err
	}
	s.tree = tree
	fmt.Fprintf(s.out, "loaded %s (%d nodes)\n", args[0], tree.Stats().TotalNodes)
	return nil
}

func replClear(s *replSession, args []string) error {
	s.tree = memtree.New()
	fmt.Fprintln(s.out, "memory cleared")
	return nil
}

func replHelp(s *replSession, args []string) error {
	if len(args) > 0 {
		cmd := findReplCommand(args[0])
		if cmd == nil {
			fmt.Fprintf(s.out, "unknown command: %s\n", args[0])
			return nil
		}
		fmt.Fprintf(s.out, "%s\n  %s\n", cmd.usage, cmd.summary)
		return nil
	}
	fmt.Fprintln(s.out, "commands:")
	for _, cmd := range replCommands {
		fmt.Fprintf(s.out, "  %-12s %s\n", cmd.name, cmd.summary)
	}
	return nil
}

func replExit(s *replSession, args []string) error {
	s.done = true
	return nil
}

func loadTreeFile(fp string) (*memtree.Tree, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, err
	}
	return memtree.ImportJSON(b)
}

func seedExampleData(tree *memtree.Tree) {
	_ = tree.SetString("example.greeting", "hello, recmem")
	_ = tree.SetString("example.info", "type 'tree' to see the memory tree")
}

func printStats(out io.Writer, stats memtree.Stats) {
	fmt.Fprintf(out, "total nodes:     %d\n", stats.TotalNodes)
	fmt.Fprintf(out, "maximum depth:   %d\n", stats.MaxDepth)
	fmt.Fprintf(out, "direct children: %d\n", stats.DirectChildren)
	fmt.Fprintf(out, "root has value:  %v\n", stats.RootHasValue)
}
