package main

import (
	"fmt"
	"os"

	"github.com/recmem/recmem/memtree"

	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "seed an example memory tree and walk through the operations",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "scenario",
			Usage: "which example to run (thoughts, knowledge, conversation, filesystem, states)",
			Value: "thoughts",
		},
	},
	Action: runDemo,
}

type demoScenario struct {
	seed    func(*memtree.Tree)
	queries func(*memtree.Tree)
}

var demoScenarios = map[string]demoScenario{
	"thoughts":     {seed: seedThoughts, queries: queryThoughts},
	"knowledge":    {seed: seedKnowledge, queries: queryKnowledge},
	"conversation": {seed: seedConversation, queries: queryConversation},
	"filesystem":   {seed: seedFilesystem, queries: queryFilesystem},
	"states":       {seed: seedStates, queries: nil},
}

func runDemo(cctx *cli.Context) error {
	name := cctx.String("scenario")
	scenario, ok := demoScenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario: %s", name)
	}

	tree := memtree.New()
	scenario.seed(tree)

	fmt.Println(renderTree(tree, vizOptions{showValues: true}))
	if scenario.queries != nil {
		scenario.queries(tree)
	}

	fmt.Println()
	printStats(os.Stdout, tree.Stats())
	return nil
}

func mustSet(tree *memtree.Tree, path string, value any) {
	if err := tree.SetString(path, value); err != nil {
		panic(err)
	}
}

func seedThoughts(tree *memtree.Tree) {
	mustSet(tree, "thoughts.ai.recursion", "recursive memory rocks")
	mustSet(tree, "thoughts.ai.alignment", "emotion is logic")
	mustSet(tree, "thoughts.philosophy.epistemology", "knowledge structures")
	mustSet(tree, "emotions.fear", "predictive error signal")
	mustSet(tree, "emotions.joy", "goal achievement signal")
	mustSet(tree, "sensory.vision.color", "wavelength perception")
	mustSet(tree, "sensory.vision.depth", "binocular disparity")
	mustSet(tree, "actions.speak.intent", "communicate ideas")
	mustSet(tree, "actions.move.purpose", "navigate space")
}

func queryThoughts(tree *memtree.Tree) {
	fmt.Println("search 'emotion is logic':")
	for _, path := range tree.Search("emotion is logic") {
		fmt.Printf("  %s\n", path)
	}
	fmt.Println("paths containing segment 'ai':")
	for _, path := range tree.SearchKey("ai") {
		fmt.Printf("  %s\n", path)
	}
}

func seedKnowledge(tree *memtree.Tree) {
	mustSet(tree, "concepts.mathematics.algebra.definition", "study of mathematical symbols")
	mustSet(tree, "concepts.mathematics.algebra.uses", []any{"cryptography", "physics", "ml"})
	mustSet(tree, "concepts.mathematics.calculus.definition", "study of change")
	mustSet(tree, "concepts.physics.quantum.definition", "discrete energy levels")
	mustSet(tree, "concepts.physics.quantum.key_principle", "uncertainty")
	mustSet(tree, "concepts.physics.classical.definition", "deterministic mechanics")
	mustSet(tree, "relationships.mathematics.connects_to", "physics")
	mustSet(tree, "relationships.physics.foundation", "mathematics")
}

func queryKnowledge(tree *memtree.Tree) {
	fmt.Println("all definitions:")
	for _, path := range tree.SearchKey("definition") {
		v, _ := tree.Get(path)
		fmt.Printf("  %s: %s\n", path, formatValue(v))
	}
}

func seedConversation(tree *memtree.Tree) {
	mustSet(tree, "conversation.session_001.user.name", "alice")
	mustSet(tree, "conversation.session_001.user.intent", "learn recursion")
	mustSet(tree, "conversation.session_001.messages.msg_1.speaker", "user")
	mustSet(tree, "conversation.session_001.messages.msg_1.text", "what is recursive memory?")
	mustSet(tree, "conversation.session_001.messages.msg_2.speaker", "assistant")
	mustSet(tree, "conversation.session_001.messages.msg_2.text", "a tree of dot-path nodes")
	mustSet(tree, "conversation.session_002.user.name", "bob")
	mustSet(tree, "conversation.session_002.user.intent", "debug code")
}

func queryConversation(tree *memtree.Tree) {
	fmt.Println("messages from the user:")
	for _, path := range tree.Search("user") {
		fmt.Printf("  %s\n", path)
	}
	fmt.Println("paths containing segment 'intent':")
	for _, path := range tree.SearchKey("intent") {
		v, _ := tree.Get(path)
		fmt.Printf("  %s = %s\n", path, formatValue(v))
	}
}

func seedFilesystem(tree *memtree.Tree) {
	mustSet(tree, "home.user.documents.notes", "meeting notes")
	mustSet(tree, "home.user.documents.reports", "quarterly report")
	mustSet(tree, "home.user.code.python.main", "print('hello')")
	mustSet(tree, "home.user.code.python.utils", "utilities")
	mustSet(tree, "home.user.code.rust.main", "fn main() {}")
}

func queryFilesystem(tree *memtree.Tree) {
	fmt.Println("paths under a 'python' segment:")
	for _, path := range tree.SearchKey("python") {
		fmt.Printf("  /%s\n", path)
	}
}

func seedStates(tree *memtree.Tree) {
	mustSet(tree, "states.idle.description", "waiting for input")
	mustSet(tree, "states.idle.transitions.start", "processing")
	mustSet(tree, "states.processing.description", "working on task")
	mustSet(tree, "states.processing.transitions.complete", "done")
	mustSet(tree, "states.processing.transitions.error", "failed")
	mustSet(tree, "states.done.description", "task completed")
	mustSet(tree, "states.failed.description", "error occurred")
	mustSet(tree, "states.failed.transitions.retry", "processing")
	mustSet(tree, "current.state", "idle")
}
