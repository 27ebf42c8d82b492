// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary reads a YAML stream from a file or stdin and prints the
// resulting representation graph, one indented line per node, along with
// any warnings collected during parsing.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/mlaily/yamlsharp"
)

func main() {
	var (
		lineBreak = flag.String("line-break", "\n", `line break normalization target: "\n", "\r" or "\r\n"`)
		noNormal  = flag.Bool("no-normalize", false, "do not normalize line breaks in decoded scalars")
	)
	flag.Parse()

	text, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("yamlsharp: %v", err)
	}

	opts := []yamlsharp.Option{
		yamlsharp.WithNormalizeLineBreaks(!*noNormal),
		yamlsharp.WithLineBreakForInput(unescapeLineBreak(*lineBreak)),
	}
	result, err := yamlsharp.Parse(text, opts...)
	if err != nil {
		log.Fatalf("yamlsharp: %v", err)
	}

	for i, doc := range result.Documents {
		fmt.Printf("document %d:\n", i)
		dumpNode(doc, 1)
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func unescapeLineBreak(s string) string {
	switch s {
	case `\n`:
		return "\n"
	case `\r`:
		return "\r"
	case `\r\n`:
		return "\r\n"
	default:
		return s
	}
}

func dumpNode(n *yamlsharp.Node, depth int) {
	dumpNodeVisited(n, depth, make(map[*yamlsharp.Node]bool))
}

// dumpNodeVisited walks the representation graph, which anchors and
// aliases can make cyclic (e.g. "&a [*a]"). visited breaks the cycle by
// printing a placeholder on revisit instead of recursing again.
func dumpNodeVisited(n *yamlsharp.Node, depth int, visited map[*yamlsharp.Node]bool) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if visited[n] {
		fmt.Printf("%s- <alias to %s>\n", indent, n.Tag)
		return
	}
	switch n.Kind {
	case yamlsharp.ScalarNode:
		fmt.Printf("%s- scalar %s %s\n", indent, n.Tag, strconv.Quote(n.Value))
	case yamlsharp.SequenceNode:
		visited[n] = true
		fmt.Printf("%s- sequence %s (%d items)\n", indent, n.Tag, len(n.Items))
		for _, item := range n.Items {
			dumpNodeVisited(item, depth+1, visited)
		}
	case yamlsharp.MappingNode:
		visited[n] = true
		fmt.Printf("%s- mapping %s (%d entries)\n", indent, n.Tag, len(n.Entries))
		for _, entry := range n.Entries {
			dumpNodeVisited(entry.Key, depth+1, visited)
			dumpNodeVisited(entry.Value, depth+1, visited)
		}
	}
}
