// Package graphsearch parses small bilingual graph descriptions and runs
// classic uninformed and heuristic searches over them, recording every step
// so the search can be replayed or taught.
//
// 🚀 What is inside?
//
//	A pure, synchronous library plus a command-line front end:
//		• Parsing: two text dialects, English or Vietnamese markers
//		• Traversal: depth-first search with an explicit stack
//		• Bounded search: list-based Branch-and-Bound with f = g + h pruning
//		• Local search: steepest-descent Hill-Climbing
//		• Traces: one snapshot per step, safe to keep and compare
//
// Packages:
//
//	core/             Graph (unweighted) and HeuristicGraph (edges + h(n))
//	parser/           dialect parsers, validation, canonical formatting, decoding
//	dfs/              Search on core.Graph
//	bnb/              Search on a weighted core.HeuristicGraph
//	hc/               Search on an unweighted core.HeuristicGraph
//	internal/config/  CLI configuration (YAML file + flags)
//	internal/report/  text tables, JSON/YAML documents, en/vi messages
//	cmd/graphsearch/  the graphsearch command
//
// Quick example:
//
//	A: B, C
//	C: D
//	Start: A
//	Goal: D
//
//	p := parser.ParseUnweighted(text)
//	if err := p.Validate().Err(); err != nil { ... }
//	res, _ := dfs.Search(p.Graph, p.Start, p.Goal)
//	fmt.Println(res.Path) // [A C D]
//
// Every engine takes the same functional options: WithContext for
// cancellation, WithOnStep to stream steps as they are recorded and
// WithMaxSteps to bound the trace.
package graphsearch
