// Command graphsearch parses a graph description and runs DFS,
// Branch-and-Bound or Hill-Climbing over it, printing the step trace.
//
//	graphsearch dfs graph.txt
//	graphsearch bnb --output json weighted.txt
//	graphsearch hc --lang vi - < hc.txt
//	graphsearch validate --dialect bnb weighted.txt
//	graphsearch fmt --dialect hc hc.txt
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
