package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsearch/parser"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		dialect string
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "validate [FILE...]",
		Short: "Parse and validate graph files without searching",
		Long: `Parse each FILE in the given dialect and report whether it is usable.
With --explain every line is printed next to the grammar rule it matched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parser.ParseDialect(dialect)
			if err != nil {
				return err
			}
			for _, path := range sources(args) {
				if err := a.validateOne(d, path, explain); err != nil {
					return &sourceError{source: path, err: err}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dialect, "dialect", "d", string(parser.DialectDFS), "grammar dialect: dfs, bnb or hc")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the rule matched by every line")

	return cmd
}

func (a *app) validateOne(d parser.Dialect, path string, explain bool) error {
	text, err := a.readText(path)
	if err != nil {
		return err
	}

	if explain {
		for i, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			label, ok := parser.Classify(d, line)
			if !ok {
				label = "-"
			}
			fmt.Fprintf(a.stdout, "%4d  %-16s %s\n", i+1, label, line)
		}
	}

	var nodes int
	if d == parser.DialectDFS {
		p := parser.ParseUnweighted(text)
		if err := p.Validate().Err(); err != nil {
			return err
		}
		nodes = p.Graph.Len()
	} else {
		p, err := parser.ParseHeuristic(text, d)
		if err != nil {
			return err
		}
		nodes = p.Graph.Len()
	}

	a.log.Info("graph valid", "source", path, "dialect", string(d), "nodes", nodes)
	fmt.Fprintln(a.stdout, a.loc.T("valid", path, strconv.Itoa(nodes)))

	return nil
}

// readText opens and decodes a source.
func (a *app) readText(path string) (string, error) {
	rc, err := a.openSource(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return parser.Decode(rc)
}
