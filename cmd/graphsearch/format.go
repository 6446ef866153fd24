package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsearch/parser"
)

func (a *app) fmtCmd() *cobra.Command {
	var dialect string
	cmd := &cobra.Command{
		Use:   "fmt [FILE]",
		Short: "Print a graph file in canonical form",
		Long: `Parse FILE and print it back in canonical form: declarations in their
original order, one per line, followed by Start and Goal lines.
Heuristic dialects are validated first; the unweighted dialect never fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parser.ParseDialect(dialect)
			if err != nil {
				return err
			}
			path := sources(args)[0]
			out, err := a.formatSource(d, path)
			if err != nil {
				return &sourceError{source: path, err: err}
			}
			_, err = io.WriteString(a.stdout, out)
			return err
		},
	}
	cmd.Flags().StringVarP(&dialect, "dialect", "d", string(parser.DialectDFS), "grammar dialect: dfs, bnb or hc")

	return cmd
}

// formatSource renders one source canonically.
func (a *app) formatSource(d parser.Dialect, path string) (string, error) {
	text, err := a.readText(path)
	if err != nil {
		return "", err
	}
	if d == parser.DialectDFS {
		return parser.FormatUnweighted(parser.ParseUnweighted(text)), nil
	}

	p, err := parser.ParseHeuristic(text, d)
	if err != nil {
		return "", err
	}

	return parser.FormatHeuristic(p), nil
}
