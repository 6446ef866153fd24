package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphsearch/bnb"
	"github.com/katalvlaran/graphsearch/dfs"
	"github.com/katalvlaran/graphsearch/hc"
	"github.com/katalvlaran/graphsearch/internal/report"
	"github.com/katalvlaran/graphsearch/parser"
)

// algorithm names a search sub-command.
type algorithm string

const (
	algoDFS algorithm = "dfs"
	algoBNB algorithm = "bnb"
	algoHC  algorithm = "hc"
)

var algoShort = map[algorithm]string{
	algoDFS: "Depth-first search over the unweighted dialect",
	algoBNB: "Branch-and-Bound over the weighted heuristic dialect",
	algoHC:  "Hill-Climbing over the heuristic dialect",
}

func (a *app) searchCmd(algo algorithm) *cobra.Command {
	return &cobra.Command{
		Use:   string(algo) + " [FILE...]",
		Short: algoShort[algo],
		Long: algoShort[algo] + `.

Each FILE is parsed, validated and searched; "-" or no FILE reads stdin.
Several files are searched concurrently (see --jobs) and reported in
argument order. A search that finds no path still exits 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd.Context(), algo, sources(args))
		},
	}
}

// runSearch searches every source and writes the reports in order.
func (a *app) runSearch(ctx context.Context, algo algorithm, paths []string) error {
	reports := make([]*report.Report, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			r, err := a.searchOne(gctx, algo, path)
			if err != nil {
				return &sourceError{source: path, err: err}
			}
			if len(paths) > 1 {
				r.Source = path
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return report.Write(a.stdout, a.format, a.loc, reports...)
}

// searchOne parses path in algo's dialect and runs the engine.
func (a *app) searchOne(ctx context.Context, algo algorithm, path string) (*report.Report, error) {
	log := a.log.With("algorithm", string(algo), "source", path)
	began := time.Now()

	rc, err := a.openSource(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ctx, cancel := a.searchContext(ctx)
	defer cancel()

	var r *report.Report
	switch algo {
	case algoDFS:
		p, err := parser.ReadUnweighted(rc)
		if err != nil {
			return nil, err
		}
		if v := p.Validate(); !v.Valid {
			log.Debug("graph rejected",
				"nodes", p.Graph.Nodes(), "start", p.Start, "goal", p.Goal, "reason", v.Error)
			return nil, v.Err()
		}
		log.Info("graph parsed", "nodes", p.Graph.Len(), "start", p.Start, "goal", p.Goal)

		res, err := dfs.Search(p.Graph, p.Start, p.Goal,
			dfs.WithContext(ctx), dfs.WithMaxSteps(a.cfg.MaxSteps))
		if err != nil {
			return nil, fmt.Errorf("graphsearch: %w", err)
		}
		r = report.FromDFS(res, p.Start, p.Goal)

	case algoBNB:
		p, err := parser.ReadHeuristic(rc, parser.DialectBNB)
		if err != nil {
			return nil, err
		}
		log.Info("graph parsed", "nodes", p.Graph.Len(), "start", p.Start, "goal", p.Goal)

		res, err := bnb.Search(p.Graph, p.Start, p.Goal,
			bnb.WithContext(ctx), bnb.WithMaxSteps(a.cfg.MaxSteps))
		if err != nil {
			return nil, fmt.Errorf("graphsearch: %w", err)
		}
		r = report.FromBNB(res, p.Start, p.Goal)

	case algoHC:
		p, err := parser.ReadHeuristic(rc, parser.DialectHC)
		if err != nil {
			return nil, err
		}
		log.Info("graph parsed", "nodes", p.Graph.Len(), "start", p.Start, "goal", p.Goal)

		res, err := hc.Search(p.Graph, p.Start, p.Goal,
			hc.WithContext(ctx), hc.WithMaxSteps(a.cfg.MaxSteps))
		if err != nil {
			return nil, fmt.Errorf("graphsearch: %w", err)
		}
		r = report.FromHC(res, p.Start, p.Goal)

	default:
		return nil, fmt.Errorf("graphsearch: unknown algorithm %q", algo)
	}

	log.Info("search finished", "found", r.Found, "path", r.Path, elapsed(began))

	return r, nil
}
