// Command graphgen writes graph streams in the format read by salesman.
//
//	graphgen --kind complete -n 8 --min 1 --max 100 --seed 7 --count 3 > graphs.txt
//
// Each block uses the next seed (seed, seed+1, …) so a multi-graph stream is
// reproducible as a whole.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/bischofs/TravelingSalesman/builder"
	"github.com/bischofs/TravelingSalesman/graph"
	"github.com/bischofs/TravelingSalesman/graphfile"
)

type cli struct {
	Kind  string  `help:"Topology: complete, cycle, wheel or sparse." enum:"complete,cycle,wheel,sparse" default:"complete"`
	N     int     `short:"n" help:"Vertices per graph." default:"6"`
	P     float64 `short:"p" help:"Edge probability for sparse graphs." default:"0.5"`
	Min   int64   `help:"Smallest edge weight." default:"1"`
	Max   int64   `help:"Largest edge weight." default:"100"`
	Seed  int64   `help:"Seed of the first graph." default:"1"`
	Count int     `help:"Number of graphs in the stream." default:"1"`
	Out   string  `short:"o" help:"Output file (default stdout)." type:"path"`
}

func main() {
	var params cli
	kctx := kong.Parse(&params,
		kong.Name("graphgen"),
		kong.Description("Generate weighted graph streams for salesman."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(writeStream(params, os.Stdout))
}

// writeStream generates into params.Out, or into stdout when Out is empty.
// The output file is closed on every path and its close error is returned.
func writeStream(params cli, stdout io.Writer) (err error) {
	out := stdout
	if params.Out != "" {
		f, ferr := os.Create(params.Out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		out = f
	}

	bw := bufio.NewWriter(out)
	if err = generate(params, bw); err != nil {
		return err
	}

	return bw.Flush()
}

// generate writes params.Count blocks to w.
func generate(params cli, w io.Writer) error {
	if params.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", params.Count)
	}
	if params.Min < 1 || params.Max < params.Min {
		return fmt.Errorf("weights need 1 ≤ min ≤ max, got %d..%d", params.Min, params.Max)
	}

	var i int
	for i = 0; i < params.Count; i++ {
		opts := []builder.Option{
			builder.WithSeed(params.Seed + int64(i)),
			builder.WithUniformWeight(params.Min, params.Max),
		}

		var (
			edges []graph.Edge
			err   error
		)
		switch params.Kind {
		case "cycle":
			edges, err = builder.Cycle(params.N, opts...)
		case "wheel":
			edges, err = builder.Wheel(params.N, opts...)
		case "sparse":
			edges, err = builder.RandomSparse(params.N, params.P, opts...)
		default:
			edges, err = builder.Complete(params.N, opts...)
		}
		if err != nil {
			return err
		}
		if err = graphfile.Write(w, params.N, edges); err != nil {
			return err
		}
	}

	return nil
}
