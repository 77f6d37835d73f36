// Command coograph loads a graph or matrix file, prints summary
// statistics and its first few edges, and optionally re-emits the result
// as a binary COO snapshot or a text edge list.
package main

import (
	"flag"
	"fmt"
	"os"

	"coograph/coo"
)

func main() {
	sym := flag.Bool("sym", false, "expand each edge into both directions")
	ut := flag.Bool("ut", false, "keep only the upper triangle")
	sl := flag.Bool("sl", false, "drop self-loops")
	wgt := flag.Bool("wgt", false, "carry a weight column")
	workers := flag.Int("workers", 0, "goroutine fan-out (0 = GOMAXPROCS)")
	out := flag.String("out", "", "write the result as a binary COO snapshot to this path")
	outText := flag.String("out-text", "", "write the result as a text edge list to this path")
	compress := flag.Bool("gzip", false, "gzip-compress -out-text output")
	outCSV := flag.String("out-csv", "", "write the result as chunked CSV shards with this path prefix")
	edgesPerFile := flag.Int("edges-per-file", 0, "records per -out-csv shard (0 = one shard)")
	edgeIDs := flag.Bool("edge-ids", false, "prefix -out-csv records with their edge index")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <graph-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	opts := coo.Options{
		Sym:          *sym,
		UT:           *ut,
		SL:           *sl,
		Wgt:          *wgt,
		Workers:      *workers,
		Compress:     *compress,
		EdgesPerFile: *edgesPerFile,
		EdgeIDs:      *edgeIDs,
	}

	g, err := coo.Load[uint32, uint64, float64](path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("%s: n=%d nrows=%d ncols=%d m=%d sym=%v ut=%v sl=%v wgt=%v\n",
		path, g.N, g.NRows, g.NCols, g.M, g.Sym, g.UT, g.SL, g.Wgt)

	limit := 5
	if int(g.M) < limit {
		limit = int(g.M)
	}
	for i := 0; i < limit; i++ {
		if g.Wgt {
			fmt.Printf("  edge %d: %d -> %d (w=%v)\n", i, g.X[i], g.Y[i], g.W[i])
		} else {
			fmt.Printf("  edge %d: %d -> %d\n", i, g.X[i], g.Y[i])
		}
	}

	if *out != "" {
		if err := coo.SaveBinary(*out, g, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
			os.Exit(1)
		}
	}
	if *outText != "" {
		if err := coo.WriteText(*outText, g, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outText, err)
			os.Exit(1)
		}
	}
	if *outCSV != "" {
		if err := coo.WriteCSVChunked(*outCSV, g, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outCSV, err)
			os.Exit(1)
		}
	}
}
