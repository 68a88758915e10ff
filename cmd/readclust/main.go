package main

import (
	"flag"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/grailbio/readclust/cluster"
)

func main() {
	opts := cluster.DefaultOpts
	outPath := flag.String("out", "./clusters.fa", "FASTA file to store the surviving clusters.")
	flag.IntVar(&opts.MinOverlap, "min-overlap", cluster.DefaultOpts.MinOverlap,
		"Number of compatible shared positions required to merge two clusters.")
	flag.IntVar(&opts.MinReads, "min-reads", cluster.DefaultOpts.MinReads,
		"Number of contributing reads a cluster needs to be reported.")
	flag.BoolVar(&opts.TolGaps, "tol-gaps", cluster.DefaultOpts.TolGaps,
		"Tolerate a position present in only one of two clusters being compared.")
	flag.BoolVar(&opts.TolAmbigs, "tol-ambigs", cluster.DefaultOpts.TolAmbigs,
		"Treat ambiguity codes that share a base as matching.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	if flag.NArg() != 1 {
		log.Fatalf("usage: readclust [flags] <aligned.bam>")
	}
	bamPath := flag.Arg(0)

	clusters := readClusters(ctx, bamPath)
	nread := len(clusters)
	log.Printf("%s: %d aligned reads", bamPath, nread)

	opts.Progress = func(nclusters int) {
		log.Debug.Printf("processed: %d reads (%d clusters)", nread, nclusters)
	}
	clusters, nclusters, err := cluster.Aggregate(clusters, opts)
	if err != nil {
		log.Fatalf("aggregate %v: %v", bamPath, err)
	}
	log.Printf("%d of %d clusters have %d+ reads", nclusters, len(clusters), opts.MinReads)

	writeClusters(ctx, *outPath, clusters, opts.MinReads)
	log.Printf("All done")
}
