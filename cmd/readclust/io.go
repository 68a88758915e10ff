package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/klauspost/compress/gzip"

	"github.com/grailbio/readclust/cluster"
)

// readClusters reads a BAM file and builds one initial cluster per usable
// mapped record.  Unmapped, secondary and supplementary records are skipped,
// as are records that align no bases.
func readClusters(ctx context.Context, path string) []*cluster.Cluster {
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Fatalf("open %v: %v", path, err)
	}
	br, err := bam.NewReader(in.Reader(ctx), 1)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	var (
		clusters []*cluster.Cluster
		nskipped int
	)
	for {
		rec, err := br.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("read %v: %v", path, err)
		}
		if rec.Flags&(sam.Unmapped|sam.Secondary|sam.Supplementary) != 0 {
			nskipped++
			continue
		}
		c, err := cluster.FromRecord(rec)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		if c == nil {
			nskipped++
			continue
		}
		clusters = append(clusters, c)
	}
	once := errors.Once{}
	once.Set(br.Close())
	once.Set(in.Close(ctx))
	if err := once.Err(); err != nil {
		log.Fatalf("close %v: %v", path, err)
	}
	if nskipped > 0 {
		log.Printf("%s: skipped %d unusable records", path, nskipped)
	}
	return clusters
}

// writeClusters writes every cluster with at least minReads contributing
// reads as a FASTA record, gzip-compressed when the path asks for it.
func writeClusters(ctx context.Context, path string, clusters []*cluster.Cluster, minReads int) {
	out, err := file.Create(ctx, path)
	if err != nil {
		log.Fatalf("create %v: %v", path, err)
	}
	wr := io.Writer(out.Writer(ctx))
	var gz *gzip.Writer
	if fileio.DetermineType(path) == fileio.Gzip {
		gz = gzip.NewWriter(wr)
		wr = gz
	}
	w := bufio.NewWriter(wr)
	er := errors.Once{}
	n := 0
	for _, c := range clusters {
		if c.NContrib < minReads {
			continue
		}
		_, err := fmt.Fprintf(w, ">cluster%d reads=%d span=%d-%d\n", n, c.NContrib, c.LPos, c.RPos)
		er.Set(err)
		_, err = w.Write(renderSeq(c))
		er.Set(err)
		er.Set(w.WriteByte('\n'))
		n++
	}
	er.Set(w.Flush())
	if gz != nil {
		er.Set(gz.Close())
	}
	er.Set(out.Close(ctx))
	if er.Err() != nil {
		log.Fatalf("write %v: %v", path, er.Err())
	}
	log.Printf("Wrote %d clusters to %s", n, path)
}

// renderSeq flattens a cluster's calls into nucleotide symbols in position
// order, insertions inline, with '-' standing in for reference columns the
// cluster spans but never observed.
func renderSeq(c *cluster.Cluster) []byte {
	seq := make([]byte, 0, len(c.Pos))
	next := c.LPos
	for _, p := range c.Pos {
		for ; next < p.Col; next++ {
			seq = append(seq, '-')
		}
		seq = append(seq, p.Nuc.Base())
		if p.Ins == 0 {
			next = p.Col + 1
		}
	}
	return seq
}
