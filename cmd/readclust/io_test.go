package main

import (
	"testing"

	"github.com/grailbio/testutil/expect"

	"github.com/grailbio/readclust/cluster"
	"github.com/grailbio/readclust/nuc"
)

func TestRenderSeq(t *testing.T) {
	c := &cluster.Cluster{
		Pos: []cluster.Pos{
			{Col: 10, Ins: 0, Nuc: nuc.A, Cov: 2},
			{Col: 10, Ins: 1, Nuc: nuc.C, Cov: 1},
			{Col: 11, Ins: 0, Nuc: nuc.G, Cov: 2},
			{Col: 14, Ins: 0, Nuc: nuc.A | nuc.C, Cov: 1},
			{Col: 15, Ins: 0, Nuc: nuc.N, Cov: 1},
		},
		LPos: 10, RPos: 15, NContrib: 2,
	}
	// Insertions render inline after their column; unobserved columns 12
	// and 13 become dashes; ambiguity codes render as IUPAC symbols.
	expect.EQ(t, string(renderSeq(c)), "ACG--MN")
}

func TestRenderSeqNoGaps(t *testing.T) {
	c := &cluster.Cluster{
		Pos: []cluster.Pos{
			{Col: 5, Ins: 0, Nuc: nuc.T, Cov: 1},
			{Col: 6, Ins: 0, Nuc: nuc.T, Cov: 1},
		},
		LPos: 5, RPos: 6, NContrib: 1,
	}
	expect.EQ(t, string(renderSeq(c)), "TT")
}
