// Package cluster consolidates overlapping read alignments into consensus
// clusters.  Each cluster is a sparse, position-indexed sequence of
// nucleotide calls; Merge decides whether two clusters cover the same
// genomic segment and combines them when they do, and Aggregate drives
// pairwise merging across a whole collection to a fixed point.
package cluster

// Cluster is a consensus-in-progress: one or more reads reduced to an
// ordered sequence of position records.
type Cluster struct {
	// Pos is sorted ascending by (Col, Ins) with no duplicate slots.
	Pos []Pos
	// LPos and RPos are the leftmost and rightmost reference columns spanned.
	LPos, RPos PosType
	// NContrib is the number of original reads this cluster subsumes.
	NContrib int
}

// release drops the cluster's position storage after a merge has consumed
// it.  A released cluster must not be used again.
func (c *Cluster) release() {
	c.Pos = nil
	c.LPos, c.RPos = 0, 0
	c.NContrib = 0
}
