package cluster

import "github.com/grailbio/readclust/nuc"

// PosType is the integer type used to represent genomic positions.
type PosType = int32

// Pos is one observed alignment column in a cluster: a reference column, an
// insertion index ordering any bases inserted after that column, the base-set
// call, and the number of reads supporting the call.
type Pos struct {
	Col PosType
	Ins PosType
	Nuc nuc.Code
	Cov int32
}

// comparePos orders position records lexicographically by (Col, Ins).  It
// returns a negative value if x sorts before y, a positive value if x sorts
// after y, and 0 if the two records occupy the same slot.  This is the
// merge-join key used wherever two position sequences are walked in lockstep.
func comparePos(x, y Pos) int {
	switch {
	case x.Col > y.Col:
		return 1
	case x.Col < y.Col:
		return -1
	case x.Ins > y.Ins:
		return 1
	case x.Ins < y.Ins:
		return -1
	}
	return 0
}

func minPos(a, b PosType) PosType {
	if a < b {
		return a
	}
	return b
}

func maxPos(a, b PosType) PosType {
	if a > b {
		return a
	}
	return b
}
