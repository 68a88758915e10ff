package cluster

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
)

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestComparePos(t *testing.T) {
	// Slots in strictly ascending order; the comparator must agree with the
	// index order for every pair and be antisymmetric, including on
	// insertion-index ties.
	slots := []Pos{
		{Col: 1, Ins: 0},
		{Col: 1, Ins: 1},
		{Col: 1, Ins: 2},
		{Col: 2, Ins: 0},
		{Col: 2, Ins: 1},
		{Col: 3, Ins: 0},
	}
	for i, x := range slots {
		for j, y := range slots {
			assert.Equal(t, sign(i-j), sign(comparePos(x, y)), "slots %d, %d", i, j)
			assert.Equal(t, -sign(comparePos(y, x)), sign(comparePos(x, y)), "slots %d, %d", i, j)
		}
	}
}

func TestComparePosEqual(t *testing.T) {
	// Only the (Col, Ins) key participates in the order.
	x := Pos{Col: 7, Ins: 2, Nuc: 1, Cov: 10}
	y := Pos{Col: 7, Ins: 2, Nuc: 8, Cov: 1}
	expect.EQ(t, comparePos(x, y), 0)
}
