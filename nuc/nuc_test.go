package nuc_test

import (
	"testing"

	"github.com/grailbio/testutil/expect"

	"github.com/grailbio/readclust/nuc"
)

func TestRoundTrip(t *testing.T) {
	// Every symbol with a mask of its own survives a round trip.
	for _, base := range []byte("ACGTMRWSYKVHDB") {
		expect.EQ(t, nuc.FromBase(base).Base(), base)
	}
	expect.EQ(t, nuc.FromBase('N'), nuc.N)
	expect.EQ(t, nuc.N.Base(), byte('N'))
}

func TestUnions(t *testing.T) {
	expect.EQ(t, nuc.FromBase('M'), nuc.A|nuc.C)
	expect.EQ(t, nuc.FromBase('R'), nuc.A|nuc.G)
	expect.EQ(t, nuc.FromBase('W'), nuc.A|nuc.T)
	expect.EQ(t, nuc.FromBase('S'), nuc.C|nuc.G)
	expect.EQ(t, nuc.FromBase('Y'), nuc.C|nuc.T)
	expect.EQ(t, nuc.FromBase('K'), nuc.G|nuc.T)
	expect.EQ(t, nuc.FromBase('V'), nuc.A|nuc.C|nuc.G)
	expect.EQ(t, nuc.FromBase('H'), nuc.A|nuc.C|nuc.T)
	expect.EQ(t, nuc.FromBase('D'), nuc.A|nuc.G|nuc.T)
	expect.EQ(t, nuc.FromBase('B'), nuc.C|nuc.G|nuc.T)
}

func TestUnknownSymbols(t *testing.T) {
	// Anything outside the canonical set encodes to the full mask, and any
	// mask without a symbol decodes to 'N'.
	for _, base := range []byte{'Z', 'a', 'c', '*', '=', 0} {
		expect.EQ(t, nuc.FromBase(base), nuc.N)
	}
	expect.EQ(t, nuc.Code(0).Base(), byte('N'))
	expect.EQ(t, nuc.Code(42).Base(), byte('N'))
}
