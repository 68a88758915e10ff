// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package nuc converts nucleotide symbols to and from the 4-bit base-set
// representation used throughout readclust.  Each of the four bases gets one
// bit, and the 11 IUPAC ambiguity letters are the bitwise unions of their
// member bases.  The masks are bit-identical to the .bam seq[] nibble
// encoding, so BAM sequence data converts by table lookup alone.
package nuc

// Code is a set of candidate bases at one alignment position, one bit per
// base.  A well-formed code is nonzero.
type Code byte

const (
	// A represents an A base.
	A Code = 1 << iota
	// C represents a C base.
	C
	// G represents a G base.
	G
	// T represents a T base.
	T

	// N is the full set: any base.
	N = A | C | G | T
)

// codeToBaseTable is the Code -> IUPAC symbol mapping.  Slot 0 has no symbol
// of its own and renders as 'N'.
var codeToBaseTable = [16]byte{'N', 'A', 'C', 'M', 'G', 'R', 'S', 'V', 'T', 'W', 'Y', 'H', 'K', 'D', 'B', 'N'}

// baseToCodeTable is the ASCII -> Code mapping.  Anything outside the 15
// canonical symbols maps to the full set.
var baseToCodeTable [256]Code

func init() {
	for i := range baseToCodeTable {
		baseToCodeTable[i] = N
	}
	for code, base := range codeToBaseTable {
		if base != 'N' {
			baseToCodeTable[base] = Code(code)
		}
	}
}

// FromBase returns the base set for an IUPAC nucleotide symbol.  Symbols
// outside the canonical set (including 'N' itself) yield the full set.
func FromBase(base byte) Code { return baseToCodeTable[base] }

// Base returns the IUPAC symbol for a base set.  The empty and full sets,
// and anything with bits above the low nibble, render as 'N'.
func (c Code) Base() byte {
	if c > N {
		return 'N'
	}
	return codeToBaseTable[c]
}
