package cluster

import (
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"

	"github.com/grailbio/readclust/nuc"
)

// FromRecord reduces one mapped alignment record to its initial single-read
// cluster.  Aligned bases land on their reference column with insertion
// index 0; inserted bases attach to the last consumed reference column with
// ascending insertion indices; deletions and skips advance the column
// without emitting a record; clipped bases are dropped.  Every emitted
// record has coverage 1.  An insertion before the first reference column
// has no column to attach to and its bases are dropped like clips.
//
// Records whose CIGAR consumes no reference bases (for example fully
// soft-clipped reads) yield a nil cluster and no error.
func FromRecord(rec *sam.Record) (*Cluster, error) {
	if rec.Seq.Length == 0 {
		return nil, errors.Errorf("%s: record has no sequence", rec.Name)
	}
	seq := rec.Seq.Expand()
	c := &Cluster{NContrib: 1}
	start := PosType(rec.Pos)
	col := start
	ins := PosType(0)
	qi := 0
	for _, co := range rec.Cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			if qi+n > len(seq) {
				return nil, errors.Errorf("%s: CIGAR consumes %d of %d sequence bases", rec.Name, qi+n, rec.Seq.Length)
			}
			ins = 0
			for k := 0; k < n; k++ {
				c.Pos = append(c.Pos, Pos{Col: col, Ins: 0, Nuc: nuc.FromBase(seq[qi]), Cov: 1})
				col++
				qi++
			}
		case sam.CigarInsertion:
			if col == start {
				qi += n
				continue
			}
			if qi+n > len(seq) {
				return nil, errors.Errorf("%s: CIGAR consumes %d of %d sequence bases", rec.Name, qi+n, rec.Seq.Length)
			}
			// ins survives across adjacent insertion ops so the keys stay
			// strictly ascending.
			for k := 0; k < n; k++ {
				ins++
				c.Pos = append(c.Pos, Pos{Col: col - 1, Ins: ins, Nuc: nuc.FromBase(seq[qi]), Cov: 1})
				qi++
			}
		case sam.CigarDeletion, sam.CigarSkipped:
			ins = 0
			col += PosType(n)
		case sam.CigarSoftClipped:
			qi += n
		case sam.CigarHardClipped, sam.CigarPadded:
			// No bases on either side.
		default:
			return nil, errors.Errorf("%s: unsupported CIGAR op %v", rec.Name, co)
		}
	}
	if qi != rec.Seq.Length {
		return nil, errors.Errorf("%s: CIGAR consumes %d of %d sequence bases", rec.Name, qi, rec.Seq.Length)
	}
	if len(c.Pos) == 0 {
		return nil, nil
	}
	c.LPos = c.Pos[0].Col
	c.RPos = c.Pos[len(c.Pos)-1].Col
	return c, nil
}
