package cluster

import (
	"github.com/grailbio/base/log"
)

// NoMatchReason says why a pair of clusters did not combine.  A no-match is
// not an error; most pairs in a collection do not combine.
type NoMatchReason int

const (
	// NoMatchNone accompanies a successful merge.
	NoMatchNone NoMatchReason = iota
	// NoMatchShortInput: one of the inputs has no position records.
	NoMatchShortInput
	// NoMatchNoOpportunity: the clusters' spans cannot yield MinOverlap
	// shared columns even in the best case.
	NoMatchNoOpportunity
	// NoMatchGapX: xs holds a position ys lacks and gaps are not tolerated.
	NoMatchGapX
	// NoMatchGapY: ys holds a position xs lacks and gaps are not tolerated.
	NoMatchGapY
	// NoMatchMismatch: incompatible nucleotide calls at a shared position.
	NoMatchMismatch
	// NoMatchLowOverlap: fewer than MinOverlap compatible shared positions.
	NoMatchLowOverlap
)

var noMatchReasonNames = [...]string{
	"none",
	"insufficient length",
	"no opportunity for sufficient overlap",
	"gap in xs",
	"gap in ys",
	"mismatch",
	"insufficient overlap",
}

func (r NoMatchReason) String() string {
	if r < 0 || int(r) >= len(noMatchReasonNames) {
		return "invalid"
	}
	return noMatchReasonNames[r]
}

// Merge walks two clusters' position sequences in lockstep and, when they
// are compatible under opts, combines them into a single new cluster whose
// coverage at each shared position is the sum of both sides'.
//
// The merged cluster is nil when the pair does not combine; reason then says
// why.  A non-nil error is fatal and aborts any enclosing aggregation.
//
// The walk is a single forward pass with no backtracking.  Leading overhang
// on either side is skipped, then both sequences advance together: a
// position present on only one side either consumes a gap (TolGaps) or
// rejects the pair, and a position present on both sides must carry
// compatible calls or the pair is rejected outright.  Once either side is
// exhausted the other's tail is appended unchecked.
//
// Merge never modifies its inputs.  On success the caller owns the new
// cluster and is responsible for releasing both inputs.
func Merge(xs, ys *Cluster, opts Opts) (*Cluster, NoMatchReason, error) {
	if len(xs.Pos) == 0 || len(ys.Pos) == 0 {
		return nil, NoMatchShortInput, nil
	}

	// If there is no hope of reaching MinOverlap shared columns, skip the
	// scan entirely.
	minOverlap := PosType(opts.MinOverlap)
	if xs.RPos < ys.LPos+minOverlap && ys.RPos < xs.LPos+minOverlap {
		return nil, NoMatchNoOpportunity, nil
	}

	var (
		overlap int // compatible shared positions seen
		xi, yi  int
		mlen    int // predicted length of the merged sequence
	)

	// Skip the leading overhang of whichever side starts first.  The records
	// passed over are already part of the merged length.
	cmp := comparePos(xs.Pos[xi], ys.Pos[yi])
	if cmp < 0 {
		for cmp < 0 && xi+1 < len(xs.Pos) {
			xi++
			cmp = comparePos(xs.Pos[xi], ys.Pos[yi])
		}
		if cmp > 0 && !opts.TolGaps {
			return nil, NoMatchGapY, nil
		}
		mlen += xi
	} else if cmp > 0 {
		for cmp > 0 && yi+1 < len(ys.Pos) {
			yi++
			cmp = comparePos(xs.Pos[xi], ys.Pos[yi])
		}
		if cmp > 0 && !opts.TolGaps {
			return nil, NoMatchGapY, nil
		}
		mlen += yi
	}

	// Walk the overlapping region, counting compatible shared positions.
	for xi < len(xs.Pos) && yi < len(ys.Pos) {
		cmp = comparePos(xs.Pos[xi], ys.Pos[yi])
		switch {
		case cmp < 0:
			if !opts.TolGaps {
				return nil, NoMatchGapX, nil
			}
			xi++
		case cmp > 0:
			if !opts.TolGaps {
				return nil, NoMatchGapY, nil
			}
			yi++
		case xs.Pos[xi].Nuc == ys.Pos[yi].Nuc ||
			(opts.TolAmbigs && xs.Pos[xi].Nuc&ys.Pos[yi].Nuc != 0):
			overlap++
			xi++
			yi++
		default:
			return nil, NoMatchMismatch, nil
		}
		mlen++
	}

	if overlap < opts.MinOverlap {
		return nil, NoMatchLowOverlap, nil
	}

	// Whichever side remains contributes its tail unchecked.
	if xi < len(xs.Pos) {
		mlen += len(xs.Pos) - xi
	} else if yi < len(ys.Pos) {
		mlen += len(ys.Pos) - yi
	}

	merged := &Cluster{
		Pos:      make([]Pos, 0, mlen),
		LPos:     minPos(xs.LPos, ys.LPos),
		RPos:     maxPos(xs.RPos, ys.RPos),
		NContrib: xs.NContrib + ys.NContrib,
	}

	// Re-walk both sequences from the start, emitting the union.  A shared
	// slot sums the two coverages and keeps the numerically smaller of the
	// two codes.
	// TODO: decide whether the combined code should instead be the bitwise
	// intersection of the two base sets.
	for xi, yi = 0, 0; xi < len(xs.Pos) && yi < len(ys.Pos); {
		cmp = comparePos(xs.Pos[xi], ys.Pos[yi])
		switch {
		case cmp < 0:
			merged.Pos = append(merged.Pos, xs.Pos[xi])
			xi++
		case cmp > 0:
			merged.Pos = append(merged.Pos, ys.Pos[yi])
			yi++
		default:
			p := xs.Pos[xi]
			p.Cov += ys.Pos[yi].Cov
			if ys.Pos[yi].Nuc < p.Nuc {
				p.Nuc = ys.Pos[yi].Nuc
			}
			merged.Pos = append(merged.Pos, p)
			xi++
			yi++
		}
	}
	merged.Pos = append(merged.Pos, xs.Pos[xi:]...)
	merged.Pos = append(merged.Pos, ys.Pos[yi:]...)

	// The fill should land exactly on the predicted length.  A miss means
	// the two walks disagreed; the merged cluster is still usable, so warn
	// rather than fail.
	if n := len(merged.Pos); n != mlen {
		log.Error.Printf("merge: emitted %d position records, predicted %d", n, mlen)
	}
	return merged, NoMatchNone, nil
}
