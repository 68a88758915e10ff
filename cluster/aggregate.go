package cluster

import (
	"sort"

	"github.com/grailbio/base/log"
)

// Aggregate repeatedly merges compatible pairs until the collection reaches
// a fixed point, then reports how many surviving clusters have at least
// opts.MinReads contributing reads.
//
// Each pass sorts the collection by descending contribution count, so the
// best-supported clusters act as merge targets first.  A target keeps
// absorbing whichever later cluster merges with it, rescanning from the top
// of its candidates after every hit, and any merge anywhere forces a fresh
// pass over the whole collection.  Every merge shrinks the collection by
// one, so the process terminates.
//
// Aggregate takes ownership of the slice and the clusters in it; the caller
// must use the returned slice, which holds the survivors in descending
// contribution-count order.  A non-nil error aborts aggregation immediately
// and the collection's contents are unspecified.
func Aggregate(clusters []*Cluster, opts Opts) ([]*Cluster, int, error) {
	for {
		// Ties keep their current order, so a given input always aggregates
		// the same way.
		sort.SliceStable(clusters, func(i, j int) bool {
			return clusters[i].NContrib > clusters[j].NContrib
		})

		mergedAny := false
		nclusters := 0
		for i := 0; i < len(clusters); i++ {
			a := clusters[i]
			for j := i + 1; j < len(clusters); {
				m, reason, err := Merge(a, clusters[j], opts)
				if err != nil {
					return clusters, 0, err
				}
				if m == nil {
					log.Debug.Printf("no merge (%s): [%d-%d] x%d vs [%d-%d] x%d",
						reason, a.LPos, a.RPos, a.NContrib,
						clusters[j].LPos, clusters[j].RPos, clusters[j].NContrib)
					j++
					continue
				}
				// The merged cluster takes a's slot and b's slot closes up;
				// both inputs are dead from here on.
				a.release()
				clusters[j].release()
				a = m
				clusters[i] = m
				clusters = append(clusters[:j], clusters[j+1:]...)
				mergedAny = true
				if opts.Progress != nil {
					opts.Progress(len(clusters))
				}
				// Earlier rejects may combine with the grown cluster, so
				// rescan a's candidates from the top.
				j = i + 1
			}
			if a.NContrib >= opts.MinReads {
				nclusters++
			}
		}
		if !mergedAny {
			return clusters, nclusters, nil
		}
	}
}
