package cluster

// Opts configures pairwise merging and aggregation.
type Opts struct {
	// MinOverlap is the number of compatible shared positions two clusters
	// must have before they may merge.
	MinOverlap int
	// MinReads is the contribution count a cluster needs to be counted in
	// Aggregate's result.
	MinReads int
	// TolGaps permits one cluster to hold a position the other lacks inside
	// the compared region.  When false, any such position rejects the pair.
	TolGaps bool
	// TolAmbigs treats two base sets as compatible whenever they share at
	// least one base.  When false, the sets must be exactly equal.
	TolAmbigs bool

	// Progress, if non-nil, is called after every successful merge with the
	// current size of the working collection.  Purely informational.
	Progress func(nclusters int)
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MinOverlap: 25,
	MinReads:   2,
	TolGaps:    false,
	TolAmbigs:  false,
}
