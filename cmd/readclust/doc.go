// Command readclust collapses the aligned reads in a BAM file into
// consensus clusters.  Every mapped read starts as its own cluster; clusters
// whose position-by-position calls agree over at least -min-overlap shared
// positions are merged, coverage summing as they combine, until no further
// merge is possible.  Clusters supported by at least -min-reads reads are
// written to the output as FASTA, one record per cluster, with '-' marking
// reference columns the cluster spans but never observed.
package main
