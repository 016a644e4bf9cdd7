// Package report renders sample paths for people and other programs:
// tab-separated and plain trajectory dumps, JSON/YAML snapshots, a summary
// table of observations and an HTML line chart of the frequency trajectory.
//
// Nothing here mutates a SamplePath; it only uses read accessors.
package report
