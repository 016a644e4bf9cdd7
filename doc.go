// Package wfpath simulates and manipulates Wright-Fisher allele-frequency
// trajectories conditioned on allele counts observed at irregular times.
//
// 🚀 What is wfpath?
//
//	The computational core of an allele-age / selection inference tool:
//		• grid: near-uniform time grids with exact endpoints
//		• path: (time, value) trajectories with splices and one-slot undo
//		• measure: the angular (Fisher) transform and a bridge proposer
//		• popsize: piecewise-constant population-size histories
//		• sample: parsing and unit conversion of count observations
//		• samplepath: bridge stitching, binomial likelihood, allele age
//
// ✨ Around the core
//
//	config (viper), logging (slog), metrics (prometheus), report (tables,
//	charts, TSV/JSON/YAML) and the wfpath command under cmd/wfpath.
//
// Quick start:
//
//	obs, _ := sample.ParseFile("obs.tsv", sample.DefaultScale())
//	sp, _ := samplepath.Build(obs, popsize.Constant(), measure.New(measure.WithSeed(1)))
//	fmt.Println(sp.TotalLogLikelihood())
//
// Outer inference loops (MCMC proposals, acceptance) are out of scope; they
// drive a SamplePath through Modify / SetAlleleAge followed by Reset or
// Commit.
package wfpath
