// Package cognasim generates synthetic cognate-class datasets: matrices of
// languages × meanings in which every cell names the cognate class of the
// language's word for that meaning.
//
// What is in the box?
//
//	Datasets under four histories:
//		• Tree (Dollo): classes arise once along a Yule tree and are inherited
//		• Tree with borrowing: contemporary lineages lend classes sideways
//		• Chain: classes occupy contiguous spans of a dialect continuum
//		• Swamp: no history at all, every feature drawn independently
//	Plus the I/O around them: harvest CSV, binary NEXUS, CLDF import,
//	random feature gaps, treeness scores and a SQLite replicate archive.
//
// Everything is seeded: equal seeds and parameters reproduce equal data.
//
// Packages:
//
//	names/     — taxon and feature name spaces
//	dist/      — seeded sampler, class-count models, Dirichlet partitions
//	phylo/     — Yule trees, ancestor sets, Newick
//	cognate/   — the matrix, harvest CSV, NEXUS, borrowing, gaps
//	simulate/  — Dollo, Chain and Swamp simulators
//	cldf/      — CLDF wordlist → matrix
//	treelike/  — delta score and Q-residual
//	cmd/cognasim — generate, batch, nexus, cldf, gaps, treelike
//
// Quick start:
//
//	sim, _ := simulate.NewDollo(10, 100, simulate.WithSeed(42))
//	m, _ := sim.Generate()
//	csv, _ := m.Format()
//
//	go install github.com/katalvlaran/cognasim/cmd/cognasim@latest
package cognasim
