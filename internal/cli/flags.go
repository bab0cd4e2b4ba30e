// SPDX-License-Identifier: MIT
// Package: cognasim/internal/cli
//
// flags.go — run flags shared by generate and batch, overlaid on the config file.

package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/internal/config"
)

// runFlags are the simulation flags shared by generate and batch. Only
// flags the user set override the run file.
type runFlags struct {
	configPath string
	defaults   config.Run

	run        config.Run
	seed       uint64
	classesMin int
	classesMax int
	lambda     float64
	nbR, nbP   float64
}

func bindRunFlags(c *cobra.Command) *runFlags {
	f := &runFlags{defaults: config.Default()}
	d := f.defaults
	fs := c.Flags()

	fs.StringVar(&f.configPath, "config", "", "YAML run file; flags override its values")
	fs.StringVarP(&f.run.Model, "model", "m", d.Model, "model: dollo|chain|swamp")
	fs.IntVarP(&f.run.Languages, "languages", "l", d.Languages, "number of languages")
	fs.IntVarP(&f.run.Features, "features", "f", d.Features, "number of features")
	fs.Uint64VarP(&f.seed, "seed", "s", 0, "random seed (random when unset)")
	fs.Float64VarP(&f.run.BirthRate, "birthrate", "b", d.BirthRate, "Yule tree birth rate")
	fs.Float64VarP(&f.run.Borrowing, "borrowing", "B", d.Borrowing, "post-generation borrowing probability (dollo)")
	fs.Float64Var(&f.run.TreeBorrowing, "tree-borrowing", d.TreeBorrowing, "lateral transfer rate inside the tree simulation")
	fs.Float64VarP(&f.run.Gamma, "gamma", "g", d.Gamma, "gamma rate-variation shape")
	fs.Float64VarP(&f.run.CognateBirthRate, "cognate", "c", d.CognateBirthRate, "cognate class birth rate (dollo)")
	fs.Float64Var(&f.run.Alpha, "alpha", 0, "Dirichlet concentration for class sizes (0: model default)")
	fs.Float64Var(&f.run.ConcatProbability, "concat", d.ConcatProbability, "chain merge concatenation probability")
	fs.IntVar(&f.run.Samples, "samples", 0, "class-count resampling budget (0: model default)")
	fs.IntVar(&f.run.NameLength, "name-length", d.NameLength, "swamp taxon name length")
	fs.IntVar(&f.classesMin, "classes-min", 1, "uniform class-count minimum")
	fs.IntVar(&f.classesMax, "classes-max", 0, "uniform class-count maximum (0: number of languages)")
	fs.Float64Var(&f.lambda, "lambda", 0, "poisson class-count mean")
	fs.Float64Var(&f.nbR, "nb-r", 0, "negative binomial class-count r")
	fs.Float64Var(&f.nbP, "nb-p", 0, "negative binomial class-count p")
	return f
}

// resolve loads the run file, applies explicitly set flags, fills in a
// random seed when none was given and validates.
func (f *runFlags) resolve(c *cobra.Command) (config.Run, error) {
	r := f.defaults
	if f.configPath != "" {
		var err error
		if r, err = config.Load(f.configPath); err != nil {
			return config.Run{}, err
		}
	}

	fs := c.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("model", func() { r.Model = f.run.Model })
	set("languages", func() { r.Languages = f.run.Languages })
	set("features", func() { r.Features = f.run.Features })
	set("seed", func() { r.Seed, r.SeedSet = f.seed, true })
	set("birthrate", func() { r.BirthRate = f.run.BirthRate })
	set("borrowing", func() { r.Borrowing = f.run.Borrowing })
	set("tree-borrowing", func() { r.TreeBorrowing = f.run.TreeBorrowing })
	set("gamma", func() { r.Gamma = f.run.Gamma })
	set("cognate", func() { r.CognateBirthRate = f.run.CognateBirthRate })
	set("alpha", func() { r.Alpha = f.run.Alpha })
	set("concat", func() { r.ConcatProbability = f.run.ConcatProbability })
	set("samples", func() { r.Samples = f.run.Samples })
	set("name-length", func() { r.NameLength = f.run.NameLength })

	switch {
	case fs.Changed("lambda"):
		r.Classes = dist.Poisson{Lambda: f.lambda}
	case fs.Changed("nb-r") || fs.Changed("nb-p"):
		nb := dist.NegativeBinomial{R: 8, P: 0.45}
		if fs.Changed("nb-r") {
			nb.R = f.nbR
		}
		if fs.Changed("nb-p") {
			nb.P = f.nbP
		}
		r.Classes = nb
	case fs.Changed("classes-min") || fs.Changed("classes-max"):
		hi := f.classesMax
		if hi == 0 {
			hi = r.Languages
		}
		r.Classes = dist.Uniform{Min: f.classesMin, Max: hi}
	}

	if !r.SeedSet {
		r.Seed, r.SeedSet = rand.Uint64(), true
	}
	if err := r.Validate(); err != nil {
		return config.Run{}, err
	}
	return r, nil
}
