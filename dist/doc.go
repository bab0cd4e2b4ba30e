// SPDX-License-Identifier: MIT

// Package dist provides the seedable random draws used by the simulators and
// the closed set of class-count models.
//
// A Sampler binds one math/rand/v2 Source and serves every draw from it:
// uniform integers, Gamma, Poisson, Exponential, Binomial, Negative binomial,
// Dirichlet and Multinomial. Continuous and univariate draws delegate to
// gonum's stat/distuv and stat/distmv, so two Samplers over equal sources
// produce equal streams.
//
// Class-count models:
//
//	Uniform{Min, Max}        - k uniform on [Min, Max]
//	Poisson{Lambda}          - k ~ Poisson(Lambda)
//	NegativeBinomial{R, P}   - k ~ NB(R, P), failures before R successes
//
// Models are validated once (Validate) and sampled through SampleClassCount,
// which resamples until k falls inside the requested window and gives up
// with ErrSamplingExhausted after the configured budget.
//
// Partition turns a class count into class sizes: every class gets one
// member, the rest are spread by a Dirichlet(alpha)-weighted multinomial.
package dist
