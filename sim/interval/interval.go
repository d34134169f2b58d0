// Package interval provides the RandomIntervalSource families: each source
// turns a mean interval and a random stream into an unbounded sequence of
// positive gaps.
package interval

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inference-sim/sampling-sim/sim"
)

// Family names. Lookup is case-insensitive and accepts the aliases below.
const (
	Exponential = "exponential"
	Dirac       = "dirac"
	Uniform     = "uniform"
	Gamma       = "gamma"
	Weibull     = "weibull"
	LogNormal   = "lognormal"
)

var familyAliases = map[string]string{
	Exponential: Exponential,
	"poisson":   Exponential,
	Dirac:       Dirac,
	"fixed":     Dirac,
	"constant":  Dirac,
	Uniform:     Uniform,
	Gamma:       Gamma,
	Weibull:     Weibull,
	LogNormal:   LogNormal,
}

// Canonical returns the canonical family name for name, or false if unknown.
func Canonical(name string) (string, bool) {
	family, ok := familyAliases[strings.ToLower(strings.TrimSpace(name))]
	return family, ok
}

// Families returns the canonical family names.
func Families() []string {
	return []string{Exponential, Dirac, Uniform, Gamma, Weibull, LogNormal}
}

// rander is the slice of a gonum distribution the samplers need.
type rander interface {
	Rand() float64
}

// DistSource draws gaps from a continuous gonum distribution.
// Draws of exactly 0 (possible in floating point) are redrawn.
type DistSource struct {
	dist rander
}

func (s *DistSource) Next() float64 {
	for {
		if v := s.dist.Rand(); v > 0 {
			return v
		}
	}
}

// FixedSource always returns the same interval, 1/rate.
type FixedSource struct {
	interval float64
}

func (s *FixedSource) Next() float64 {
	return s.interval
}

// NewFixedSource returns a FixedSource producing interval on every call.
func NewFixedSource(interval float64) *FixedSource {
	return &FixedSource{interval: interval}
}

// New creates an IntervalSource for cfg drawing from src.
// The mean of every family equals cfg.Mean; CV shapes gamma, weibull and lognormal.
func New(cfg sim.SourceConfig, src rand.Source) (sim.IntervalSource, error) {
	family, ok := Canonical(cfg.Family)
	if !ok {
		return nil, fmt.Errorf("%w: unknown distribution family %q; valid: %s",
			sim.ErrInvalidConfiguration, cfg.Family, strings.Join(Families(), ", "))
	}
	if !(cfg.Mean > 0) || math.IsInf(cfg.Mean, 0) {
		return nil, fmt.Errorf("%w: mean interval must be finite and positive, got %v",
			sim.ErrInvalidConfiguration, cfg.Mean)
	}
	mean := cfg.Mean
	cv := cfg.CV
	if cv == 0 {
		cv = 1.0
	}

	switch family {
	case Exponential:
		return &DistSource{dist: distuv.Exponential{Rate: cfg.Rate(), Src: src}}, nil

	case Dirac:
		return NewFixedSource(1.0 / cfg.Rate()), nil

	case Uniform:
		return &DistSource{dist: distuv.Uniform{Min: 0, Max: 2 * mean, Src: src}}, nil

	case Gamma:
		// shape = 1/CV², rate = shape/mean
		shape := 1.0 / (cv * cv)
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to exponential", shape, cv)
			return &DistSource{dist: distuv.Exponential{Rate: cfg.Rate(), Src: src}}, nil
		}
		return &DistSource{dist: distuv.Gamma{Alpha: shape, Beta: shape / mean, Src: src}}, nil

	case Weibull:
		if cv < 0.01 || cv > 10.4 {
			return nil, fmt.Errorf("%w: weibull CV must be in [0.01, 10.4], got %v", sim.ErrInvalidConfiguration, cv)
		}
		k := weibullShapeFromCV(cv)
		// scale = mean / Γ(1 + 1/k)
		lambda := mean / math.Gamma(1.0+1.0/k)
		return &DistSource{dist: distuv.Weibull{K: k, Lambda: lambda, Src: src}}, nil

	case LogNormal:
		// σ² = ln(1+CV²), μ = ln(mean) - σ²/2
		sigma2 := math.Log1p(cv * cv)
		return &DistSource{dist: distuv.LogNormal{Mu: math.Log(mean) - sigma2/2, Sigma: math.Sqrt(sigma2), Src: src}}, nil
	}
	return nil, fmt.Errorf("%w: unhandled family %q", sim.ErrInvalidConfiguration, family)
}

// weibullShapeFromCV finds Weibull shape parameter k such that
// CV² = Γ(1+2/k)/Γ(1+1/k)² - 1, using bisection.
// Range: k ∈ [0.1, 100], tolerance: |CV_computed - CV_target| < 0.001.
func weibullShapeFromCV(targetCV float64) float64 {
	lo, hi := 0.1, 100.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2.0
		cv := weibullCV(mid)
		if math.Abs(cv-targetCV) < 0.001 {
			return mid
		}
		// CV is monotonically decreasing in k
		if cv > targetCV {
			lo = mid
		} else {
			hi = mid
		}
	}
	logrus.Warnf("weibullShapeFromCV: bisection did not converge for CV=%.3f after 100 iterations; using k=%.3f", targetCV, (lo+hi)/2.0)
	return (lo + hi) / 2.0
}

// weibullCV computes the coefficient of variation for Weibull(k).
func weibullCV(k float64) float64 {
	g1 := math.Gamma(1.0 + 1.0/k)
	g2 := math.Gamma(1.0 + 2.0/k)
	return math.Sqrt(g2/(g1*g1) - 1.0)
}
