package workload

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// knuthLimit is the largest mean for which Knuth's multiplication method is
// used; above it exp(-mean) loses too much precision.
const knuthLimit = 30.0

// ArrivalSampler draws the number of tasks arriving in one tick.
type ArrivalSampler interface {
	// SampleCount returns a non-negative arrival count.
	SampleCount() int
}

// PoissonSampler draws Poisson-distributed counts with a fixed mean.
type PoissonSampler struct {
	rate float64
	rng  *rand.Rand
}

func (s *PoissonSampler) SampleCount() int {
	return poissonRand(s.rng, s.rate)
}

// BurstySampler draws counts from a gamma-Poisson mixture: each tick's rate
// is Gamma-distributed around the mean, producing over-dispersed bursts.
type BurstySampler struct {
	shape   float64 // 1/CV²
	scale   float64 // rate·CV²
	rateRNG *rand.Rand
	rng     *rand.Rand
}

func (s *BurstySampler) SampleCount() int {
	return poissonRand(s.rng, gammaRand(s.rateRNG, s.shape, s.scale))
}

// NewArrivalSampler creates an ArrivalSampler for the named process.
// countRNG draws the counts; rateRNG modulates the rate of bursty processes.
func NewArrivalSampler(process string, rate, cv float64, countRNG, rateRNG *rand.Rand) ArrivalSampler {
	switch process {
	case "bursty":
		if cv <= 0 {
			cv = 2.0
		}
		shape := 1.0 / (cv * cv)
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to Poisson", shape, cv)
			return &PoissonSampler{rate: rate, rng: countRNG}
		}
		return &BurstySampler{shape: shape, scale: rate * cv * cv, rateRNG: rateRNG, rng: countRNG}
	default:
		// Validated before reaching here
		return &PoissonSampler{rate: rate, rng: countRNG}
	}
}

// poissonRand samples Poisson(mean). Small means use Knuth's method; large
// means use a rounded normal approximation clamped at zero.
func poissonRand(rng *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}
	if mean > knuthLimit {
		n := int(math.Round(mean + math.Sqrt(mean)*rng.NormFloat64()))
		if n < 0 {
			return 0
		}
		return n
	}
	limit := math.Exp(-mean)
	k := 0
	p := rng.Float64()
	for p > limit {
		k++
		p *= rng.Float64()
	}
	return k
}

// gammaRand samples from Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape >= 1: direct method.
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}
