package simulation

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialSource supplies the stochastic draws consumed by the simulator. A
// run must be given an explicitly seeded source so that repeated invocations
// with the same seed are bit-reproducible; nothing in this package touches a
// process-global generator. Each concurrent run needs its own source.
type BinomialSource interface {
	// Binomial returns the number of successes in n trials at probability p.
	Binomial(n int, p float64) int
}

type pcgSource struct {
	src rand.Source
}

// NewSource returns a deterministic BinomialSource seeded from seed, backed
// by a PCG stream feeding gonum's binomial sampler.
func NewSource(seed uint64) BinomialSource {
	return &pcgSource{src: rand.NewPCG(seed, seed)}
}

func (s *pcgSource) Binomial(n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	d := distuv.Binomial{N: float64(n), P: p, Src: s.src}
	return int(d.Rand())
}
