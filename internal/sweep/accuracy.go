package sweep

import (
	"math"

	"github.com/san-kum/inttrig/trig"
)

// Result holds one table size's accuracy sweep: the largest absolute error
// seen against math.Sin over the full angle domain, and a downsampled
// error curve suitable for plotting.
type Result struct {
	N           int
	MaxAbsError float64
	Curve       []float64
}

// Accuracy sweeps every angle in [0, 16384) through k.Sin, comparing
// against math.Sin, and returns the worst-case error plus an evenly spaced
// curve for plotting, sampled every 16384/curvePoints angles (exactly
// curvePoints samples when curvePoints divides 16384, more otherwise).
// The sweep is split
// across workers with ParallelFor since 16384 angles is enough that a
// naive harness would otherwise be single-threaded for no reason.
func Accuracy(k *trig.Kernel, curvePoints int) Result {
	const domain = 16384
	if curvePoints <= 0 || curvePoints > domain {
		curvePoints = domain
	}

	errs := make([]float64, domain)
	ParallelFor(domain, 512, func(start, end int) {
		for a := start; a < end; a++ {
			angle := uint16(a)
			rad := float64(angle) / domain * 2 * math.Pi
			got := float64(k.Sin(angle)) / 16384
			errs[a] = got - math.Sin(rad)
		}
	})

	maxAbs := 0.0
	for _, e := range errs {
		if abs := math.Abs(e); abs > maxAbs {
			maxAbs = abs
		}
	}

	step := domain / curvePoints
	if step < 1 {
		step = 1
	}
	curve := make([]float64, 0, curvePoints)
	for i := 0; i < domain; i += step {
		curve = append(curve, errs[i])
	}

	return Result{N: k.N(), MaxAbsError: maxAbs, Curve: curve}
}
