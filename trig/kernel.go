package trig

// Angle unit conventions. 2π maps to 2^14 so folding to a single period is
// a mask of the low 14 bits and quadrant selection is the top two of those.
const (
	angleBits   = 14
	angleMask   = 1<<angleBits - 1 // 0x3FFF: full turn, 2π
	quarterTurn = 1 << (angleBits - 2)  // 4096: π/2
	quarterMask = quarterTurn - 1

	// outputScale is 1.0 in sin/cos/tan's fixed-point encoding. Sine and
	// cosine actually report at 2*outputScale (see sineScale below) to
	// keep one bit of interpolation headroom; tan reports at outputScale
	// itself, while atan takes its input at 2*outputScale.
	outputScale = 8192
	sineScale   = outputScale * 2 // 16384: sin/cos full scale, ±2.0 range

	// tanSaturationThreshold is fixed at 100 for bit-compatibility with
	// the reference implementation this kernel is based on. A fork
	// wanting a different asymptote guard changes this one constant.
	tanSaturationThreshold = 100
	tanSaturate            = 32767

	// asinInputScale is the ±1.0 point of asin/acos's input domain. It is
	// deliberately half of sineScale: asin/acos take arguments at
	// outputScale, not in the doubled-headroom convention sin/cos return
	// their own results in. See asinInternal.
	asinInputScale = outputScale
)

// Kernel evaluates sin, cos, tan, atan2, atan, asin, acos, and vector
// magnitude against quarter-wave tables of a fixed size N. It never
// allocates. Sin, Cos, Asin, and Acos index their tables through
// precomputed reciprocals and do not divide; Tan and Atan2 (and so Atan)
// perform one integer division per call.
//
// Kernel is not constructed directly by callers; use one of the
// package-level instantiations ([Trig32] .. [Trig512]) or NewKernel from
// internal/tablegen-produced tables.
type Kernel struct {
	n int

	sineQ []int16
	atanQ []uint16
	asinQ []uint16

	recipSine uint32 // (n << 16) / quarterTurn
	atanScale uint32 // n, the multiplier that turns a Q16 ratio into a table index.fraction pair
	recipAsin uint32 // (n << 16) / sineScale
}

// newKernel wraps already-built tables in a Kernel, deriving the
// reciprocal constants used to avoid a division per table lookup. It does
// not build tables itself; that only ever happens ahead of time, in
// internal/tablegen.
func newKernel(n int, sineQ []int16, atanQ, asinQ []uint16) *Kernel {
	if n <= 0 || n&(n-1) != 0 {
		panic("trig: table size must be a power of two")
	}
	return &Kernel{
		n:         n,
		sineQ:     sineQ,
		atanQ:     atanQ,
		asinQ:     asinQ,
		recipSine: (uint32(n) << 16) / quarterTurn,
		atanScale: uint32(n),
		recipAsin: (uint32(n) << 16) / sineScale,
	}
}

// N reports the quarter-wave table size this kernel was built with.
func (k *Kernel) N() int { return k.n }

// TableBytes reports the combined size in bytes of the three tables this
// kernel holds: 2·N for sine_q plus 2·N each for atan_q and asin_q.
func (k *Kernel) TableBytes() int { return 6 * k.n }

// lerpTableEnd looks up y0 and y1 for linear interpolation at index within
// a table of length n, clamping at the top edge instead of wrapping —
// wrapping into table[0] there would fold the far end of the table onto
// its start and corrupt every value near a quarter-wave boundary.
func lerpTableEnd(index, frac uint32, n int) (clampedIndex, clampedFrac uint32) {
	if index >= uint32(n-1) {
		return uint32(n - 1), 0
	}
	return index, frac
}

// Sin returns sin(angle) scaled by sineScale (16384), so the result ranges
// over roughly [-16384, 16384] encoding [-1.0, 1.0] with one bit of
// interpolation headroom.
func (k *Kernel) Sin(angle uint16) int16 {
	a := angle & angleMask
	quadrant := a >> (angleBits - 2)
	position := uint32(a & quarterMask)
	if quadrant&1 == 1 {
		position = quarterTurn - position
	}

	idxScaled := position * k.recipSine
	index, frac := lerpTableEnd(idxScaled>>16, (idxScaled>>8)&0xFF, k.n)

	y0 := int32(k.sineQ[index])
	y1 := y0
	if index+1 < uint32(k.n) {
		y1 = int32(k.sineQ[index+1])
	}
	value := y0 + (((y1 - y0) * int32(frac)) >> 8)

	if quadrant >= 2 {
		value = -value
	}
	return int16(value)
}

// Cos returns cos(angle) in the same encoding as [Kernel.Sin].
func (k *Kernel) Cos(angle uint16) int16 {
	return k.Sin(angle + quarterTurn)
}

// SinCos returns sin(angle) and cos(angle) together.
func (k *Kernel) SinCos(angle uint16) (sin, cos int16) {
	return k.Sin(angle), k.Cos(angle)
}

// Tan returns tan(angle) scaled by outputScale (8192), saturating to
// ±32767 within tanSaturationThreshold of an asymptote instead of
// overflowing or dividing by (near) zero.
func (k *Kernel) Tan(angle uint16) int16 {
	s, c := k.SinCos(angle)
	if c > -tanSaturationThreshold && c < tanSaturationThreshold {
		if s >= 0 {
			return tanSaturate
		}
		return -tanSaturate
	}
	result := (int32(s) * outputScale) / int32(c)
	if result > tanSaturate {
		return tanSaturate
	}
	if result < -tanSaturate {
		return -tanSaturate
	}
	return int16(result)
}

// atanLookup returns the interpolated arctangent, in internal angle units,
// of the ratio num/den where 0 <= num <= den. It is the shared core of
// Atan2's two symmetric branches.
func (k *Kernel) atanLookup(num, den uint32) uint16 {
	ratioScaled := (num << 16) / den
	scaled := ratioScaled * k.atanScale
	index, frac := lerpTableEnd(scaled>>16, (scaled>>8)&0xFF, k.n)

	y0 := int32(k.atanQ[index])
	y1 := y0
	if index+1 < uint32(k.n) {
		y1 = int32(k.atanQ[index+1])
	}
	return uint16(y0 + (((y1 - y0) * int32(frac)) >> 8))
}

// quadrantOffset and quadrantSign implement atan2's per-quadrant affine
// correction, indexed by (x<0)<<1 | (y<0): a full turn for the fourth
// quadrant (x>=0, y<0) and a half turn for the two with x<0.
var quadrantOffset = [4]uint16{0, 1 << angleBits, 1 << (angleBits - 1), 1 << (angleBits - 1)}
var quadrantSign = [4]int32{1, -1, -1, 1}

// Atan2 returns the angle of the vector (x, y) in internal units, in
// [0, 2π). Atan2(0, 0) is defined as 0.
func (k *Kernel) Atan2(y, x int32) uint16 {
	if x == 0 {
		switch {
		case y > 0:
			return quarterTurn
		case y < 0:
			return 3 * quarterTurn
		default:
			return 0
		}
	}

	absX, absY := abs32(x), abs32(y)
	quadrant := 0
	if x < 0 {
		quadrant |= 2
	}
	if y < 0 {
		quadrant |= 1
	}

	var base uint16
	if absX >= absY {
		base = k.atanLookup(uint32(absY), uint32(absX))
	} else {
		base = uint16(quarterTurn) - k.atanLookup(uint32(absX), uint32(absY))
	}

	// Masked rather than left to uint16's raw wraparound: offset 16384
	// (a full turn, quadrant 1's value) plus a near-zero base can reach
	// exactly 16384, one past the valid 14-bit angle domain.
	return uint16(int32(quadrantOffset[quadrant])+quadrantSign[quadrant]*int32(base)) & angleMask
}

// Atan returns arctan(v/(2*outputScale)) in internal angle units, treating
// v as a fixed-point tangent scaled by 16384, twice the scale
// [Kernel.Tan] returns one at.
func (k *Kernel) Atan(v int16) uint16 {
	return k.Atan2(int32(v), 2*outputScale)
}

// asinInternal is the shared lookup behind Asin and Acos. v is clamped to
// ±asinInputScale (±8192, i.e. ±1.0) per the documented domain; the
// asin_q table was built against the doubled sine scale (sineScale,
// 16384) so the clamped magnitude is doubled before indexing.
func (k *Kernel) asinInternal(v int16) uint16 {
	clamped := v
	if clamped > asinInputScale {
		clamped = asinInputScale
	}
	if clamped < -asinInputScale {
		clamped = -asinInputScale
	}
	absV := uint32(abs32(int32(clamped))) * 2

	idxScaled := absV * k.recipAsin
	index, frac := lerpTableEnd(idxScaled>>16, (idxScaled>>8)&0xFF, k.n)

	y0 := int32(k.asinQ[index])
	y1 := y0
	if index+1 < uint32(k.n) {
		y1 = int32(k.asinQ[index+1])
	}
	angle := uint16(y0 + (((y1 - y0) * int32(frac)) >> 8))

	if clamped < 0 {
		return uint16(1<<angleBits) - angle
	}
	return angle
}

// Asin returns arcsin(v/asinInputScale) in internal angle units. Inputs
// with |v| > 8192 are silently clamped to ±8192; this is documented
// domain-clamping behavior, not an error.
func (k *Kernel) Asin(v int16) uint16 {
	return k.asinInternal(v)
}

// Acos returns arccos(v/asinInputScale) in internal angle units, using the
// identity acos(v) = π/2 - asin(v). The subtraction is masked to 14 bits
// rather than left to uint16's own 16-bit wraparound: asin(v) can exceed
// quarterTurn (for negative v it lands past a half turn), and Go's
// uint16 arithmetic would otherwise wrap at 65536 instead of at the
// angle domain's actual 2^14.
func (k *Kernel) Acos(v int16) uint16 {
	return (quarterTurn - k.asinInternal(v)) & angleMask
}

// magnitudeGain is the fixed-point CORDIC gain correction for 12
// iterations: round(65536 / prod(sqrt(1 + 2^-2k), k=0..11). Changing the
// iteration count in Magnitude requires recomputing this constant.
const magnitudeGain = 39797

// Magnitude returns an approximation of sqrt(x² + y²) using a 12-iteration
// vectoring CORDIC rotation, with a maximum relative error under 1% once
// the true magnitude reaches a few hundred units; below that the fixed
// per-iteration shift truncation dominates and relative error grows as the
// vector shrinks.
func (k *Kernel) Magnitude(x, y int32) uint32 {
	ax, ay := abs32(x), abs32(y)
	for i := uint(0); i < 12; i++ {
		xShift, yShift := ax>>i, ay>>i
		// ay holds |y|: rotating toward the x-axis and reflecting an
		// overshoot back above it are the same step for the magnitude, so
		// no negative value is ever shifted.
		ax, ay = ax+yShift, abs32(ay-xShift)
	}
	return uint32(ax) * magnitudeGain >> 16
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
