package tablegen

// Quarter-turn and full-scale constants, duplicated from package trig's
// unexported ones since tablegen must not import trig (trig's tables are
// this package's output, not its input).
const (
	quarterTurn = 4096  // π/2 in internal angle units
	sineScale   = 16384 // sin/cos full scale (see trig.sineScale)
)

// sineInternal evaluates a Bhaskara I-style rational approximation of
// sin(a) for a quarter-turn angle a in [0, quarterTurn], returning a value
// in [0, sineScale].
//
// The classic Bhaskara form is sin(x) ≈ 16x(π-x) / (5π² - 4x(π-x)) for x in
// [0, π] in radians. quarterTurn represents π/2 and 2*quarterTurn
// represents π in the same linear angle units a is already expressed in,
// so a plugs into the formula directly as Bhaskara's x with no rescaling;
// den's constant (20480) is the value that makes the approximation hit
// exactly sineScale at a == quarterTurn, which BuildSineQ's endpoint
// depends on.
func sineInternal(a int32) int32 {
	term := (a * (2*quarterTurn - a)) >> (14 - 2) // >> 12, matches the (2*quarterTurn)² normalization
	num := term << 2
	den := 20480 - term
	if den == 0 {
		return sineScale
	}
	return (num * sineScale) / den
}

// BuildSineQ computes the sine_q quarter-wave table for a table of size n
// (a power of two). angle_q = i * quarterTurn / (n-1) so that i=0 maps to
// angle 0 and i=n-1 maps exactly to quarterTurn (π/2), guaranteeing
// sine_q[n-1] == sineScale and monotonicity end to end.
func BuildSineQ(n int) []int16 {
	t := make([]int16, n)
	for i := 0; i < n; i++ {
		a := int32(i) * quarterTurn / int32(n-1)
		t[i] = int16(sineInternal(a))
	}
	return t
}
