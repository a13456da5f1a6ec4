package tablegen

// BuildAsinQ computes the asin_q quarter-range table for a table of size
// n. For each i, target = i*sineScale/(n-1) is a sine value in the same
// coordinate system sine_q uses (the n-1 denominator, matching
// BuildSineQ's own convention, lands i=n-1 exactly on sineScale so
// asin_q[n-1] comes out one unit below quarterTurn rather than several
// ulps short),
// and a binary search over sineInternal finds the quarter-turn angle
// whose approximate sine most closely matches it. This intentionally
// binary-searches the same rational approximation the runtime sine table
// uses rather than the true mathematical sine, so that sin(asin(v)) holds
// as an identity to within interpolation tolerance even though it
// introduces a small systematic bias against an ideal arcsine (see
// trig's package doc and DESIGN.md).
func BuildAsinQ(n int) []uint16 {
	t := make([]uint16, n)
	for i := 0; i < n; i++ {
		target := int32(i) * sineScale / int32(n-1)
		low, high := int32(0), int32(quarterTurn)
		for high-low > 1 {
			mid := (low + high) / 2
			if sineInternal(mid) < target {
				low = mid
			} else {
				high = mid
			}
		}
		t[i] = uint16((low + high) / 2)
	}
	return t
}
