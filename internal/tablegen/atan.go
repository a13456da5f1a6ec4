package tablegen

// cordicAngleTable holds atan(2^-k), in internal angle units, for the 16
// CORDIC rotation steps BuildAtanQ performs. Each entry is
// round(atan(2^-k) * (4*quarterTurn) / (2*pi)).
//
// This replaces a cruder "angle_step = 2048 >> k" linear approximation
// (the actual CORDIC step angle does not halve exactly at every
// iteration): using that shortcut instead of the true per-step arctangent
// leaves a systematic bias large enough that atan_q[0] comes out nonzero,
// violating the hard invariant that atan(0) == 0.
var cordicAngleTable = [16]int32{
	2048, 1209, 639, 324, 163, 81, 41, 20, 10, 5, 3, 1, 1, 0, 0, 0,
}

// BuildAtanQ computes the atan_q quarter-range table for a table of size
// n. For each i, target_y = i*sineScale/(n-1) represents the tangent
// ratio i/(n-1) scaled into the sine builder's coordinate system, and a
// 16-step vectoring CORDIC rotation finds the angle whose tangent is that
// ratio, starting from the vector (sineScale, target_y) and rotating it
// toward the x-axis. The n-1 denominator, matching BuildSineQ's own
// convention, lands i=n-1 exactly on ratio 1.0 so atan_q[n-1] comes out
// within a unit of atan(1) = quarterTurn/2; an i/n denominator instead
// leaves that endpoint several ulps short.
func BuildAtanQ(n int) []uint16 {
	t := make([]uint16, n)
	for i := 0; i < n; i++ {
		targetY := int32(i) * sineScale / int32(n-1)
		if targetY == 0 {
			t[i] = 0
			continue
		}

		x, y := int32(sineScale), targetY
		var angle int32
		for k := 0; k < 16; k++ {
			step := cordicAngleTable[k]
			if y > 0 {
				x, y = x+(y>>uint(k)), y-(x>>uint(k))
				angle += step
			} else {
				x, y = x-(y>>uint(k)), y+(x>>uint(k))
				angle -= step
			}
		}
		t[i] = uint16(angle)
	}
	return t
}
