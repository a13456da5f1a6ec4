package trig

// FromDegrees converts an integer degree value (any range, including
// negative) to internal angle units.
func FromDegrees(degrees int16) uint16 {
	d := int32(degrees) % 360
	if d < 0 {
		d += 360
	}
	return uint16((d * (1 << angleBits)) / 360)
}

// ToDegrees converts an internal angle to an integer degree in [0, 360),
// rounding down.
func ToDegrees(angle uint16) int16 {
	return int16(uint32(angle&angleMask) * 360 / (1 << angleBits))
}

// FromMilliradians converts an angle expressed as radians * 1000 (so
// 3141 means 3.141 rad) to internal angle units.
func FromMilliradians(mrad int32) uint16 {
	const twoPiMilli = 6283 // 2π * 1000, truncated
	m := mrad % twoPiMilli
	if m < 0 {
		m += twoPiMilli
	}
	return uint16((int64(m) * (1 << angleBits)) / twoPiMilli)
}

// ToMilliradians converts an internal angle to radians * 1000.
func ToMilliradians(angle uint16) int32 {
	const twoPiMilli = 6283
	return int32((int64(angle&angleMask) * twoPiMilli) / (1 << angleBits))
}
