package trig

// Standard table-size instantiations. Each wraps literal table data from
// the matching trig/tables_gen_*.go file (produced ahead of time by
// cmd/trigtables-gen); constructing them costs a few field assignments
// and two divisions for the index reciprocals, not a table build.
var (
	// Trig32 is the smallest standard configuration: 192 bytes of tables,
	// suitable when memory is the binding constraint and roughly 1-2%
	// accuracy is acceptable.
	Trig32 = newKernel(32, trig32SineQ[:], trig32AtanQ[:], trig32AsinQ[:])

	// Trig64 is a compact configuration: 384 bytes of tables.
	Trig64 = newKernel(64, trig64SineQ[:], trig64AtanQ[:], trig64AsinQ[:])

	// Trig128 is the recommended default: 768 bytes of tables, well
	// under 1% error against the true functions across the full domain.
	Trig128 = newKernel(128, trig128SineQ[:], trig128AtanQ[:], trig128AsinQ[:])

	// Trig256 trades memory for accuracy: 1536 bytes of tables.
	Trig256 = newKernel(256, trig256SineQ[:], trig256AtanQ[:], trig256AsinQ[:])

	// Trig512 is the highest-precision standard configuration: 3072
	// bytes of tables.
	Trig512 = newKernel(512, trig512SineQ[:], trig512AtanQ[:], trig512AsinQ[:])

	// Default is the kernel used when a caller has no specific
	// size/accuracy tradeoff in mind.
	Default = Trig128
)

// NewKernel builds a Kernel from tables produced elsewhere (typically by
// internal/tablegen, for a table size other than the five standard ones
// above). n must be a power of two, and sineQ, atanQ, and asinQ must all
// have length n; NewKernel panics otherwise, since a kernel with
// mismatched or non-power-of-two tables cannot serve any of the invariants
// this package documents.
func NewKernel(n int, sineQ []int16, atanQ, asinQ []uint16) *Kernel {
	if len(sineQ) != n || len(atanQ) != n || len(asinQ) != n {
		panic("trig: table length must equal n")
	}
	return newKernel(n, sineQ, atanQ, asinQ)
}
