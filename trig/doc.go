// Package trig implements integer-only trigonometry over a fixed 16-bit
// angle encoding, for callers that cannot afford floating point or a
// runtime table build: microcontrollers, ISRs, and other latency-sensitive
// code paths.
//
// The core type is [Kernel], parameterized only by its quarter-wave table
// size N. Five standard instantiations are exported ready to use:
//
//	trig.Trig32, trig.Trig64, trig.Trig128, trig.Trig256, trig.Trig512
//
// [Trig128] is the recommended default (768 bytes of tables, well under
// 1% error against the true functions). Their tables are literal Go data
// produced ahead of time by cmd/trigtables-gen from
// internal/tablegen — see that package's doc comment for the build-time
// half of the story. Nothing in this package computes a table at runtime.
//
//go:generate go run ../cmd/trigtables-gen -out .
//
// # Angle encoding
//
// An angle is an unsigned 16-bit value whose low 14 bits represent a
// position in [0, 2π); the top two bits are ignored by every method here
// (equivalent to reducing modulo 2π). Convert to and from degrees or
// milliradians with [FromDegrees], [ToDegrees], [FromMilliradians], and
// [ToMilliradians].
//
// # Thread safety
//
// A *Kernel holds only its table size, its (read-only, table-gen-produced)
// slices, and the index scale constants derived from the size once at
// construction. Every method is a
// pure function of its arguments and the kernel's tables; concurrent calls
// from any number of goroutines require no synchronization.
package trig
