// Package tablegen computes the sine, arctangent, and arcsine quarter-wave
// tables consumed by package trig, using only integer arithmetic.
//
// It is the build-time half of the kernel: cmd/trigtables-gen calls
// [BuildSineQ], [BuildAtanQ], and [BuildAsinQ] for each standard table
// size and writes the results as literal Go slices under trig/, so that
// package trig never runs a table-construction loop itself. Nothing here
// is imported by trig at runtime.
package tablegen
