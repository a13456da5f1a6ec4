package main

import (
	"fmt"

	"github.com/san-kum/inttrig/trig"
)

// kernelForN resolves one of the five standard table sizes to its
// package-level Kernel instantiation. There is no runtime table
// construction path in trig, so any n outside the standard set is an
// error rather than something the CLI could build on demand.
func kernelForN(n int) (*trig.Kernel, error) {
	switch n {
	case 32:
		return trig.Trig32, nil
	case 64:
		return trig.Trig64, nil
	case 128:
		return trig.Trig128, nil
	case 256:
		return trig.Trig256, nil
	case 512:
		return trig.Trig512, nil
	default:
		return nil, fmt.Errorf("n=%d is not a standard table size (32, 64, 128, 256, 512)", n)
	}
}
