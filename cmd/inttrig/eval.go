package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/inttrig/trig"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <args...>",
		Short: "evaluate one operation: sin|cos|tan|atan2|atan|asin|acos|sincos|mag",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runEval,
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("eval")
	if err != nil {
		return err
	}
	n := cfg.N
	if cmd.Flags().Changed("n") {
		n = tableN
	}
	k, err := kernelForN(n)
	if err != nil {
		return err
	}

	op := args[0]
	rest := args[1:]

	switch op {
	case "sin", "cos", "tan", "atan", "asin", "acos":
		v, err := parseInt(rest, 0)
		if err != nil {
			return err
		}
		return evalUnary(k, op, v)
	case "sincos":
		v, err := parseInt(rest, 0)
		if err != nil {
			return err
		}
		s, c := k.SinCos(uint16(v))
		fmt.Printf("sin=%d (%.6f)  cos=%d (%.6f)\n", s, float64(s)/16384, c, float64(c)/16384)
		return nil
	case "atan2":
		y, err := parseInt(rest, 0)
		if err != nil {
			return err
		}
		x, err := parseInt(rest, 1)
		if err != nil {
			return err
		}
		angle := k.Atan2(int32(y), int32(x))
		fmt.Printf("%d (%.4f rad, %d deg)\n", angle, float64(angle)/16384*2*3.141592653589793, trig.ToDegrees(angle))
		return nil
	case "mag":
		x, err := parseInt(rest, 0)
		if err != nil {
			return err
		}
		y, err := parseInt(rest, 1)
		if err != nil {
			return err
		}
		fmt.Println(k.Magnitude(int32(x), int32(y)))
		return nil
	default:
		return fmt.Errorf("unknown op %q (want sin|cos|tan|atan2|atan|asin|acos|sincos|mag)", op)
	}
}

func evalUnary(k *trig.Kernel, op string, v int) error {
	switch op {
	case "sin":
		r := k.Sin(uint16(v))
		fmt.Printf("%d (%.6f)\n", r, float64(r)/16384)
	case "cos":
		r := k.Cos(uint16(v))
		fmt.Printf("%d (%.6f)\n", r, float64(r)/16384)
	case "tan":
		r := k.Tan(uint16(v))
		fmt.Printf("%d (%.6f)\n", r, float64(r)/8192)
	case "atan":
		r := k.Atan(int16(v))
		fmt.Printf("%d (%d deg)\n", r, trig.ToDegrees(r))
	case "asin":
		r := k.Asin(int16(v))
		fmt.Printf("%d (%d deg)\n", r, trig.ToDegrees(r))
	case "acos":
		r := k.Acos(int16(v))
		fmt.Printf("%d (%d deg)\n", r, trig.ToDegrees(r))
	}
	return nil
}

func parseInt(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", args[i], err)
	}
	return v, nil
}
