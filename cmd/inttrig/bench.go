package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/inttrig/internal/sweep"
	"github.com/san-kum/inttrig/internal/toolconfig"
)

var benchPlot bool

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run the sin accuracy sweep across one or more table sizes",
		RunE:  runBench,
	}
	cmd.Flags().BoolVar(&benchPlot, "plot", false, "plot the per-angle error curve for each size")
	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("bench")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("n") {
		cfg.N = tableN
	}
	if cfg.OutputMode == "plot" {
		benchPlot = true
	}

	sizes := toolconfig.StandardSizes
	if cfg.N != 0 {
		if err := toolconfig.ValidateN(cfg.N); err != nil {
			return err
		}
		sizes = []int{cfg.N}
	}

	fmt.Printf("%-6s %s\n", "N", "MAX_ABS_ERROR")
	for _, n := range sizes {
		k, err := kernelForN(n)
		if err != nil {
			return err
		}
		result := sweep.Accuracy(k, 128)
		fmt.Printf("%-6d %.6f\n", result.N, result.MaxAbsError)

		if benchPlot {
			graph := asciigraph.Plot(result.Curve,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("sin error, N=%d", result.N)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}
	return nil
}
