package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/inttrig/internal/toolconfig"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "print table size and byte footprint for a given N (or all standard sizes)",
		RunE:  runTable,
	}
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("table")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("n") {
		cfg.N = tableN
	}

	sizes := toolconfig.StandardSizes
	if cfg.N != 0 {
		if err := toolconfig.ValidateN(cfg.N); err != nil {
			return err
		}
		sizes = []int{cfg.N}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tSINE_Q\tATAN_Q\tASIN_Q\tTOTAL")
	for _, n := range sizes {
		k, err := kernelForN(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d bytes\n", n, 2*n, 2*n, 2*n, k.TableBytes())
	}
	return w.Flush()
}
