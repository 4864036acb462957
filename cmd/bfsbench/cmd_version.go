package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bfsbench version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bfsbench %s (%s, GOMAXPROCS=%d)\n",
				version, runtime.Version(), runtime.GOMAXPROCS(0))
			return nil
		},
	}
}
