package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the destination is reachable without searching",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.grid()
			if err != nil {
				return err
			}
			n := len(g.Reachable())
			if g.Connected() {
				_, err = fmt.Fprintf(a.out, "reachable: %v -> %v (%d open cells reachable)\n", g.Start(), g.Destination(), n)
			} else {
				_, err = fmt.Fprintf(a.out, "unreachable: %v -> %v (%d open cells reachable)\n", g.Start(), g.Destination(), n)
			}
			return err
		},
	}
}
