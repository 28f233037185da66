package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/linera-bridge/bindings/witdef"
	"github.com/wippyai/linera-bridge/decode"
	"github.com/wippyai/linera-bridge/internal/layout"
)

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the wire types of the schema with their canonical ABI layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := decode.ForSchema(a.cfg.Schema)
			if err != nil {
				return err
			}
			calc := layout.NewCalculator()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-40s %6s %6s\n", "TYPE", "SIZE", "ALIGN")
			for _, name := range table.Types() {
				def, ok := witdef.Lookup(name)
				if !ok {
					continue
				}
				info := calc.Calculate(def)
				fmt.Fprintf(out, "%-40s %6d %6d\n", name, info.Size, info.Align)
			}
			return nil
		},
	}
}
