package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokenkit/internal/style"
	"github.com/alexisbeaulieu97/tokenkit/internal/ui/components"
)

func newPaletteCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette [color]",
		Short: "List palette colours, or the shades of one colour",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := root.loadPalette("")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				color, err := style.ParseColor(style.FamilyButton, args[0], pal)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, components.NewSwatch(pal, color).WithDetail(true).View())
				return nil
			}

			for _, color := range pal.Colors() {
				fmt.Fprintln(out, components.NewSwatch(pal, color).View())
			}
			return nil
		},
	}

	return cmd
}
