package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randytbushman/sorteval/src/config"
)

func newPresetsCmd() *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List the built-in figures, or print one as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src, err := config.PresetSource(args[0])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			for _, n := range config.PresetNames() {
				if !show {
					fmt.Fprintln(cmd.OutOrStdout(), n)
					continue
				}
				f, err := config.Preset(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %dx%d  %d panels  -> %s\n", n, f.Rows, f.Cols, len(f.Panels), f.Output)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&show, "long", "l", false, "Show layout and output of each preset")
	return cmd
}
