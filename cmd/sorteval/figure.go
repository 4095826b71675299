package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randytbushman/sorteval/src/config"
)

func newFigureCmd() *cobra.Command {
	var (
		cfgPath string
		preset  string
		output  string
		baseDir string
	)
	cmd := &cobra.Command{
		Use:   "figure",
		Short: "Render a figure described by a YAML file or a built-in preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Figure
				err error
			)
			switch {
			case cfgPath != "" && preset != "":
				return fmt.Errorf("--config and --preset are mutually exclusive")
			case cfgPath != "":
				cfg, err = config.Load(cfgPath)
			case preset != "":
				cfg, err = config.Preset(preset)
			default:
				return fmt.Errorf("one of --config or --preset is required")
			}
			if err != nil {
				return err
			}
			if baseDir != "" {
				cfg.SetBaseDir(baseDir)
			}
			if output != "" {
				cfg.Output = output
			}
			if cfg.Output == "" {
				return fmt.Errorf("no output path: set output in the config or pass --output")
			}
			fig, err := config.Build(cfg)
			if err != nil {
				return err
			}
			if err := fig.Save(cfg.Output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Figure YAML file")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "Built-in figure (see 'sorteval presets')")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Override the output file; extension picks the format")
	cmd.Flags().StringVar(&baseDir, "data-dir", "", "Directory relative table paths resolve against")
	return cmd
}
