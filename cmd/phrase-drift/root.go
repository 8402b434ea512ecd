package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/phrase-drift/config"
)

// options are the persistent flags shared by every subcommand
type options struct {
	configFile string
	mute       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var loader *config.Loader

	root := &cobra.Command{
		Use:   "phrase-drift",
		Short: "Words drifting through a cube, assembled into phrases",
		Long: "phrase-drift animates words traveling along paths inside a rotating wireframe cube.\n" +
			"Words crossing the center are collected into grammatical phrases. Move the mouse\n" +
			"to tilt the cube and speed things up; space pauses, h toggles the HUD, m mutes, q quits.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loader = config.NewLoader(opts.configFile)
			for _, key := range []string{"seed", "debug"} {
				if err := loader.BindFlag(key, cmd.Flags().Lookup(key)); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			return runSketch(cfg, loader, opts.mute)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default .phrase-drift.toml)")
	root.PersistentFlags().Int64("seed", 0, "random seed, 0 seeds from the clock")
	root.PersistentFlags().Bool("debug", false, "write a debug log to logs/phrase-drift.log")
	root.Flags().BoolVar(&opts.mute, "mute", false, "start with audio muted")

	root.AddCommand(
		newConfigCmd(func() *config.Loader { return loader }),
		newPhrasesCmd(func() *config.Loader { return loader }),
	)
	return root
}

func newConfigCmd(loader func() *config.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loader().Load()
			if err != nil {
				return err
			}
			data, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
