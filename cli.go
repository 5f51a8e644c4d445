package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bekirdag/folio/internal/effects"
	"github.com/bekirdag/folio/internal/frame"
	"github.com/bekirdag/folio/internal/motion"
)

func newSpringCmd() *cobra.Command {
	var (
		cfg    motion.SpringConfig
		target float64
		frames int
	)
	cmd := &cobra.Command{
		Use:   "spring",
		Short: "Print the step response of a spring at 60 frames per second",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loop := frame.NewLoop()
			defer loop.Close()
			source := motion.NewValue("source", 0)
			spring, err := motion.NewSpring(loop, source, cfg)
			if err != nil {
				return err
			}
			defer spring.Close()
			source.Set(target)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "frame\tms\tvalue\tvelocity\t")
			ts := 0.0
			for i := 1; i <= frames && loop.Active(); i++ {
				ts += 1000.0 / 60
				loop.Tick(ts)
				fmt.Fprintf(w, "%d\t%.1f\t%.4f\t%.4f\t\n", i, ts, spring.Get(), spring.Velocity())
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if spring.Idle() {
				fmt.Fprintf(cmd.OutOrStdout(), "at rest after %.0f ms\n", ts)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "still moving after %d frames\n", frames)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&cfg.Stiffness, "stiffness", 100, "spring stiffness")
	flags.Float64Var(&cfg.Damping, "damping", 30, "spring damping")
	flags.Float64Var(&cfg.RestDelta, "rest-delta", motion.DefaultRestDelta, "distance and speed under which the spring settles")
	flags.Float64Var(&target, "target", 1, "value the spring moves to from 0")
	flags.IntVar(&frames, "frames", 120, "maximum frames to simulate")
	return cmd
}

func newSettingsCmd() *cobra.Command {
	var (
		path  string
		write bool
	)
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective effect settings, or write them with --write",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, resolved, err := loadSettings(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; showing defaults\n", err)
				cfg = effects.DefaultSettings()
			}
			if write {
				if err := saveSettings(cfg, resolved); err != nil {
					return fmt.Errorf("write settings: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", resolved)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "settings file (default: settings.yaml in the user config dir)")
	cmd.Flags().BoolVar(&write, "write", false, "write the settings file instead of printing it")
	return cmd
}
