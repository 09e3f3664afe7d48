package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelwright/panelcut/internal/model"
	"github.com/panelwright/panelcut/internal/project"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the saved optimizer configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		path        string
		orientation string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a preset configuration file for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := configTarget(path)
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", target)
				}
			}
			cfg := model.PresetFor(model.ParseOrientation(orientation))
			if err := project.SaveConfig(target, cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s preset to %s\n", cfg.Orientation, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "config file location (default: saved user config)")
	cmd.Flags().StringVar(&orientation, "orientation", "vertical", "preset to write, vertical or horizontal")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := configTarget(path)
			if err != nil {
				return err
			}
			cfg, err := project.LoadConfigOrDefault(target, model.OrientationVertical)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "config file location (default: saved user config)")
	return cmd
}

func configTarget(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	target, err := project.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return target, nil
}
