package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	configinfra "github.com/doeshing/habits/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(load ContainerLoader) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect habits configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), load)
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd.Context(), cmd.OutOrStdout(), load)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfigPath(cmd.Context(), cmd.OutOrStdout(), load)
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration file",
			RunE: func(cmd *cobra.Command, args []string) error {
				return validateConfiguration(cmd.Context(), cmd.OutOrStdout(), load)
			},
		},
		&cobra.Command{
			Use:   "diff",
			Short: "Show differences from the default configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return diffConfiguration(cmd.Context(), cmd.OutOrStdout(), load)
			},
		},
	)

	return configCmd
}

// showConfiguration prints the effective configuration (file, defaults and flags) as YAML
func showConfiguration(ctx context.Context, out io.Writer, load ContainerLoader) error {
	container, err := load(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	raw, err := yaml.Marshal(container.Config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(raw)
	return err
}

// showConfigPath prints the file the loader reads
func showConfigPath(ctx context.Context, out io.Writer, load ContainerLoader) error {
	container, err := load(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	if container.ConfigLoader == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	fmt.Fprintln(out, container.ConfigLoader.Path())
	return nil
}

// validateConfiguration reports whether the configuration loads cleanly
func validateConfiguration(ctx context.Context, out io.Writer, load ContainerLoader) error {
	container, err := load(ctx)
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	defer container.Close()

	fmt.Fprintln(out, MsgConfigurationValid)
	return nil
}

// diffConfiguration shows how the effective configuration differs from the defaults
func diffConfiguration(ctx context.Context, out io.Writer, load ContainerLoader) error {
	container, err := load(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	defaults, err := configinfra.Defaults()
	if err != nil {
		return err
	}

	diff := cmp.Diff(defaults, container.Config)
	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return nil
	}
	fmt.Fprintln(out, "Differences (-default +current):")
	fmt.Fprint(out, diff)
	return nil
}
