package commands

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build and backend information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return nil
			}
			writeBuildInfo(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func writeBuildInfo(out io.Writer) {
	fmt.Fprintf(out, "habits %s (%s/%s, %s)\n", version.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	if version.Commit != "" || version.BuildDate != "" {
		fmt.Fprintf(out, "  build:     %s %s\n", orUnknown(version.Commit), orUnknown(version.BuildDate))
	}
	fmt.Fprintf(out, "  stores:    %s\n", strings.Join([]string{domain.StoreMemory, domain.StoreSQLite}, ", "))
	fmt.Fprintf(out, "  renderers: %s\n", strings.Join([]string{domain.RendererAuto, domain.RendererTUI, domain.RendererText}, ", "))
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
