package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/habits/internal/app"
	"github.com/doeshing/habits/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	In      io.Reader
}

// NewRootCmd wires the cobra root command. The container is built per
// invocation so persistent flags are applied before any adapter is opened.
func NewRootCmd(opts Options) *cobra.Command {
	var (
		configPath   string
		storeKind    string
		rendererKind string
		debug        bool
	)

	in := opts.In
	if in == nil {
		in = os.Stdin
	}

	root := &cobra.Command{
		Use:   "habits",
		Short: "Habits - a terminal habit tracker",
		Long:  "Habits records daily completions of named habits and charts progress in the terminal.",
		Args:  cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	load := func(ctx context.Context) (*app.Container, error) {
		return app.BuildContainer(ctx, app.Options{
			Verbose:      opts.Verbose || debug,
			ConfigPath:   configPath,
			StoreKind:    storeKind,
			RendererKind: rendererKind,
			In:           in,
			Out:          root.OutOrStdout(),
		})
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.Context(), load, in, cmd.OutOrStdout())
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to config file (default $HABITS_CONFIG or ~/.habits/config.yaml)")
	flags.StringVar(&storeKind, "store", "", "Habit store backend (memory|sqlite)")
	flags.StringVar(&rendererKind, "renderer", "", "Chart renderer (tui|text|auto)")
	flags.BoolVar(&debug, "debug", false, "Enable verbose logging")

	root.AddCommand(commands.NewVersionCommand())
	root.AddCommand(commands.NewDoctorCommand(load))
	root.AddCommand(commands.NewConfigCommand(load))
	return root
}

func runMenu(ctx context.Context, load commands.ContainerLoader, in io.Reader, out io.Writer) error {
	container, err := load(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	menu := NewMenu(container.Tracker, container.Renderer, container.Logger, in, out)
	return menu.Run(ctx)
}
