package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"saf/internal/ingest"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var zipFlag bool
	var dirFlag bool

	cmd := &cobra.Command{
		Use:   "import <csv>",
		Short: "Build an archive from a CSV source",
		Long: `Build a Simple Archive Format package from a CSV source.

Each CSV row becomes one item: its files are copied next to a generated
contents listing and dublin_core.xml document. Without --output the
archive lands under the configured output root, named after the CSV and
never overwriting earlier runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if zipFlag && dirFlag {
				return fmt.Errorf("--zip and --dir are mutually exclusive")
			}
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			manager := ingest.NewManager(settings, func(ev ingest.ProgressEvent) {
				// Errors surface through the returned error; everything
				// else prints according to verbosity.
				if ev.Level == ingest.LevelError {
					return
				}
				if ev.Level == ingest.LevelVerbose && !settings.Verbose {
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), ev.Message)
			})

			opts := ingest.Options{OutputPath: outputFlag}
			switch {
			case zipFlag:
				opts.Mode = ingest.ModeZip
			case dirFlag:
				opts.Mode = ingest.ModeDir
			}

			_, err = manager.Run(runCtx, args[0], opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: auto-named under the output root)")
	cmd.Flags().BoolVar(&zipFlag, "zip", false, "Write a single zip file")
	cmd.Flags().BoolVar(&dirFlag, "dir", false, "Write a directory tree")

	return cmd
}
