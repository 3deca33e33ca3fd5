package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-iconforge/config"
	"github.com/nvr-ai/go-iconforge/quadrant"
)

func newSliceCmd(a *app) *cobra.Command {
	var (
		source    string
		outputDir string
		quality   int
	)

	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Cut a 2x2 composite image into four persona tiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.cfg.Slice
			flags := cmd.Flags()
			if flags.Changed("source") {
				sc.Source = source
			}
			if flags.Changed("out") {
				sc.OutputDir = outputDir
			}
			if flags.Changed("quality") {
				sc.Quality = quality
			}
			return runSlice(cmd, a, sc)
		},
	}

	cmd.Flags().StringVar(&source, "source", quadrant.DefaultSource, "Composite image to slice")
	cmd.Flags().StringVar(&outputDir, "out", quadrant.DefaultOutputDir, "Directory that receives the tiles")
	cmd.Flags().IntVar(&quality, "quality", quadrant.DefaultQuality, "JPEG quality (1-100)")

	return cmd
}

func runSlice(cmd *cobra.Command, a *app, sc config.SliceConfig) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processing %s...\n", sc.Source)

	_, err := quadrant.Run(quadrant.Options{
		Source:    sc.Source,
		OutputDir: sc.OutputDir,
		Quality:   sc.Quality,
		Logger:    a.logger.Named("slice"),
		Profiler:  a.profiler,
		OnWrite: func(o quadrant.Output) {
			fmt.Fprintf(out, "✅ Created: %s\n", o.Box.Name)
		},
	})
	if err != nil {
		return a.fail(cmd, err, sc.Source, "")
	}

	fmt.Fprintln(out, "\nSuccess! All 4 personas have been extracted.")
	a.profiler.Report(out)
	return nil
}
