package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-iconforge/config"
	"github.com/nvr-ai/go-iconforge/cutout"
	"github.com/nvr-ai/go-iconforge/icons"
)

func newIconsCmd(a *app) *cobra.Command {
	var (
		source    string
		outputDir string
		noCutout  bool
		fuzz      int
		stretch   bool
		resampler string
	)

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Generate favicon, Apple touch, PWA and maskable icons from a logo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ic := a.cfg.Icons
			flags := cmd.Flags()
			if flags.Changed("source") {
				ic.Source = source
			}
			if flags.Changed("out") {
				ic.OutputDir = outputDir
			}
			if flags.Changed("no-cutout") {
				ic.Cutout = !noCutout
			}
			if flags.Changed("fuzz") {
				ic.Fuzz = fuzz
			}
			if flags.Changed("stretch") {
				ic.Stretch = stretch
			}
			if flags.Changed("resampler") {
				ic.Resampler = resampler
			}
			return runIcons(cmd, a, ic)
		},
	}

	cmd.Flags().StringVar(&source, "source", icons.DefaultSource, "Logo image to read")
	cmd.Flags().StringVar(&outputDir, "out", icons.DefaultOutputDir, "Directory that receives the icons")
	cmd.Flags().BoolVar(&noCutout, "no-cutout", false, "Keep the logo background instead of making it transparent")
	cmd.Flags().IntVar(&fuzz, "fuzz", int(cutout.DefaultFuzz), "Color tolerance for background and hole removal (0-255)")
	cmd.Flags().BoolVar(&stretch, "stretch", false, "Resize straight to each size, ignoring aspect ratio and padding")
	cmd.Flags().StringVar(&resampler, "resampler", icons.ScalerLanczos, fmt.Sprintf("Resampler, one of %v", icons.ScalerNames()))

	return cmd
}

func runIcons(cmd *cobra.Command, a *app, ic config.IconsConfig) error {
	if ic.Fuzz < 0 || ic.Fuzz > 255 {
		return a.fail(cmd, errors.Errorf("fuzz %d outside [0, 255]", ic.Fuzz), ic.Source, "")
	}
	scale, err := icons.ScalerByName(ic.Resampler)
	if err != nil {
		return a.fail(cmd, err, ic.Source, "")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🚀 Generating icons from %s...\n", ic.Source)

	_, err = icons.Generate(icons.Options{
		Source:    ic.Source,
		OutputDir: ic.OutputDir,
		Specs:     ic.Specs,
		Cutout:    ic.Cutout,
		CutoutOptions: cutout.Options{
			Fuzz:     uint8(ic.Fuzz),
			HoleScan: cutout.DefaultHoleScan,
		},
		Stretch:  ic.Stretch,
		Scaler:   scale,
		Logger:   a.logger.Named("icons"),
		Profiler: a.profiler,
		OnWrite: func(o icons.Output) {
			fmt.Fprintf(out, "✅ Created: %s\n", o.Spec.Name)
		},
	})
	if err != nil {
		return a.fail(cmd, err, ic.Source,
			fmt.Sprintf("Make sure the file is named exactly '%s' and is in this folder.", ic.Source))
	}

	fmt.Fprintf(out, "\n🎉 Done! Copy the files inside '%s' into your project's 'public/' folder.\n", ic.OutputDir)
	a.profiler.Report(out)
	return nil
}
