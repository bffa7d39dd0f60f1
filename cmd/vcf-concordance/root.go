package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/inodb/vcf-concordance/internal/output"
	"github.com/inodb/vcf-concordance/internal/overlap"
	"github.com/inodb/vcf-concordance/internal/render"
	"github.com/inodb/vcf-concordance/internal/variantset"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var (
		outputPath string
		summary    bool
	)

	cmd := &cobra.Command{
		Use:   "vcf-concordance file1.vcf file2.vcf [file3.vcf ...]",
		Short: "Compare variant concordance between VCF files",
		Long: `vcf-concordance compares the variants recorded in two or more VCF (or MAF)
files and renders a visual summary of how many are shared versus unique
to each input: a Venn diagram for 2-3 files, or a combination-frequency
(UpSet-style) plot for 4 or more.

Variants are matched on chromosome, position, reference allele and the
first alternate allele; quality, filter and genotype fields are ignored.`,
		Example: `  vcf-concordance tumor.vcf normal.vcf --output concordance.png
  vcf-concordance a.vcf b.vcf.gz c.vcf
  vcf-concordance run1.vcf run2.vcf run3.vcf run4.vcf -o plots/`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args, outputPath, summary, logger)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the diagram to this file (or directory); default is interactive display")
	cmd.Flags().BoolVar(&summary, "summary", false,
		"Also print a tab-delimited table of overlap counts to stdout")

	cmd.Version = fmt.Sprintf("%s (%s) built %s", version, commit, date)

	cmd.AddCommand(newConfigCmd())

	return cmd
}

// runCompare is the whole pipeline: filter inputs, build one set per
// file, select the diagram family, render.
func runCompare(args []string, outputPath string, summary bool, logger *zap.Logger) error {
	inputs := recognizedInputs(args)
	if len(inputs) < 2 {
		return errUsage
	}

	builder := variantset.NewBuilder()
	builder.SetLogger(logger)

	results := builder.BuildAll(inputs)
	sets := make([]*variantset.Set, len(results))
	for i, r := range results {
		sets[i] = r.Set
	}

	diagram, err := overlap.Select(sets, logger)
	if err != nil {
		return err
	}

	if summary {
		if err := output.NewSummaryWriter(os.Stdout).WriteAll(diagram); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	opts := render.Options{
		Mode:   render.ModeShow,
		DPI:    viper.GetInt("render.dpi"),
		Width:  vg.Length(viper.GetFloat64("render.width")) * vg.Inch,
		Height: vg.Length(viper.GetFloat64("render.height")) * vg.Inch,
	}
	if outputPath != "" {
		opts.Mode = render.ModeWriteFile
		opts.Path = resolveOutputPath(outputPath)
	}

	if err := render.Render(diagram, opts); err != nil {
		return err
	}

	if opts.Mode == render.ModeWriteFile {
		switch diagram.(type) {
		case *overlap.Pairwise:
			fmt.Printf("Venn diagram saved to %s\n", opts.Path)
		default:
			fmt.Printf("UpSet plot saved to %s\n", opts.Path)
		}
	}

	return nil
}

// recognizedInputs keeps, in order, the arguments ending in a
// recognized variant-file extension. Anything else is silently
// ignored.
func recognizedInputs(args []string) []string {
	var inputs []string
	for _, arg := range args {
		if variantset.Recognized(arg) {
			inputs = append(inputs, arg)
		}
	}
	return inputs
}

// resolveOutputPath maps a directory argument to the default filename
// inside it; any other path is used verbatim.
func resolveOutputPath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, render.DefaultFilename)
	}
	return path
}
