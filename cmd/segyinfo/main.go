// Command segyinfo prints a summary of a SEG-Y file: tape label, binary
// header, text header and trace geometry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	segy "github.com/GiGainfosystems/giga-segy"
	"github.com/GiGainfosystems/giga-segy/header"
	"github.com/GiGainfosystems/giga-segy/layout"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type inspectOptions struct {
	maxTraces int
	showText  bool
	stepBy    int
	dimZ      int32
}

func newRootCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "segyinfo <file>",
		Short: "Inspect the headers and geometry of a SEG-Y file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, args[0], opts)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVarP(&opts.maxTraces, "traces", "t", 10, "number of trace geometry lines to print (0 for none)")
	cmd.Flags().BoolVar(&opts.showText, "text", false, "print the text header card images")
	cmd.Flags().IntVar(&opts.stepBy, "step-by", 1, "sample stride for data reads")
	cmd.Flags().Int32Var(&opts.dimZ, "dim-z", 0, "truncate traces to this many samples")

	return cmd
}

func inspect(cmd *cobra.Command, path string, opts *inspectOptions) error {
	var layoutOpts []layout.Option
	if opts.stepBy != 1 {
		layoutOpts = append(layoutOpts, layout.WithStepBy(opts.stepBy))
	}
	if opts.dimZ > 0 {
		layoutOpts = append(layoutOpts, layout.WithDimZ(opts.dimZ))
	}
	set, err := layout.NewSettings(layoutOpts...)
	if err != nil {
		return err
	}

	f, err := segy.Open(path, set)
	if err != nil {
		return err
	}
	defer f.Close()

	out := cmd.OutOrStdout()

	if label, ok := f.ReadableTapeLabel(); ok {
		fmt.Fprintln(out, "tape label:")
		fmt.Fprintf(out, "  sequence no:   %s\n", label.StorageUnitSeqNo)
		fmt.Fprintf(out, "  revision:      %s\n", label.SegyRevisionNo)
		fmt.Fprintf(out, "  structure:     %s\n", label.StorageUnitStructure)
		fmt.Fprintf(out, "  creation date: %s\n", label.CreationDate)
		fmt.Fprintf(out, "  organisation:  %s\n", label.ProducingOrganisationCode)
		fmt.Fprintf(out, "  max block:     %d\n", label.MaxBlockSize)
	} else {
		fmt.Fprintln(out, "tape label: none")
	}

	bin := f.BinHeader()
	order := "big-endian"
	if bin.LittleEndian {
		order = "little-endian"
	}
	fmt.Fprintln(out, "binary header:")
	fmt.Fprintf(out, "  job / line / reel: %d / %d / %d\n", bin.JobID, bin.LineNumber, bin.ReelNumber)
	fmt.Fprintf(out, "  sample format:     %s (%s)\n", bin.SampleFormatCode, order)
	fmt.Fprintf(out, "  samples per trace: %d at %d us\n", bin.NoSamples, bin.SampleInterval)
	fmt.Fprintf(out, "  trace layout:      %s, sorting %s\n", bin.FixedLengthTraceFlag, bin.SortingCode)
	fmt.Fprintf(out, "  revision:          %d.%d\n", bin.SegyRevisionNumber[0], bin.SegyRevisionNumber[1])
	fmt.Fprintf(out, "  extended headers:  %d\n", bin.ExtendedHeaderCount)
	fmt.Fprintf(out, "  measurement:       %s\n", bin.MeasurementSystem)

	if opts.showText {
		fmt.Fprintln(out, "text header:")
		for _, line := range f.TextHeaderLines() {
			fmt.Fprintf(out, "  %s\n", line)
		}
		for i, ext := range f.ExtendedHeaders() {
			fmt.Fprintf(out, "extended header %d:\n", i+1)
			for _, line := range header.TextHeaderLines(ext) {
				fmt.Fprintf(out, "  %s\n", line)
			}
		}
	}

	report := f.Report()
	fmt.Fprintf(out, "traces: %d kept, %d skipped by bounds\n", report.TraceCount, report.Skipped)
	if report.TrailingHeaderErr != nil {
		fmt.Fprintf(out, "  scan ended at an unparseable header: %v\n", report.TrailingHeaderErr)
	}
	if report.Stopped {
		fmt.Fprintln(out, "  scan stopped at an unparseable header")
	}

	if minMax, ok := f.TraceIndicesForInlineMinMax(); ok {
		lo, _ := f.Trace(minMax[0])
		hi, _ := f.Trace(minMax[1])
		fmt.Fprintf(out, "  inline range:    %d..%d\n", lo.Header().InlineNo, hi.Header().InlineNo)
	}
	if minMax, ok := f.TraceIndicesForCrosslineMinMax(); ok {
		lo, _ := f.Trace(minMax[0])
		hi, _ := f.Trace(minMax[1])
		fmt.Fprintf(out, "  crossline range: %d..%d\n", lo.Header().CrosslineNo, hi.Header().CrosslineNo)
	}

	for i, tr := range f.Traces() {
		if i >= opts.maxTraces {
			fmt.Fprintf(out, "  ... %d more traces\n", f.TraceCount()-opts.maxTraces)
			break
		}
		h := tr.Header()
		fmt.Fprintf(out, "  trace %4d: inline %d crossline %d ensemble (%d, %d) samples %d (%s)\n",
			i, h.InlineNo, h.CrosslineNo, h.XEnsemble, h.YEnsemble,
			h.NoSamplesInTrace, h.TraceIdentificationCode)
	}

	return nil
}
