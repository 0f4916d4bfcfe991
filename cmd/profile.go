package cmd

import (
	"github.com/jjtimmons/gcplot/config"
	"github.com/jjtimmons/gcplot/internal/gcplot"
	"github.com/spf13/cobra"
)

// profileCmd is for plotting the GC content of windows along a sequence
var profileCmd = &cobra.Command{
	Use:                        "profile",
	Short:                      "Plot the GC content along a sequence",
	PreRun:                     bindFlags,
	Run:                        gcplot.ProfileCmd,
	SuggestionsMinimumDistance: 3,
	Long: `
Slide a window along the sequence in a FASTA file and plot the GC content
of each window against its start position.

Windows start every "step" bp while the start is less than the sequence
length minus the window length. The file must have exactly one record.`,
	Example: "  gcplot profile -i NC_000913.fa -w 1000 -s 100 -o ecoli_gc.png",
}

// set flags
func init() {
	profileCmd.Flags().StringP("in", "i", "", "input FASTA with the sequence to profile")
	profileCmd.Flags().StringP("out", "o", config.DefaultOutput, "output image file name (.png, .svg, .pdf, ...)")
	profileCmd.Flags().StringP("data", "d", "", "output JSON file name for the windows' GC content")
	profileCmd.Flags().IntP("window", "w", config.DefaultWindow, "sliding window length in bp")
	profileCmd.Flags().IntP("step", "s", config.DefaultStep, "step length between windows in bp")
	profileCmd.Flags().BoolP("verbose", "v", false, "whether to log execution time")

	RootCmd.AddCommand(profileCmd)
}
