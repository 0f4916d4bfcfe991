package cmd

import (
	"github.com/jjtimmons/gcplot/config"
	"github.com/jjtimmons/gcplot/internal/gcplot"
	"github.com/spf13/cobra"
)

// contentCmd is for printing the GC content of a sequence
var contentCmd = &cobra.Command{
	Use:                        "content [sequence]",
	Short:                      "Print the GC content of a sequence",
	PreRun:                     bindFlags,
	Run:                        gcplot.ContentCmd,
	SuggestionsMinimumDistance: 3,
	Long: `
Print the GC content of a sequence, either in a FASTA file or passed as an
argument. With --verbose, the GC content of each window is listed too.`,
	Example: `  gcplot content GCGCATATGCGC
  gcplot content -i NC_000913.fa -w 1000 -s 500 -v`,
	Aliases: []string{"gc"},
}

// set flags
func init() {
	contentCmd.Flags().StringP("in", "i", "", "input FASTA with the sequence")
	contentCmd.Flags().IntP("window", "w", config.DefaultWindow, "sliding window length in bp")
	contentCmd.Flags().IntP("step", "s", config.DefaultStep, "step length between windows in bp")
	contentCmd.Flags().BoolP("verbose", "v", false, "print the GC content of each window")

	RootCmd.AddCommand(contentCmd)
}
