package gcplot

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ContentCmd prints the GC content of a sequence, read either from a FASTA
// file or passed as an argument. If verbose, the content of each window
// is printed too.
func ContentCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, false)

	target, err := readInput(flags.in, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	out, err := profile(target, conf)
	if err != nil {
		stderr.Fatal(err)
	}

	if err = writeContent(os.Stdout, out, conf.Verbose); err != nil {
		stderr.Fatal(err)
	}
}

// writeContent writes a summary of the output and, optionally, a table of its samples.
func writeContent(w io.Writer, out *Output, windows bool) error {
	fmt.Fprintf(w, "Sequence ID: %s\n", out.Target)
	fmt.Fprintf(w, "Total Length: %d bp\n", out.Length)
	fmt.Fprintf(w, "Overall GC Content: %.2f%%\n", out.GC)

	if !windows {
		return nil
	}

	fmt.Fprintf(w, "\nWindow: %d, Step: %d\n", out.Window, out.Step)
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "start\tend\tgc\t\n")
	for _, s := range out.Samples {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t\n", s.Position, s.Position+out.Window, s.GC)
	}
	return tw.Flush()
}
