// Package gcplot is for profiling the GC content of a sequence along its length
// and plotting the profile.
package gcplot

import (
	"fmt"
	"time"

	"github.com/jjtimmons/gcplot/config"
	"github.com/jjtimmons/gcplot/internal/gc"
	"github.com/jjtimmons/gcplot/internal/render"
	"github.com/jjtimmons/gcplot/internal/seqio"
	"github.com/spf13/cobra"
)

// ProfileCmd takes a cobra command (with its flags) and runs Profile.
func ProfileCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, true)

	if _, err := Profile(flags, conf); err != nil {
		stderr.Fatal(err)
	}
}

// Profile reads the target sequence, reports its overall GC content, and plots
// the GC content of windows along its length.
func Profile(flags *Flags, conf *config.Config) (*Output, error) {
	start := time.Now()

	target, err := seqio.ReadRecord(flags.in)
	if err != nil {
		return nil, fmt.Errorf("failed to read target sequence from %s: %v", flags.in, err)
	}

	out, err := profile(target, conf)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Processing file: %s\n", flags.in)
	fmt.Printf("Sequence ID: %s\n", target.ID)
	fmt.Printf("Total Length: %d bp\n", out.Length)
	fmt.Printf("Overall GC Content: %.2f%%\n", out.GC)

	meta := render.Meta{
		ID:     target.ID,
		Length: out.Length,
		Window: conf.Window,
		Step:   conf.Step,
	}
	if err = render.Save(out.Samples, meta, conf.Plot, flags.out); err != nil {
		return nil, err
	}
	fmt.Printf("Plot saved as %s\n", flags.out)

	out.Execution = time.Since(start).Seconds()
	if flags.data != "" {
		if _, err = writeJSON(flags.data, out); err != nil {
			return nil, err
		}
		fmt.Printf("Data saved as %s\n", flags.data)
	}

	if conf.Verbose {
		fmt.Printf("%s\n", time.Since(start))
	}

	return out, nil
}

// profile calculates the overall and windowed GC content of the target.
func profile(target *seqio.Record, conf *config.Config) (*Output, error) {
	samples, err := gc.Profile(target.Seq, conf.Window, conf.Step)
	if err != nil {
		return nil, err
	}

	return &Output{
		Target:  target.ID,
		Length:  len(target.Seq),
		GC:      gc.Content(target.Seq),
		Window:  conf.Window,
		Step:    conf.Step,
		Samples: samples,
	}, nil
}
