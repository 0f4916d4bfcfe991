package gcplot

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/gcplot/config"
	"github.com/jjtimmons/gcplot/internal/seqio"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "in", "out" and "data".
type Flags struct {
	// the name of the FASTA file to read the sequence from
	in string

	// the name of the image file to write the plot to
	out string

	// the name of the JSON file to write the samples to (optional)
	data string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out, data string) *Flags {
	if out == "" {
		out = config.DefaultOutput
	}

	return &Flags{
		in:   in,
		out:  out,
		data: data,
	}
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object
// returns Flags and a Config struct for gcplot.Profile.
func parseCmdFlags(cmd *cobra.Command, strict bool) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}

	if fs.in, err = cmd.Flags().GetString("in"); strict && (fs.in == "" || err != nil) {
		if fs.in, err = guessInput(); err != nil {
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); err != nil || fs.out == "" {
		fs.out = config.DefaultOutput
	}

	fs.data, _ = cmd.Flags().GetString("data")

	return fs, config.New()
}

// guessInput returns the first fasta file in the current directory. Is used
// if the user hasn't specified an input file.
func guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext == ".fa" || ext == ".fasta" || ext == ".fna" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no fasta file found in %s", dir)
}

// readInput returns the record to analyze. A FASTA path takes precedence over
// a sequence passed as an argument.
func readInput(in string, args []string) (*seqio.Record, error) {
	if in != "" {
		return seqio.ReadRecord(in)
	}

	if len(args) > 0 {
		return &seqio.Record{
			ID:  "sequence",
			Seq: strings.ToUpper(strings.Join(args, "")),
		}, nil
	}

	return nil, fmt.Errorf("no input FASTA file or sequence passed")
}
