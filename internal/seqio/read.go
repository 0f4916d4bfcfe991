// Package seqio is for reading the target sequence record from a FASTA file
package seqio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrNoRecords is returned when a file has no FASTA records
	ErrNoRecords = errors.New("no FASTA records found")

	// ErrMultipleRecords is returned when a file has more than one FASTA record
	ErrMultipleRecords = errors.New("more than one FASTA record found")
)

// Record is a single named sequence.
type Record struct {
	// ID is the first word of the header. In ">NC_000913.3 E. coli" it's "NC_000913.3"
	ID string

	// Desc is the rest of the header after the ID
	Desc string

	// Seq is the uppercase sequence
	Seq string
}

// ReadRecord reads the single FASTA record in the file at path.
func ReadRecord(path string) (*Record, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %v", err)
		}
		path = abs
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := ReadSequence(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return rec, nil
}

// ReadSequence reads exactly one FASTA record from r. It errors if r has
// no records or more than one.
func ReadSequence(r io.Reader) (*Record, error) {
	template := linear.NewSeq("", nil, alphabet.DNA)
	in := fasta.NewReader(r, template)

	s, err := in.Read()
	if err == io.EOF {
		return nil, ErrNoRecords
	} else if err != nil {
		return nil, err
	}

	if _, err = in.Read(); err == nil {
		return nil, ErrMultipleRecords
	} else if err != io.EOF {
		return nil, err
	}

	l, ok := s.(*linear.Seq)
	if !ok {
		return nil, fmt.Errorf("unexpected sequence type %T", s)
	}

	return &Record{
		ID:   l.ID,
		Desc: l.Desc,
		Seq:  string(bytes.ToUpper(alphabet.LettersToBytes(l.Seq))),
	}, nil
}
