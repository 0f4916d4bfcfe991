package gc

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestContent(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     float64
	}{
		{
			"empty fragment",
			"",
			0,
		},
		{
			"G homopolymer",
			"GGGGGG",
			100,
		},
		{
			"C homopolymer",
			"C",
			100,
		},
		{
			"no G or C",
			"ATTATANNA",
			0,
		},
		{
			"half GC",
			"GCAT",
			50,
		},
		{
			"lowercase is not counted",
			"gcGC",
			50,
		},
		{
			"ambiguity codes are not counted",
			"SSGC",
			50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Content(tt.fragment); got != tt.want {
				t.Errorf("Content(%q) = %v, want %v", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestContent_bounds(t *testing.T) {
	fragments := []string{"", "A", "G", "ACGT", "GGGCCCAAAT", "NNNN", strings.Repeat("GATTACA", 50)}

	for _, f := range fragments {
		if got := Content(f); got < 0 || got > 100 {
			t.Errorf("Content(%q) = %v, out of [0, 100]", f, got)
		}
	}
}

// reordering bases in a fragment shouldn't change its GC content
func TestContent_orderInvariant(t *testing.T) {
	pairs := [][2]string{
		{"GCAT", "TACG"},
		{"GGGAAATTC", "CTTAGAGAG"},
		{"ACGTACGTAA", "AAAACCGGTT"},
	}

	for _, p := range pairs {
		if a, b := Content(p[0]), Content(p[1]); a != b {
			t.Errorf("Content(%q) = %v, Content(%q) = %v", p[0], a, p[1], b)
		}
	}
}

func TestProfile(t *testing.T) {
	type args struct {
		seq    string
		window int
		step   int
	}
	tests := []struct {
		name string
		args args
		want []Sample
	}{
		{
			"two windows, last eligible window skipped",
			args{"GCGCATATGCGC", 4, 4},
			[]Sample{
				{Position: 0, GC: 100},
				{Position: 4, GC: 0},
			},
		},
		{
			"window equal to sequence length",
			args{"ATAT", 4, 1},
			[]Sample{},
		},
		{
			"window longer than sequence",
			args{"ATAT", 10, 1},
			[]Sample{},
		},
		{
			"empty sequence",
			args{"", 3, 2},
			[]Sample{},
		},
		{
			"overlapping windows",
			args{"GGAATT", 2, 1},
			[]Sample{
				{Position: 0, GC: 100},
				{Position: 1, GC: 50},
				{Position: 2, GC: 0},
				{Position: 3, GC: 0},
			},
		},
		{
			"step larger than window",
			args{"GCATGCATGCAT", 2, 5},
			[]Sample{
				{Position: 0, GC: 100},
				{Position: 5, GC: 50},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Profile(tt.args.seq, tt.args.window, tt.args.step)
			if err != nil {
				t.Fatalf("Profile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Profile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfile_positions(t *testing.T) {
	seq := strings.Repeat("ATGCGCTA", 40)
	window, step := 20, 7

	samples, err := Profile(seq, window, step)
	if err != nil {
		t.Fatal(err)
	}

	if len(samples) == 0 {
		t.Fatal("no samples")
	}

	for i, s := range samples {
		if s.Position != i*step {
			t.Errorf("sample %d at %d, want %d", i, s.Position, i*step)
		}
		if s.Position >= len(seq)-window {
			t.Errorf("sample %d at %d, past bound %d", i, s.Position, len(seq)-window)
		}
	}

	// the next offset would have been at or past the bound
	if next := len(samples) * step; next < len(seq)-window {
		t.Errorf("stopped early, next offset %d < %d", next, len(seq)-window)
	}
}

func TestProfile_idempotent(t *testing.T) {
	seq := "GGCATTACCAGGATTACAGCGCGTATATAT"

	a, errA := Profile(seq, 5, 2)
	b, errB := Profile(seq, 5, 2)
	if errA != nil || errB != nil {
		t.Fatal(errA, errB)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Profile not idempotent: %v != %v", a, b)
	}
}

func TestProfile_invalid(t *testing.T) {
	tests := []struct {
		name   string
		window int
		step   int
	}{
		{"zero step", 4, 0},
		{"negative step", 4, -2},
		{"zero window", 0, 1},
		{"negative window", -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Profile("GCGCATATGCGC", tt.window, tt.step)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("Profile() error = %v, want ErrInvalidWindow", err)
			}
			if got != nil {
				t.Errorf("Profile() = %v, want nil", got)
			}
		})
	}
}
