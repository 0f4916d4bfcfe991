package test

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/jjtimmons/gcplot/config"
	"github.com/jjtimmons/gcplot/internal/gcplot"
	"github.com/spf13/viper"
)

func Test_Profile(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("settings", path.Join("input", "settings.yaml"))

	conf, err := config.Load(v)
	if err != nil {
		t.Fatal(err)
	}

	type testFlags struct {
		in   string
		out  string
		data string
	}

	dir := t.TempDir()
	tests := []testFlags{
		{
			path.Join("input", "gc_island.fa"),
			filepath.Join(dir, "gc_island.png"),
			filepath.Join(dir, "gc_island.json"),
		},
		{
			path.Join("input", "lowercase.fa"),
			filepath.Join(dir, "lowercase.svg"),
			filepath.Join(dir, "lowercase.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, err := gcplot.Profile(gcplot.NewFlags(tt.in, tt.out, tt.data), conf)
			if err != nil {
				t.Fatal(err)
			}

			if _, err := os.Stat(tt.out); err != nil {
				t.Errorf("failed to write plot: %v", err)
			}

			data, err := os.ReadFile(tt.data)
			if err != nil {
				t.Fatal(err)
			}

			var written gcplot.Output
			if err = json.Unmarshal(data, &written); err != nil {
				t.Fatal(err)
			}

			if written.Window != 10 || written.Step != 10 {
				t.Errorf("settings not used, window=%d step=%d", written.Window, written.Step)
			}

			if len(written.Samples) != len(out.Samples) {
				t.Errorf("wrote %d samples, want %d", len(written.Samples), len(out.Samples))
			}

			for i, s := range written.Samples {
				if s.Position != i*10 || s.Position >= written.Length-10 {
					t.Errorf("sample %d at unexpected position %d", i, s.Position)
				}
			}
		})
	}
}
