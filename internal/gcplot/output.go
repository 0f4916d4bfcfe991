package gcplot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jjtimmons/gcplot/internal/gc"
)

// Output is a GC content profile of a sequence, as written to a JSON file.
type Output struct {
	// Target's name. In >example_CDS FASTA its "example_CDS"
	Target string `json:"target"`

	// Length of the target sequence in bp
	Length int `json:"length"`

	// GC content of the whole target sequence
	GC float64 `json:"gc"`

	// Window length in bp
	Window int `json:"window"`

	// Step length in bp
	Step int `json:"step"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Samples is the GC content of each window
	Samples []gc.Sample `json:"samples"`
}

// writeJSON serializes the output and writes it to the filename requested.
func writeJSON(filename string, out *Output) (data []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	out.Time = fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	data, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return data, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, data, 0666); err != nil {
		return data, fmt.Errorf("failed to write the output: %v", err)
	}

	return data, nil
}
