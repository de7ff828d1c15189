package bench

import (
	"bytes"
	"fmt"

	"github.com/0xPolygon/rsa-verifier/command/helper"
	"github.com/0xPolygon/rsa-verifier/verifier"
)

type FixtureResult struct {
	Name      string               `json:"name"`
	Responses []*verifier.Response `json:"responses"`
}

type BackendTotal struct {
	Backend string `json:"backend"`
	Valid   int    `json:"valid"`
	Invalid int    `json:"invalid"`
	Cost    uint64 `json:"cost"`
}

type BenchResult struct {
	RunID       string           `json:"run_id"`
	Fork        string           `json:"fork"`
	Fixtures    []*FixtureResult `json:"fixtures"`
	Totals      []*BackendTotal  `json:"totals"`
	MetricsFile string           `json:"metrics_file,omitempty"`
}

// newBenchResult aggregates the per backend totals of the fixture results
func newBenchResult(runID, fork string, fixtures []*FixtureResult) *BenchResult {
	totals := make([]*BackendTotal, 0, len(verifier.Backends()))
	index := map[string]*BackendTotal{}

	for _, name := range verifier.Backends() {
		total := &BackendTotal{Backend: name}
		totals = append(totals, total)
		index[name] = total
	}

	for _, f := range fixtures {
		for _, res := range f.Responses {
			total, ok := index[res.Backend]
			if !ok {
				continue
			}

			if res.Valid {
				total.Valid++
			} else {
				total.Invalid++
			}

			total.Cost += res.Cost
		}
	}

	return &BenchResult{
		RunID:    runID,
		Fork:     fork,
		Fixtures: fixtures,
		Totals:   totals,
	}
}

func (r *BenchResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[RSA VERIFICATION BENCHMARK]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Run ID|%s", r.RunID),
		fmt.Sprintf("Fork|%s", r.Fork),
		fmt.Sprintf("Fixtures|%d", len(r.Fixtures)),
	}))

	rows := []string{"Fixture|Backend|Valid|Cost"}

	for _, f := range r.Fixtures {
		for _, res := range f.Responses {
			rows = append(rows, fmt.Sprintf("%s|%s|%t|%d", f.Name, res.Backend, res.Valid, res.Cost))
		}
	}

	buffer.WriteString("\n\n[RESULTS]\n")
	buffer.WriteString(helper.FormatList(rows))

	totals := []string{"Backend|Valid|Invalid|Total cost"}

	for _, t := range r.Totals {
		totals = append(totals, fmt.Sprintf("%s|%d|%d|%d", t.Backend, t.Valid, t.Invalid, t.Cost))
	}

	buffer.WriteString("\n\n[TOTALS]\n")
	buffer.WriteString(helper.FormatList(totals))

	if r.MetricsFile != "" {
		buffer.WriteString("\n\n")
		buffer.WriteString(helper.FormatKV([]string{
			fmt.Sprintf("Metrics file|%s", r.MetricsFile),
		}))
	}

	buffer.WriteString("\n")

	return buffer.String()
}
