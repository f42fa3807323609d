// Package profile is a cycle-accounting diagnostic: it records a
// histogram of machine-cycles-per-instruction over a run and renders it
// to a PNG with gonum.org/v1/plot, exercising the cycle-synchronized
// accounting that is the hard engineering of the core.
package profile

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Recorder accumulates one sample per CPU step: the machine-cycle cost
// that step consumed.
type Recorder struct {
	samples []uint8
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe records cycles, the cost returned by one CPU.Step call.
func (r *Recorder) Observe(cycles uint8) {
	r.samples = append(r.samples, cycles)
}

// Histogram buckets the recorded samples by cycle count, 1 through the
// largest observed instruction cost.
func (r *Recorder) Histogram() map[uint8]int {
	counts := make(map[uint8]int)
	for _, s := range r.samples {
		counts[s]++
	}
	return counts
}

// SavePNG renders the recorded histogram to path at the given
// dimensions.
func (r *Recorder) SavePNG(path string, width, height vg.Length) error {
	counts := r.Histogram()

	var max uint8
	for cycles := range counts {
		if cycles > max {
			max = cycles
		}
	}

	values := make(plotter.Values, 0, max+1)
	for cycles := uint8(0); cycles <= max; cycles++ {
		values = append(values, float64(counts[cycles]))
	}

	p := plot.New()
	p.Title.Text = "Machine cycles per instruction"
	p.X.Label.Text = "cycles"
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(values, width/vg.Length(2*len(values)))
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	p.Add(bars)

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("profile: save %s: %w", path, err)
	}
	return nil
}
