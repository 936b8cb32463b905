// Package graphics builds the two standard diagnostic traces for a
// mixture computation (P vs Up, Us vs Up) and displays them through the
// avs chart2d live plotter.
package graphics

import (
	"sync"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/shockphys/goshock/hugoniot"
	"github.com/shockphys/goshock/mixture"
)

// Trace holds aligned particle-velocity, pressure and shock-velocity
// samples for one material or mixture.
type Trace struct {
	Name      string
	Up, P, Us []float64
}

// Forward evaluates a Hugoniot over its own particle-velocity samples.
func Forward(eos hugoniot.EOS, up []float64) Trace {
	return Trace{
		Name: eos.Name,
		Up:   append([]float64(nil), up...),
		P:    eos.Pressures(up),
		Us:   eos.ShockVelocities(up),
	}
}

// Inverse evaluates a Hugoniot at a common pressure frame, solving for the
// particle velocity at each pressure sample.
func Inverse(eos hugoniot.EOS, p []float64) (Trace, error) {
	up, err := eos.ParticleVelocities(p)
	if err != nil {
		return Trace{}, err
	}
	return Trace{
		Name: eos.Name,
		Up:   up,
		P:    append([]float64(nil), p...),
		Us:   eos.ShockVelocities(up),
	}, nil
}

// MixtureTraces produces one trace per component plus one for the derived
// mixture, all sharing the first component's pressure frame so the curves
// are directly comparable point by point.
func MixtureTraces(mix *mixture.Mixed, components []mixture.Component, refUp []float64) ([]Trace, error) {
	if len(components) == 0 {
		return nil, &mixture.InvalidMixtureError{Reason: "no components"}
	}
	traces := make([]Trace, 0, len(components)+1)
	traces = append(traces, Forward(components[0].EOS, refUp))
	P := traces[0].P
	for _, c := range components[1:] {
		tr, err := Inverse(c.EOS, P)
		if err != nil {
			return nil, err
		}
		traces = append(traces, tr)
	}
	mtr, err := Inverse(mix.EOS, P)
	if err != nil {
		return nil, err
	}
	traces = append(traces, mtr)
	return traces, nil
}

var (
	plotOnce sync.Once
	pChart   *chart2d.Chart2D
	usChart  *chart2d.Chart2D
	colorMap *utils2.ColorMap
)

// Plot opens the P-Up and Us-Up charts and adds one series per trace. The
// charts run in their own goroutines; the caller decides how long the
// process stays alive to view them.
func Plot(traces []Trace) {
	var (
		upMin, upMax = bounds(traces, func(tr Trace) []float64 { return tr.Up })
		pMin, pMax   = bounds(traces, func(tr Trace) []float64 { return tr.P })
		usMin, usMax = bounds(traces, func(tr Trace) []float64 { return tr.Us })
	)
	plotOnce.Do(func() {
		pChart = chart2d.NewChart2D(1024, 768, float32(upMin), float32(upMax), float32(pMin), float32(pMax))
		usChart = chart2d.NewChart2D(1024, 768, float32(upMin), float32(upMax), float32(usMin), float32(usMax))
		colorMap = utils2.NewColorMap(-1, 1, 1)
		go pChart.Plot()
		go usChart.Plot()
	})
	for i, tr := range traces {
		color := colorSpread(i, len(traces))
		if err := pChart.AddSeries(tr.Name+" P", tr.Up, tr.P,
			chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
		if err := usChart.AddSeries(tr.Name+" Us", tr.Up, tr.Us,
			chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
}

func colorSpread(i, n int) float32 {
	if n < 2 {
		return 0
	}
	return -1 + 2*float32(i)/float32(n-1)
}

func bounds(traces []Trace, field func(Trace) []float64) (min, max float64) {
	first := true
	for _, tr := range traces {
		for _, v := range field(tr) {
			if first {
				min, max = v, v
				first = false
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return
}
