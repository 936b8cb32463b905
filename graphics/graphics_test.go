package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/shockphys/goshock/hugoniot"
	"github.com/shockphys/goshock/mixture"
)

func TestForwardInverseAgree(t *testing.T) {
	eos := hugoniot.EOS{Name: "Copper", Rho0: 8.93, C0: 3.94, S: 1.489}
	up := floats.Span(make([]float64, 20), 0, 4)
	fwd := Forward(eos, up)
	inv, err := Inverse(eos, fwd.P)
	require.NoError(t, err)
	for i := range up {
		assert.InDelta(t, fwd.Up[i], inv.Up[i], 1e-9)
		assert.InDelta(t, fwd.Us[i], inv.Us[i], 1e-9)
	}
}

func TestMixtureTraces(t *testing.T) {
	comps := []mixture.Component{
		{EOS: hugoniot.EOS{Name: "Copper", Rho0: 8.93, C0: 3.94, S: 1.489}, VolumeFraction: 0.4},
		{EOS: hugoniot.EOS{Name: "PMMA", Rho0: 1.186, C0: 2.598, S: 1.516}, VolumeFraction: 0.6},
	}
	up := floats.Span(make([]float64, 50), 0, 4)
	mix, err := mixture.Mix("CuPMMA", comps, up)
	require.NoError(t, err)

	traces, err := MixtureTraces(mix, comps, up)
	require.NoError(t, err)
	require.Len(t, traces, 3)
	assert.Equal(t, "Copper", traces[0].Name)
	assert.Equal(t, "PMMA", traces[1].Name)
	assert.Equal(t, "CuPMMA", traces[2].Name)

	// all traces share the first component's pressure frame
	for _, tr := range traces[1:] {
		require.Len(t, tr.P, len(traces[0].P))
		for i := range tr.P {
			assert.Equal(t, traces[0].P[i], tr.P[i])
		}
	}
	// the softer component needs a higher particle velocity to reach the
	// same pressure
	last := len(up) - 1
	assert.True(t, traces[1].Up[last] > traces[0].Up[last])
}

func TestTraceDoesNotAliasInput(t *testing.T) {
	eos := hugoniot.EOS{Name: "Iron", Rho0: 7.85, C0: 3.57, S: 1.92}
	up := []float64{0, 1, 2}
	tr := Forward(eos, up)
	tr.Up[0] = 99
	assert.Equal(t, 0., up[0])
}
