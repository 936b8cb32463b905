package hugoniot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroPoint(t *testing.T) {
	eos := EOS{Name: "Copper", Rho0: 8.93, C0: 4.27, S: 1.413}
	assert.Equal(t, eos.C0, eos.ShockVelocity(0))
	assert.Equal(t, 0., eos.Pressure(0))
	up, err := eos.ParticleVelocity(0)
	require.NoError(t, err)
	assert.Equal(t, 0., up)
}

func TestCopperPressure(t *testing.T) {
	// P(1.0) = 8.93 * (4.27 + 1.413) * 1.0
	eos := EOS{Name: "Copper", Rho0: 8.93, C0: 4.27, S: 1.413}
	p := eos.Pressure(1.0)
	assert.InDelta(t, 50.749, p, 0.01)
	up, err := eos.ParticleVelocity(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, up, 1e-10)
}

func TestRoundTrip(t *testing.T) {
	cases := []EOS{
		{Name: "Copper", Rho0: 8.93, C0: 3.94, S: 1.489},
		{Name: "PMMA", Rho0: 1.186, C0: 2.598, S: 1.516},
		{Name: "Water", Rho0: 0.998, C0: 1.647, S: 1.921},
	}
	for _, eos := range cases {
		for up := 0.; up <= 6.; up += 0.25 {
			got, err := eos.ParticleVelocity(eos.Pressure(up))
			require.NoError(t, err)
			if up == 0 {
				assert.InDelta(t, up, got, 1e-12)
				continue
			}
			assert.InEpsilon(t, up, got, 1e-8, "material %s up %g", eos.Name, up)
		}
	}
}

func TestRoundTripZeroSlope(t *testing.T) {
	// S == 0 takes the linear branch of the inverse solve
	eos := EOS{Name: "constUs", Rho0: 2.0, C0: 3.0, S: 0}
	for _, up := range []float64{0, 0.5, 1.0, 4.0} {
		got, err := eos.ParticleVelocity(eos.Pressure(up))
		require.NoError(t, err)
		assert.InDelta(t, up, got, 1e-12)
	}
}

func TestNegativePressure(t *testing.T) {
	eos := EOS{Name: "unit", Rho0: 1.0, C0: 1.0, S: 1.5}
	_, err := eos.ParticleVelocity(-5.0)
	require.Error(t, err)
	ipe, ok := err.(*InvalidPressureError)
	require.True(t, ok)
	assert.Equal(t, -5.0, ipe.P)
	assert.True(t, ipe.Discriminant < 0)
	assert.Equal(t, -1, ipe.Index)

	// slice form reports the failing index
	_, err = eos.ParticleVelocities([]float64{0, 1, -5.0, 2})
	require.Error(t, err)
	ipe, ok = err.(*InvalidPressureError)
	require.True(t, ok)
	assert.Equal(t, 2, ipe.Index)
}

func TestElementwiseForms(t *testing.T) {
	eos := EOS{Name: "Aluminum", Rho0: 2.703, C0: 5.24, S: 1.40}
	up := []float64{0, 0.5, 1, 2}
	us := eos.ShockVelocities(up)
	p := eos.Pressures(up)
	require.Len(t, us, len(up))
	require.Len(t, p, len(up))
	for i := range up {
		assert.Equal(t, eos.ShockVelocity(up[i]), us[i])
		assert.Equal(t, eos.Pressure(up[i]), p[i])
	}
	back, err := eos.ParticleVelocities(p)
	require.NoError(t, err)
	for i := range up {
		assert.InDelta(t, up[i], back[i], 1e-10)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, EOS{Name: "ok", Rho0: 1, C0: 1, S: 0}.Validate())
	for _, bad := range []EOS{
		{Name: "", Rho0: 1, C0: 1},
		{Name: "noRho", Rho0: 0, C0: 1},
		{Name: "negRho", Rho0: -2, C0: 1},
		{Name: "noC0", Rho0: 1, C0: 0},
	} {
		err := bad.Validate()
		require.Error(t, err)
		_, ok := err.(*InvalidMaterialError)
		assert.True(t, ok)
	}
}

func TestPressureMonotonic(t *testing.T) {
	eos := EOS{Name: "Iron", Rho0: 7.85, C0: 3.57, S: 1.92}
	prev := math.Inf(-1)
	for up := 0.; up <= 8.; up += 0.1 {
		p := eos.Pressure(up)
		assert.True(t, p > prev)
		prev = p
	}
}
