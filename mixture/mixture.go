// Package mixture derives an effective linear Us-Up Hugoniot for a
// volume-fraction mixture of materials, assuming pressure equilibrium
// across the components at each sample state.
package mixture

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/shockphys/goshock/hugoniot"
)

const (
	// VolumeSumTol bounds |sum(volume fractions) - 1| for a valid mixture.
	VolumeSumTol = 1e-6
	// upEps excludes near-zero mixed particle velocities from the Us fit,
	// where Us = P/(rho*up) blows up.
	upEps = 1e-9
)

// Component pairs a material EOS with its volume fraction in the mixture.
type Component struct {
	EOS            hugoniot.EOS
	VolumeFraction float64
}

// Mixed is the derived mixture EOS. Components, VolumeFractions and
// MassFractions are index-aligned in input order. Degraded marks the
// regression fallback of Mix (fewer than two usable fit points).
type Mixed struct {
	hugoniot.EOS
	Components      []string
	VolumeFractions []float64
	MassFractions   []float64
	Degraded        bool
}

// InvalidMixtureError reports a component list that violates the mixture
// preconditions before any numerical work is done.
type InvalidMixtureError struct {
	Reason string
}

func (e *InvalidMixtureError) Error() string {
	return "invalid mixture: " + e.Reason
}

// Mix derives the effective Hugoniot of the named mixture over refUp, an
// ordered slice of particle-velocity sample points.
//
// The first component defines the common pressure frame: P = P_0(refUp),
// and every other component's particle-velocity trace is obtained by
// inverting its own Hugoniot at those pressures. Reordering components
// therefore shifts (C0, S) of the result slightly; the mixture density is
// order-invariant. The mixed particle velocity at each sample is the
// mass-fraction-weighted quadratic mean of the component traces, and
// (C0, S) come from an ordinary least-squares fit of Us = P/(rho_mix*up)
// against up over the samples with up > 0.
//
// Mix never mutates refUp or components.
func Mix(name string, components []Component, refUp []float64) (*Mixed, error) {
	if len(components) == 0 {
		return nil, &InvalidMixtureError{Reason: "no components"}
	}
	var vfSum float64
	for _, c := range components {
		vfSum += c.VolumeFraction
	}
	if math.Abs(vfSum-1) > VolumeSumTol {
		return nil, &InvalidMixtureError{
			Reason: fmt.Sprintf("volume fractions must sum to 1, got %g", vfSum)}
	}

	// Common pressure frame from the first component
	first := components[0].EOS
	P := first.Pressures(refUp)
	upTraces := make([][]float64, len(components))
	upTraces[0] = refUp
	for i, c := range components[1:] {
		up, err := c.EOS.ParticleVelocities(P)
		if err != nil {
			return nil, err
		}
		upTraces[i+1] = up
	}

	// Mass accounting. The volume fractions sum to 1, so the
	// volume-weighted mean density collapses to the plain mass sum.
	names := make([]string, len(components))
	vfs := make([]float64, len(components))
	masses := make([]float64, len(components))
	var totalMass float64
	for i, c := range components {
		names[i] = c.EOS.Name
		vfs[i] = c.VolumeFraction
		masses[i] = c.EOS.Rho0 * c.VolumeFraction
		totalMass += masses[i]
	}
	if totalMass == 0 {
		return nil, &InvalidMixtureError{Reason: "total mass is zero"}
	}
	rhoMix := totalMass
	massFracs := make([]float64, len(components))
	for i, m := range masses {
		massFracs[i] = m / totalMass
	}

	// Mass-weighted quadratic mean of the component particle velocities
	mixedUp := make([]float64, len(refUp))
	for k := range refUp {
		var sum float64
		for i := range components {
			u := upTraces[i][k]
			sum += massFracs[i] * u * u
		}
		mixedUp[k] = math.Sqrt(sum)
	}

	// Us-Up fit over the samples where Us = P/(rho*up) is defined
	fitUp := make([]float64, 0, len(mixedUp))
	fitUs := make([]float64, 0, len(mixedUp))
	for k, u := range mixedUp {
		if u <= upEps {
			continue
		}
		fitUp = append(fitUp, u)
		fitUs = append(fitUs, P[k]/(rhoMix*u))
	}
	var c0Mix, sMix float64
	degraded := false
	if len(fitUp) < 2 {
		c0Mix, sMix = first.C0, 0
		degraded = true
		fmt.Printf("warning: mixture %q: %d usable fit points, falling back to C0 = %g, S = 0\n",
			name, len(fitUp), c0Mix)
	} else {
		c0Mix, sMix = stat.LinearRegression(fitUp, fitUs, nil, false)
	}

	return &Mixed{
		EOS: hugoniot.EOS{
			Name: name,
			Rho0: rhoMix,
			C0:   c0Mix,
			S:    sMix,
		},
		Components:      names,
		VolumeFractions: vfs,
		MassFractions:   massFracs,
		Degraded:        degraded,
	}, nil
}

// Print writes a human-readable report of the derived mixture.
func (m *Mixed) Print() {
	fmt.Printf("\"%s\"\t\t= Mixture\n", m.Name)
	fmt.Printf("%8.5f\t\t= Rho0 (g/cc)\n", m.Rho0)
	fmt.Printf("%8.5f\t\t= C0 (km/s)\n", m.C0)
	fmt.Printf("%8.5f\t\t= S\n", m.S)
	for i, name := range m.Components {
		fmt.Printf("[%s]\tvfrac = %6.4f\tmfrac = %6.4f\n",
			name, m.VolumeFractions[i], m.MassFractions[i])
	}
	if m.Degraded {
		fmt.Printf("NOTE: fit degraded, too few usable sample points\n")
	}
}
