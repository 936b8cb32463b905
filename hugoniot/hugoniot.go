package hugoniot

import (
	"fmt"
	"math"
)

// EOS is the linear Us-Up Hugoniot relation for a single material:
//
//	Us(up) = C0 + S*up
//	P(up)  = Rho0 * Us(up) * up
//
// Units follow the usual shock-physics convention: Rho0 in g/cc, velocities
// in km/s, pressures in GPa. An EOS is constructed once and read-only after.
type EOS struct {
	Name string  `yaml:"Name"`
	Rho0 float64 `yaml:"Rho0"` // reference density (g/cc)
	C0   float64 `yaml:"C0"`   // bulk sound speed (km/s)
	S    float64 `yaml:"S"`    // Us-Up slope (dimensionless)
}

// InvalidMaterialError reports Hugoniot parameters that cannot describe a
// real material: the inverse solve needs Rho0 > 0 and C0 > 0.
type InvalidMaterialError struct {
	Name   string
	Reason string
}

func (e *InvalidMaterialError) Error() string {
	return fmt.Sprintf("invalid material %q: %s", e.Name, e.Reason)
}

// InvalidPressureError reports a pressure for which the inverse solve has no
// real root (negative discriminant). Index is the position within a slice
// solve, or -1 for a scalar solve.
type InvalidPressureError struct {
	Material     string
	P            float64
	Discriminant float64
	Index        int
}

func (e *InvalidPressureError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("material %q: no real particle velocity for P = %g (discriminant %g)",
			e.Material, e.P, e.Discriminant)
	}
	return fmt.Sprintf("material %q: no real particle velocity for P[%d] = %g (discriminant %g)",
		e.Material, e.Index, e.P, e.Discriminant)
}

// Validate checks the positivity constraints on the parameters. S is left
// unconstrained apart from the slope conventions of the relation itself.
func (eos EOS) Validate() error {
	if eos.Name == "" {
		return &InvalidMaterialError{Name: eos.Name, Reason: "name must not be empty"}
	}
	if eos.Rho0 <= 0 {
		return &InvalidMaterialError{Name: eos.Name,
			Reason: fmt.Sprintf("Rho0 must be positive, got %g", eos.Rho0)}
	}
	if eos.C0 <= 0 {
		return &InvalidMaterialError{Name: eos.Name,
			Reason: fmt.Sprintf("C0 must be positive, got %g", eos.C0)}
	}
	return nil
}

// ShockVelocity evaluates Us = C0 + S*up.
func (eos EOS) ShockVelocity(up float64) float64 {
	return eos.C0 + eos.S*up
}

// ShockVelocities is the element-wise form of ShockVelocity.
func (eos EOS) ShockVelocities(up []float64) []float64 {
	us := make([]float64, len(up))
	for i, u := range up {
		us[i] = eos.ShockVelocity(u)
	}
	return us
}

// Pressure evaluates P = Rho0 * Us(up) * up.
func (eos EOS) Pressure(up float64) float64 {
	return eos.Rho0 * eos.ShockVelocity(up) * up
}

// Pressures is the element-wise form of Pressure.
func (eos EOS) Pressures(up []float64) []float64 {
	p := make([]float64, len(up))
	for i, u := range up {
		p[i] = eos.Pressure(u)
	}
	return p
}

// ParticleVelocity solves P = Rho0*(C0 + S*up)*up for the positive root:
//
//	up = (-C0 + sqrt(C0^2 + 4*S*P/Rho0)) / (2*S)
//
// The S == 0 case degenerates to the linear solve up = P/(Rho0*C0) and must
// be taken separately to avoid the division by 2S. A negative discriminant
// (possible for P < 0 with S > 0) yields an InvalidPressureError rather
// than a silent NaN.
func (eos EOS) ParticleVelocity(p float64) (float64, error) {
	if eos.S == 0 {
		return p / (eos.Rho0 * eos.C0), nil
	}
	disc := eos.C0*eos.C0 + 4*eos.S*p/eos.Rho0
	if disc < 0 {
		return 0, &InvalidPressureError{Material: eos.Name, P: p, Discriminant: disc, Index: -1}
	}
	return (-eos.C0 + math.Sqrt(disc)) / (2 * eos.S), nil
}

// ParticleVelocities is the element-wise form of ParticleVelocity. On
// failure the returned InvalidPressureError identifies the failing index.
func (eos EOS) ParticleVelocities(p []float64) ([]float64, error) {
	up := make([]float64, len(p))
	for i, pk := range p {
		u, err := eos.ParticleVelocity(pk)
		if err != nil {
			if ipe, ok := err.(*InvalidPressureError); ok {
				ipe.Index = i
			}
			return nil, err
		}
		up[i] = u
	}
	return up, nil
}
