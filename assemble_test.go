/*
Copyright © 2019 the AirSea authors.
This file is part of AirSea.

AirSea is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AirSea is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AirSea.  If not, see <http://www.gnu.org/licenses/>.
*/

package airsea

import (
	"testing"

	"github.com/spatialmodel/airsea/bulk"
	"github.com/spatialmodel/airsea/thermo"
)

// TestAssembleZeroCoefficients checks that all assembled fluxes vanish
// when the solver returns zero transfer coefficients: the fluxes are
// strictly proportional to the coefficients.
func TestAssembleZeroCoefficients(t *testing.T) {
	in := validTestInput()
	s := &bulk.Output{
		Cd:    uniform(0),
		Ch:    uniform(0),
		Ce:    uniform(0),
		Theta: uniform(292),
		Q:     uniform(0.010),
		Wind:  uniform(5),
		Ts:    uniform(293),
		Qs:    uniform(0.014),
	}
	f := assemble(in, s, 10)
	for i := range f.QLatent.Elements {
		if f.QLatent.Elements[i] != 0 || f.QSensible.Elements[i] != 0 ||
			f.TauX.Elements[i] != 0 || f.TauY.Elements[i] != 0 {
			t.Fatalf("element %d: nonzero flux with zero transfer coefficients", i)
		}
	}
	if f.TSkin != nil {
		t.Error("skin temperature returned without being requested")
	}
}

// TestAssembleDensityCorrection checks the two-pass hydrostatic
// density correction: the pressure at the wind measurement height is
// below sea level pressure, so the corrected density must be smaller
// than the sea-level value, and the fluxes scale accordingly.
func TestAssembleDensityCorrection(t *testing.T) {
	const (
		θ  = 292.
		q  = 0.010
		p  = 101300.
		zu = 10.
	)
	in := validTestInput()
	s := &bulk.Output{
		Cd:    uniform(1.2e-3),
		Ch:    uniform(1.1e-3),
		Ce:    uniform(1.15e-3),
		Theta: uniform(θ),
		Q:     uniform(q),
		Wind:  uniform(5),
		Ts:    uniform(293),
		Qs:    uniform(0.014),
	}
	f := assemble(in, s, zu)

	ρ0 := thermo.AirDensity(θ, q, p)
	ρ := thermo.AirDensity(θ, q, p-ρ0*thermo.G*zu)
	if ρ >= ρ0 {
		t.Fatalf("corrected density %g not below sea-level density %g", ρ, ρ0)
	}
	want := 1.2e-3 * ρ * 5 * 5 // Cd*ρ*U*Ublk with U = (5,0)
	if got := f.TauX.Elements[0]; different(got, want, 1.e-12) {
		t.Errorf("TauX = %g; want %g", got, want)
	}
	if f.TauY.Elements[0] != 0 {
		t.Errorf("TauY = %g; want 0 for zero meridional wind", f.TauY.Elements[0])
	}
}

// TestAssembleSkinOutput checks that the requested skin temperature
// output is exactly the solver-returned surface temperature.
func TestAssembleSkinOutput(t *testing.T) {
	in := validTestInput()
	in.WantSkin = true
	s := &bulk.Output{
		Cd:    uniform(1.2e-3),
		Ch:    uniform(1.1e-3),
		Ce:    uniform(1.15e-3),
		Theta: uniform(292),
		Q:     uniform(0.010),
		Wind:  uniform(5),
		Ts:    uniform(292.7),
		Qs:    uniform(0.0138),
	}
	f := assemble(in, s, 10)
	if f.TSkin == nil {
		t.Fatal("skin temperature requested but not returned")
	}
	for i, v := range f.TSkin.Elements {
		if v != 292.7 {
			t.Fatalf("element %d: TSkin = %g; want 292.7", i, v)
		}
	}
}
