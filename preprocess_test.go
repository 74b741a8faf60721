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
	"math"
	"testing"

	"github.com/spatialmodel/airsea/thermo"
)

func TestScalarWindSpeed(t *testing.T) {
	const tolerance = 1.e-12
	u := uniform(0)
	v := uniform(0)
	u.Elements[0], v.Elements[0] = 3, 4
	u.Elements[1], v.Elements[1] = -3, 4
	u.Elements[2] = -7

	s := scalarWindSpeed(u, v)
	if math.Abs(s.Elements[0]-5) > tolerance {
		t.Errorf("|(3,4)| = %g; want 5", s.Elements[0])
	}
	if math.Abs(s.Elements[1]-5) > tolerance {
		t.Errorf("|(-3,4)| = %g; want 5", s.Elements[1])
	}
	if math.Abs(s.Elements[2]-7) > tolerance {
		t.Errorf("|(-7,0)| = %g; want 7", s.Elements[2])
	}
	// Speed is zero if and only if both components are zero.
	for i := 3; i < len(s.Elements); i++ {
		if s.Elements[i] != 0 {
			t.Errorf("|(0,0)| = %g; want 0", s.Elements[i])
		}
	}
}

// TestSurfaceSatHumidity checks the exact multiplicative salinity
// reduction of the surface saturation humidity.
func TestSurfaceSatHumidity(t *testing.T) {
	sst := uniform(293)
	sst.Elements[3] = 301
	p := uniform(101300)
	p.Elements[3] = 99000

	qs := surfaceSatHumidity(sst, p)
	for i := range qs.Elements {
		want := 0.98 * thermo.SatSpecHum(sst.Elements[i], p.Elements[i])
		if qs.Elements[i] != want {
			t.Errorf("element %d: qs = %g; want exactly %g", i, qs.Elements[i], want)
		}
	}
}

func TestPotentialTemperature(t *testing.T) {
	const zt = 10.
	ta := uniform(292)
	qa := uniform(0.010)
	θ := potentialTemperature(ta, qa, zt)

	// The potential temperature must exceed the in-situ temperature by
	// the moist adiabatic increase over zt, which is below the dry
	// adiabatic increase.
	dθ := θ.Elements[0] - 292
	γDry := thermo.G / thermo.CpDry
	if dθ <= 0 || dθ > γDry*zt {
		t.Errorf("θ-T = %g; want in (0, %g)", dθ, γDry*zt)
	}
	want := 292 + thermo.MoistLapseRate(292, 0.010)*zt
	if θ.Elements[0] != want {
		t.Errorf("θ = %g; want %g", θ.Elements[0], want)
	}
}
