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

package bulk

import (
	"math"
	"testing"

	"github.com/ctessum/sparse"

	"github.com/spatialmodel/airsea/thermo"
)

// uniform returns a 2x3 grid filled with val.
func uniform(val float64) *sparse.DenseArray {
	a := sparse.ZerosDense(2, 3)
	for i := range a.Elements {
		a.Elements[i] = val
	}
	return a
}

// testInput returns a mid-latitude open-ocean test case: a sea surface
// slightly warmer than the overlying air, with unsaturated air.
func testInput(wind float64) *Input {
	const (
		sst = 293.
		p   = 101300.
	)
	qs := 0.98 * thermo.SatSpecHum(sst, p)
	return &Input{
		Zt:    2,
		Zu:    10,
		Ts:    uniform(sst),
		Qs:    uniform(qs),
		Theta: uniform(292.01),
		Q:     uniform(0.010),
		Wind:  uniform(wind),
	}
}

func TestForName(t *testing.T) {
	cases := []struct {
		id   string
		name string
		skin bool
	}{
		{"coare", "coare", true},
		{"COARE", "coare", true},
		{" Coare35 ", "coare35", true},
		{"ncar", "ncar", false},
		{"NCAR", "ncar", false},
		{"Ecmwf", "ecmwf", true},
	}
	for _, c := range cases {
		s, err := ForName(c.id)
		if err != nil {
			t.Fatalf("ForName(%q): %v", c.id, err)
		}
		if s.Name() != c.name {
			t.Errorf("ForName(%q).Name() = %q; want %q", c.id, s.Name(), c.name)
		}
		if s.SupportsSkin() != c.skin {
			t.Errorf("ForName(%q).SupportsSkin() = %v; want %v", c.id, s.SupportsSkin(), c.skin)
		}
	}
	if _, err := ForName("coare4"); err == nil {
		t.Error("ForName(\"coare4\") should fail")
	}
	if _, err := ForName(""); err == nil {
		t.Error("ForName(\"\") should fail")
	}
}

// TestNamesTotal checks that every listed identifier resolves.
func TestNamesTotal(t *testing.T) {
	for _, name := range Names() {
		s, err := ForName(name)
		if err != nil {
			t.Errorf("ForName(%q): %v", name, err)
			continue
		}
		if s.Name() != name {
			t.Errorf("ForName(%q).Name() = %q", name, s.Name())
		}
	}
}

// TestSolverOutputs runs each solver on a moderate-wind open-ocean
// case and checks that the outputs are finite and physically
// plausible: transfer coefficients of order 1e-3, a bulk wind speed at
// least as large as the mean wind, and a humidity deficit preserved at
// the wind measurement height.
func TestSolverOutputs(t *testing.T) {
	for _, name := range Names() {
		s, err := ForName(name)
		if err != nil {
			t.Fatal(err)
		}
		in := testInput(7)
		out, err := s.Solve(in)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, a := range []*sparse.DenseArray{out.Cd, out.Ch, out.Ce, out.Theta, out.Q, out.Wind, out.Ts, out.Qs} {
			for i, v := range a.Elements {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s: non-finite output %g at element %d", name, v, i)
				}
			}
		}
		for _, c := range []struct {
			label string
			val   float64
		}{
			{"Cd", out.Cd.Elements[0]},
			{"Ch", out.Ch.Elements[0]},
			{"Ce", out.Ce.Elements[0]},
		} {
			if c.val < 5.e-4 || c.val > 3.e-3 {
				t.Errorf("%s: %s = %g; want order 1e-3", name, c.label, c.val)
			}
		}
		if ub := out.Wind.Elements[0]; ub < 7 {
			t.Errorf("%s: bulk wind %g less than mean wind", name, ub)
		}
		if out.Q.Elements[0] >= out.Qs.Elements[0] {
			t.Errorf("%s: no humidity deficit at wind measurement height", name)
		}
		// Without the skin correction the surface state must pass
		// through unmodified.
		if out.Ts.Elements[0] != in.Ts.Elements[0] || out.Qs.Elements[0] != in.Qs.Elements[0] {
			t.Errorf("%s: surface state modified without skin correction", name)
		}
	}
}

// TestCalmWind checks that the bulk wind speed keeps a positive floor
// in dead calm.
func TestCalmWind(t *testing.T) {
	for _, name := range Names() {
		s, err := ForName(name)
		if err != nil {
			t.Fatal(err)
		}
		out, err := s.Solve(testInput(0))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if ub := out.Wind.Elements[0]; !(ub > 0) {
			t.Errorf("%s: bulk wind %g in calm conditions; want > 0", name, ub)
		}
		if cd := out.Cd.Elements[0]; math.IsNaN(cd) || cd <= 0 {
			t.Errorf("%s: Cd = %g in calm conditions", name, cd)
		}
	}
}

// TestCoolSkinCooling checks that under nighttime radiative cooling
// the skin-capable solvers return a skin temperature below the bulk
// sea surface temperature, with the surface humidity kept consistent
// with it.
func TestCoolSkinCooling(t *testing.T) {
	const p = 101300.
	for _, name := range []string{"coare", "coare35", "ecmwf"} {
		s, err := ForName(name)
		if err != nil {
			t.Fatal(err)
		}
		in := testInput(3)
		in.Skin = true
		in.SWDown = uniform(0)
		in.LWDown = uniform(350)
		in.P = uniform(p)
		out, err := s.Solve(in)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		ts := out.Ts.Elements[0]
		if ts >= in.Ts.Elements[0] {
			t.Errorf("%s: skin temperature %g not cooler than bulk %g", name, ts, in.Ts.Elements[0])
		}
		if in.Ts.Elements[0]-ts > 1 {
			t.Errorf("%s: cool-skin correction %g K too large", name, in.Ts.Elements[0]-ts)
		}
		want := 0.98 * thermo.SatSpecHum(ts, p)
		if qs := out.Qs.Elements[0]; math.Abs(qs-want) > 1.e-12 {
			t.Errorf("%s: skin humidity %g inconsistent with skin temperature (want %g)", name, qs, want)
		}
		// The input surface state must not have been touched.
		if in.Ts.Elements[0] != 293 {
			t.Errorf("%s: input surface temperature mutated", name)
		}
	}
}

// TestStabilityFunctions checks the limiting behavior of the profile
// functions: zero at neutral (within the tolerance of the published
// COARE fit), positive when unstable, negative when stable.
func TestStabilityFunctions(t *testing.T) {
	funcs := []struct {
		label string
		f     func(float64) float64
	}{
		{"psiMCOARE", psiMCOARE},
		{"psiHCOARE", psiHCOARE},
		{"psiMNCAR", psiMNCAR},
		{"psiHNCAR", psiHNCAR},
		{"psiMECMWF", psiMECMWF},
		{"psiHECMWF", psiHECMWF},
	}
	for _, fc := range funcs {
		if v := fc.f(0); math.Abs(v) > 0.01 {
			t.Errorf("%s(0) = %g; want ~0", fc.label, v)
		}
		if v := fc.f(-1); v <= 0 {
			t.Errorf("%s(-1) = %g; want > 0", fc.label, v)
		}
		if v := fc.f(1); v >= 0 {
			t.Errorf("%s(1) = %g; want < 0", fc.label, v)
		}
	}
}

// TestObukhovSign checks that the Obukhov length is negative in
// unstable conditions and positive in stable conditions.
func TestObukhovSign(t *testing.T) {
	if l := obukhov(0.3, 290, -0.05); l >= 0 {
		t.Errorf("unstable Obukhov length %g; want < 0", l)
	}
	if l := obukhov(0.3, 290, 0.05); l <= 0 {
		t.Errorf("stable Obukhov length %g; want > 0", l)
	}
	// The neutral limit must stay finite.
	if l := obukhov(0.3, 290, 0); math.IsNaN(l) || math.IsInf(l, 0) {
		t.Errorf("neutral Obukhov length %g; want finite", l)
	}
}
