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

	"github.com/spatialmodel/airsea/thermo"
)

// ECMWF is the bulk flux algorithm of the ECMWF Integrated Forecasting
// System surface layer scheme (ECMWF IFS documentation, Part IV;
// Beljaars, 1995). It uses a constant Charnock parameter,
// viscosity-scaled scalar roughness lengths, and the Beljaars and
// Holtslag (1991) stable profile functions.
type ECMWF struct{}

// Name returns the algorithm identifier.
func (e *ECMWF) Name() string { return "ecmwf" }

// SupportsSkin reports that the IFS scheme carries a cool-skin
// correction.
func (e *ECMWF) SupportsSkin() bool { return true }

// IFS closure constants.
const (
	charnockECMWF = 0.018
	betaGustECMWF = 1.
	ziConvECMWF   = 1000. // m

	// Scalar roughness lengths scale with the viscous length ν/u*
	// (IFS documentation, Part IV).
	z0tCoefECMWF = 0.40
	z0qCoefECMWF = 0.62
)

// Solve runs the IFS similarity iteration for every grid cell.
func (e *ECMWF) Solve(in *Input) (*Output, error) {
	out := newOutput(in.Wind.Shape)
	out.Ts = in.Ts.Copy()
	out.Qs = in.Qs.Copy()

	for i, wind := range in.Wind.Elements {
		θt := in.Theta.Elements[i]
		qt := in.Q.Elements[i]
		ts := out.Ts.Elements[i]
		qs := out.Qs.Elements[i]

		ν := thermo.KinViscAir(θt)
		tv := thermo.VirtTemp(θt, qt)

		wg := 0.5
		ub := math.Max(math.Hypot(wind, wg), windFloor)
		u10 := ub * math.Log(10/1.e-4) / math.Log(in.Zu/1.e-4)
		ustar := 0.035 * u10
		z0 := charnockECMWF*ustar*ustar/thermo.G + 0.11*ν/ustar
		z0t := z0tCoefECMWF * ν / ustar
		z0q := z0qCoefECMWF * ν / ustar
		l := math.Inf(1)

		var tstar, qstar float64
		for it := 0; it < nIter; it++ {
			ζu := stabParam(in.Zu, l)
			ζt := stabParam(in.Zt, l)
			ustar = κ * ub / (math.Log(in.Zu/z0) - psiMECMWF(ζu))
			tstar = κ * (θt - ts) / (math.Log(in.Zt/z0t) - psiHECMWF(ζt))
			qstar = κ * (qt - qs) / (math.Log(in.Zt/z0q) - psiHECMWF(ζt))

			tvstar := tstar*(1+thermo.Rctv*qt) + thermo.Rctv*θt*qstar
			l = obukhov(ustar, tv, tvstar)

			bf := -thermo.G / tv * ustar * tvstar
			if bf > 0 {
				wg = betaGustECMWF * math.Cbrt(bf*ziConvECMWF)
			} else {
				wg = 0.2
			}
			ub = math.Max(math.Hypot(wind, wg), windFloor)

			z0 = charnockECMWF*ustar*ustar/thermo.G + 0.11*ν/ustar
			z0t = z0tCoefECMWF * ν / ustar
			z0q = z0qCoefECMWF * ν / ustar

			if in.Skin {
				p := in.P.Elements[i]
				ρ := thermo.AirDensity(θt, qt, p)
				qsen := -ρ * thermo.SpecHeatMoistAir(qt) * ustar * tstar
				qlat := -ρ * thermo.LatentHeatVap(ts) * ustar * qstar
				δt := coolSkin(ts, in.SWDown.Elements[i], in.LWDown.Elements[i], qlat, qsen, ρ, ustar)
				ts = in.Ts.Elements[i] + δt
				qs = 0.98 * thermo.SatSpecHum(ts, p)
			}
		}

		ζu := stabParam(in.Zu, l)
		ζt := stabParam(in.Zt, l)
		logM := math.Log(in.Zu/z0) - psiMECMWF(ζu)
		logT := math.Log(in.Zu/z0t) - psiHECMWF(ζu)
		logQ := math.Log(in.Zu/z0q) - psiHECMWF(ζu)
		out.Cd.Elements[i] = κ * κ / (logM * logM)
		out.Ch.Elements[i] = κ * κ / (logM * logT)
		out.Ce.Elements[i] = κ * κ / (logM * logQ)
		out.Theta.Elements[i] = heightAdjust(θt, tstar, in.Zt, in.Zu, ζt, ζu, psiHECMWF)
		out.Q.Elements[i] = math.Max(0, heightAdjust(qt, qstar, in.Zt, in.Zu, ζt, ζu, psiHECMWF))
		out.Wind.Elements[i] = ub
		out.Ts.Elements[i] = ts
		out.Qs.Elements[i] = qs
	}
	return out, nil
}
