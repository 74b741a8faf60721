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

// COARE is the COARE bulk flux algorithm of Fairall et al. (2003),
// developed from the TOGA-COARE field program. With Refined set it
// uses the updated wind-speed-dependent Charnock closure and scalar
// roughness fit of Edson et al. (2013) (COARE v3.5); otherwise it is
// the v3.0 parameterization.
type COARE struct {
	Refined bool
}

// Name returns the algorithm identifier.
func (c *COARE) Name() string {
	if c.Refined {
		return "coare35"
	}
	return "coare"
}

// SupportsSkin reports that the COARE family implements the cool-skin
// correction (Fairall et al., 1996).
func (c *COARE) SupportsSkin() bool { return true }

// COARE gustiness parameters: the convective velocity scale is formed
// over a boundary layer of depth ziConv and weighted by betaGust
// (Fairall et al., 1996).
const (
	betaGustCOARE = 1.25
	ziConvCOARE   = 600. // m
)

// charnock returns the Charnock parameter for the given neutral 10 m
// wind speed.
func (c *COARE) charnock(u10n float64) float64 {
	if c.Refined {
		// Edson et al. (2013) eq. 13.
		return math.Max(0, math.Min(0.028, 0.0017*u10n-0.005))
	}
	// Fairall et al. (2003): 0.011 below 10 m/s increasing linearly
	// to 0.018 at 18 m/s.
	w := math.Max(0, math.Min(1, (u10n-10)/8))
	return 0.011 + w*(0.018-0.011)
}

// scalarRoughness returns the roughness length for temperature and
// humidity as a function of the roughness Reynolds number.
func (c *COARE) scalarRoughness(rr float64) float64 {
	if c.Refined {
		// Edson et al. (2013) eq. 18.
		return math.Min(1.6e-4, 5.8e-5*math.Pow(rr, -0.72))
	}
	// Fairall et al. (2003) eq. 28.
	return math.Min(1.15e-4, 5.5e-5*math.Pow(rr, -0.6))
}

// Solve runs the COARE similarity iteration for every grid cell.
func (c *COARE) Solve(in *Input) (*Output, error) {
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

		// First guesses: neutral profile over a smooth surface.
		wg := 0.5
		ub := math.Max(math.Hypot(wind, wg), windFloor)
		u10 := ub * math.Log(10/1.e-4) / math.Log(in.Zu/1.e-4)
		ustar := 0.035 * u10
		z0 := c.charnock(u10)*ustar*ustar/thermo.G + 0.11*ν/ustar
		z0s := 1.e-4 // scalar roughness
		l := math.Inf(1)

		var tstar, qstar float64
		for it := 0; it < nIter; it++ {
			ζu := stabParam(in.Zu, l)
			ζt := stabParam(in.Zt, l)
			ustar = κ * ub / (math.Log(in.Zu/z0) - psiMCOARE(ζu))
			tstar = κ * (θt - ts) / (math.Log(in.Zt/z0s) - psiHCOARE(ζt))
			qstar = κ * (qt - qs) / (math.Log(in.Zt/z0s) - psiHCOARE(ζt))

			tvstar := tstar*(1+thermo.Rctv*qt) + thermo.Rctv*θt*qstar
			l = obukhov(ustar, tv, tvstar)

			// Convective gustiness.
			bf := -thermo.G / tv * ustar * tvstar
			if bf > 0 {
				wg = betaGustCOARE * math.Cbrt(bf*ziConvCOARE)
			} else {
				wg = 0.2
			}
			ub = math.Max(math.Hypot(wind, wg), windFloor)

			// Roughness length closure.
			u10n := ustar / κ * math.Log(10/z0)
			z0 = c.charnock(u10n)*ustar*ustar/thermo.G + 0.11*ν/ustar
			rr := z0 * ustar / ν
			z0s = c.scalarRoughness(rr)

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
		logM := math.Log(in.Zu/z0) - psiMCOARE(ζu)
		logS := math.Log(in.Zu/z0s) - psiHCOARE(ζu)
		out.Cd.Elements[i] = κ * κ / (logM * logM)
		out.Ch.Elements[i] = κ * κ / (logM * logS)
		out.Ce.Elements[i] = κ * κ / (logM * logS)
		out.Theta.Elements[i] = heightAdjust(θt, tstar, in.Zt, in.Zu, ζt, ζu, psiHCOARE)
		out.Q.Elements[i] = math.Max(0, heightAdjust(qt, qstar, in.Zt, in.Zu, ζt, ζu, psiHCOARE))
		out.Wind.Elements[i] = ub
		out.Ts.Elements[i] = ts
		out.Qs.Elements[i] = qs
	}
	return out, nil
}
