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

// NCAR is the bulk flux algorithm of Large and Yeager (2004, 2009)
// used for the CORE forcing of ocean-only simulations. It
// parameterizes neutral 10 m transfer coefficients directly from the
// neutral 10 m wind speed and has no cool-skin correction.
type NCAR struct{}

// Name returns the algorithm identifier.
func (n *NCAR) Name() string { return "ncar" }

// SupportsSkin reports that the NCAR family has no cool-skin
// correction.
func (n *NCAR) SupportsSkin() bool { return false }

// ncarWindFloor is the minimum wind speed [m/s] of Large and Yeager
// (2009), which stands in for a gustiness parameterization.
const ncarWindFloor = 0.5

// cdN10 returns the neutral 10 m drag coefficient for neutral 10 m
// wind speed u (Large and Yeager, 2009, eq. 11).
func cdN10(u float64) float64 {
	if u > 33 {
		return 2.34e-3
	}
	return 1.e-3 * (2.7/u + 0.142 + u/13.09 - 3.14807e-10*math.Pow(u, 6))
}

// chN10 returns the neutral 10 m sensible heat transfer coefficient,
// which depends on the sign of the air-sea temperature difference.
func chN10(sqrtCd float64, stable bool) float64 {
	if stable {
		return 1.e-3 * 18 * sqrtCd
	}
	return 1.e-3 * 32.7 * sqrtCd
}

// ceN10 returns the neutral 10 m moisture transfer coefficient.
func ceN10(sqrtCd float64) float64 {
	return 1.e-3 * 34.6 * sqrtCd
}

// Solve runs the Large and Yeager similarity iteration for every grid
// cell.
func (n *NCAR) Solve(in *Input) (*Output, error) {
	out := newOutput(in.Wind.Shape)
	out.Ts = in.Ts.Copy()
	out.Qs = in.Qs.Copy()

	for i, wind := range in.Wind.Elements {
		θt := in.Theta.Elements[i]
		qt := in.Q.Elements[i]
		ts := in.Ts.Elements[i]
		qs := in.Qs.Elements[i]

		ub := math.Max(wind, ncarWindFloor)
		tv := thermo.VirtTemp(θt, qt)
		stable := θt > ts

		// Neutral first guesses.
		u10n := ub
		cdn := cdN10(u10n)
		sqrtCdn := math.Sqrt(cdn)
		cd := cdn
		ch := chN10(sqrtCdn, stable)
		ce := ceN10(sqrtCdn)
		θu, qu := θt, qt
		var ζu, ζt float64

		for it := 0; it < nIter; it++ {
			sqrtCd := math.Sqrt(cd)
			ustar := sqrtCd * ub
			tstar := ch / sqrtCd * (θu - ts)
			qstar := ce / sqrtCd * (qu - qs)

			tvstar := tstar*(1+thermo.Rctv*qu) + thermo.Rctv*θu*qstar
			l := obukhov(ustar, tv, tvstar)
			ζu = stabParam(in.Zu, l)
			ζt = stabParam(in.Zt, l)

			// Shift the scalar state to the wind measurement height.
			θu = heightAdjust(θt, tstar, in.Zt, in.Zu, ζt, ζu, psiHNCAR)
			qu = math.Max(0, heightAdjust(qt, qstar, in.Zt, in.Zu, ζt, ζu, psiHNCAR))

			// Update the neutral 10 m wind speed and coefficients.
			u10n = ub / (1 + sqrtCdn/κ*(math.Log(in.Zu/10)-psiMNCAR(ζu)))
			u10n = math.Max(u10n, ncarWindFloor)
			cdn = cdN10(u10n)
			sqrtCdn = math.Sqrt(cdn)
			chn := chN10(sqrtCdn, stable)
			cen := ceN10(sqrtCdn)

			// Shift the neutral coefficients to height Zu and the
			// local stability (Large and Yeager, 2004, eqs. 9-10).
			logM := math.Log(in.Zu/10) - psiMNCAR(ζu)
			cd = cdn / math.Pow(1+sqrtCdn/κ*logM, 2)
			sqrtCd = math.Sqrt(cd)
			logS := math.Log(in.Zu/10) - psiHNCAR(ζu)
			ch = chn * sqrtCd / sqrtCdn / (1 + chn/(κ*sqrtCdn)*logS)
			ce = cen * sqrtCd / sqrtCdn / (1 + cen/(κ*sqrtCdn)*logS)
		}

		out.Cd.Elements[i] = cd
		out.Ch.Elements[i] = ch
		out.Ce.Elements[i] = ce
		out.Theta.Elements[i] = θu
		out.Q.Elements[i] = qu
		out.Wind.Elements[i] = ub
	}
	return out, nil
}
