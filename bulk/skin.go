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

// Sea water properties for the skin layer model.
const (
	ρWater  = 1025.  // kg/m3, density
	cpWater = 4190.  // J/(kg K), specific heat
	νWater  = 1.e-6  // m2/s, kinematic viscosity
	kWater  = 0.6    // W/(m K), thermal conductivity
	εOcean  = 0.97   // longwave emissivity of the sea surface
	σSB     = 5.67e-8 // W/(m2 K4), Stefan-Boltzmann constant
)

// coolSkin returns the cool-skin temperature correction [K] of
// Fairall et al. (1996): the temperature difference across the
// millimeter-scale molecular boundary layer at the ocean surface,
// negative when the skin is cooler than the bulk water below it.
//
// ts is the surface temperature [K], sw and lw the downwelling short-
// and longwave radiation [W/m2], qlat and qsen the turbulent heat
// fluxes [W/m2, positive upward], ρAir the air density [kg/m3], and
// ustar the atmospheric friction velocity [m/s].
func coolSkin(ts, sw, lw, qlat, qsen, ρAir, ustar float64) float64 {
	// Net longwave cooling of the surface [W/m2, positive upward].
	qlw := εOcean * (σSB*math.Pow(ts, 4) - lw)
	// Non-solar cooling.
	qnl := qsen + qlat + qlw

	// Friction velocity on the water side of the interface.
	usw := math.Max(ustar*math.Sqrt(ρAir/ρWater), 1.e-4)

	// Thermal expansion coefficient of sea water [1/K]
	// (fit used in the COARE code).
	α := math.Max(1.e-5, 2.1e-5*math.Pow(math.Max(ts-thermo.T0, 0)+3.2, 0.79))

	δ := 0.001 // skin layer thickness first guess [m]
	var δt float64
	for it := 0; it < 3; it++ {
		// Fraction of the solar flux absorbed within the skin layer
		// (Fairall et al., 1996, eq. 16).
		fs := 0.065 + 11*δ - 6.6e-5/δ*(1-math.Exp(-δ/8.e-4))
		q := qnl - fs*sw // net cooling of the skin layer
		λ := 6.
		if q > 0 {
			// Saunders coefficient (Fairall et al., 1996, eq. 14).
			x := 16 * thermo.G * α * ρWater * cpWater * math.Pow(νWater, 3) * q /
				(math.Pow(usw, 4) * kWater * kWater)
			λ = 6 / math.Cbrt(1+math.Pow(x, 0.75))
		}
		δ = λ * νWater / usw
		δt = -q * δ / kWater
	}
	return δt
}
