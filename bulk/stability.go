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

import "math"

// Integrated Monin-Obukhov stability profile functions ψm (momentum)
// and ψh (scalars). Each solver family uses the universal functions of
// its reference publication, so they are kept separate here rather
// than unified.

// psiMKansas is the Businger-Dyer (Kansas) unstable momentum profile
// function (Paulson, 1970) for stability parameter ζ < 0 with
// gradient-function coefficient a (16 for NCAR and ECMWF, 15 for
// COARE).
func psiMKansas(ζ, a float64) float64 {
	x := math.Sqrt(math.Sqrt(1 - a*ζ))
	return 2*math.Log((1+x)/2) + math.Log((1+x*x)/2) - 2*math.Atan(x) + math.Pi/2
}

// psiHKansas is the Businger-Dyer unstable scalar profile function.
func psiHKansas(ζ, a float64) float64 {
	x := math.Sqrt(1 - a*ζ)
	return 2 * math.Log((1+x)/2)
}

// psiMCOARE is the momentum profile function of the COARE algorithm
// (Fairall et al., 1996, 2003): a blend of the Kansas form and a
// convective limit when unstable, and the modified Dyer form of
// Beljaars and Holtslag when stable.
func psiMCOARE(ζ float64) float64 {
	if ζ < 0 {
		ψk := psiMKansas(ζ, 15)
		y := math.Cbrt(1 - 10.15*ζ)
		ψc := 1.5*math.Log((1+y+y*y)/3) - math.Sqrt(3)*math.Atan((1+2*y)/math.Sqrt(3)) + math.Pi/math.Sqrt(3)
		f := ζ * ζ / (1 + ζ*ζ)
		return (1-f)*ψk + f*ψc
	}
	c := math.Min(50, 0.35*ζ)
	return -((1 + ζ) + 0.667*(ζ-14.28)*math.Exp(-c) + 8.525)
}

// psiHCOARE is the scalar profile function of the COARE algorithm.
func psiHCOARE(ζ float64) float64 {
	if ζ < 0 {
		ψk := psiHKansas(ζ, 15)
		y := math.Cbrt(1 - 34.15*ζ)
		ψc := 1.5*math.Log((1+y+y*y)/3) - math.Sqrt(3)*math.Atan((1+2*y)/math.Sqrt(3)) + math.Pi/math.Sqrt(3)
		f := ζ * ζ / (1 + ζ*ζ)
		return (1-f)*ψk + f*ψc
	}
	c := math.Min(50, 0.35*ζ)
	return -(math.Pow(1+2.*ζ/3., 1.5) + 0.667*(ζ-14.28)*math.Exp(-c) + 8.525)
}

// psiMNCAR is the momentum profile function used by the NCAR (CORE)
// algorithm (Large and Yeager, 2004): Paulson (1970) when unstable and
// the simple log-linear form when stable.
func psiMNCAR(ζ float64) float64 {
	if ζ < 0 {
		return psiMKansas(ζ, 16)
	}
	return -5 * ζ
}

// psiHNCAR is the scalar profile function of the NCAR algorithm.
func psiHNCAR(ζ float64) float64 {
	if ζ < 0 {
		return psiHKansas(ζ, 16)
	}
	return -5 * ζ
}

// Coefficients of the Beljaars and Holtslag (1991) stable profile
// functions used in the IFS.
const (
	bhA = 1.
	bhB = 2. / 3.
	bhC = 5.
	bhD = 0.35
)

// psiMECMWF is the momentum profile function of the IFS bulk scheme
// (ECMWF documentation; Beljaars, 1995).
func psiMECMWF(ζ float64) float64 {
	if ζ < 0 {
		return psiMKansas(ζ, 16)
	}
	return -(bhB*(ζ-bhC/bhD)*math.Exp(-bhD*ζ) + bhA*ζ + bhB*bhC/bhD)
}

// psiHECMWF is the scalar profile function of the IFS bulk scheme.
func psiHECMWF(ζ float64) float64 {
	if ζ < 0 {
		return psiHKansas(ζ, 16)
	}
	return -(bhB*(ζ-bhC/bhD)*math.Exp(-bhD*ζ) + math.Pow(1+2./3.*bhA*ζ, 1.5) + bhB*bhC/bhD - 1)
}
