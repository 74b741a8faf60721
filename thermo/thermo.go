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

// Package thermo provides elementary thermodynamic functions for moist
// air near the ocean surface. All functions are pure and stateless;
// temperatures are in Kelvin, pressures in Pa, and specific humidities
// in kg water vapor per kg moist air.
package thermo

import "math"

// physical constants
const (
	G = 9.80665 // m/s2, gravitational acceleration

	RDry = 287.05  // J/(kg K), specific gas constant for dry air
	RVap = 461.495 // J/(kg K), specific gas constant for water vapor

	// Eps is the ratio of the gas constants of dry air and water vapor.
	Eps = RDry / RVap

	// Rctv relates specific humidity to virtual temperature:
	// Tv = T*(1+Rctv*q).
	Rctv = RVap/RDry - 1.

	CpDry = 1005.  // J/(kg K), specific heat of dry air
	CpVap = 1860.  // J/(kg K), specific heat of water vapor
	T0    = 273.15 // K, freezing point of fresh water
)

// SatVapPres returns the saturation water vapor pressure [Pa]
// over a liquid surface at temperature T [K], using the
// approximation of Bolton (1980).
func SatVapPres(T float64) float64 {
	return 611.2 * math.Exp(17.67*(T-T0)/(T-29.65))
}

// SatSpecHum returns the saturation specific humidity [kg/kg] of air
// at temperature T [K] and pressure p [Pa].
func SatSpecHum(T, p float64) float64 {
	es := SatVapPres(T)
	return Eps * es / (p - (1.-Eps)*es)
}

// LatentHeatVap returns the latent heat of vaporization of water
// [J/kg] at temperature T [K] (Fairall et al., 1996).
func LatentHeatVap(T float64) float64 {
	return (2.501 - 0.00237*(T-T0)) * 1.e6
}

// SpecHeatMoistAir returns the specific heat of moist air at constant
// pressure [J/(kg K)] for specific humidity q [kg/kg].
func SpecHeatMoistAir(q float64) float64 {
	return CpDry*(1.-q) + CpVap*q
}

// AirDensity returns the density of moist air [kg/m3] at temperature
// T [K], specific humidity q [kg/kg], and pressure p [Pa], from the
// ideal gas law with virtual temperature.
func AirDensity(T, q, p float64) float64 {
	return p / (RDry * T * (1. + Rctv*q))
}

// VirtTemp returns the virtual temperature [K] corresponding to
// temperature T [K] and specific humidity q [kg/kg].
func VirtTemp(T, q float64) float64 {
	return T * (1. + Rctv*q)
}

// MoistLapseRate returns the moist adiabatic temperature lapse rate
// [K/m] at temperature T [K] and specific humidity q [kg/kg]
// (e.g. Stull, 1988).
func MoistLapseRate(T, q float64) float64 {
	rv := q / (1. - q) // water vapor mixing ratio
	l := LatentHeatVap(T)
	num := 1. + l*rv/(RDry*T)
	den := CpDry + l*l*rv*Eps/(RDry*T*T)
	return G * num / den
}

// KinViscAir returns the kinematic viscosity of air [m2/s] at
// temperature T [K] (Andreas, 1989).
func KinViscAir(T float64) float64 {
	tc := T - T0
	return 1.326e-5 * (1. + tc*(6.542e-3+tc*(8.301e-6-4.84e-9*tc)))
}
