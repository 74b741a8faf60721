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

// Package bulk implements similarity-theory solvers for turbulent
// air-sea transfer coefficients. Each solver variant iterates the
// Monin-Obukhov surface-layer equations to convergence for every grid
// cell independently and returns transfer coefficients together with
// the near-surface state adjusted to the wind measurement height.
package bulk

import (
	"fmt"
	"math"
	"strings"

	"github.com/ctessum/sparse"

	"github.com/spatialmodel/airsea/thermo"
)

const (
	// κ is the Von Kármán constant.
	κ = 0.4

	// windFloor is the smallest bulk wind speed a solver may return
	// [m/s]. It keeps downstream flux divisions well defined in calm
	// conditions.
	windFloor = 0.1

	// nIter is the number of iterations of the similarity-theory
	// equations performed by each solver. Four to five iterations are
	// sufficient for convergence to well below measurement accuracy
	// (Fairall et al., 2003); using a fixed count keeps the solvers
	// free of data-dependent loop bounds.
	nIter = 5
)

// Input holds the state a solver needs for one grid-wide evaluation.
// All arrays must share the same shape.
type Input struct {
	// Zt is the height of the temperature and humidity measurements
	// [m], and Zu the height of the wind measurement [m].
	Zt, Zu float64

	// Ts is bulk sea surface temperature [K] and Qs its saturation
	// specific humidity [kg/kg]. Solvers never modify these; skin
	// corrected values are returned in Output.
	Ts, Qs *sparse.DenseArray

	// Theta is the air potential temperature at Zt [K] and Q the air
	// specific humidity at Zt [kg/kg].
	Theta, Q *sparse.DenseArray

	// Wind is scalar wind speed at Zu [m/s].
	Wind *sparse.DenseArray

	// Skin enables the cool-skin correction. When it is set, SWDown
	// and LWDown [W/m2] and sea level pressure P [Pa] must also be
	// set; otherwise they may be nil.
	Skin           bool
	SWDown, LWDown *sparse.DenseArray
	P              *sparse.DenseArray
}

// Output holds the results of one grid-wide solver evaluation.
type Output struct {
	// Cd, Ch, and Ce are the transfer coefficients for momentum,
	// sensible heat, and moisture [dimensionless].
	Cd, Ch, Ce *sparse.DenseArray

	// Theta and Q are air potential temperature [K] and specific
	// humidity [kg/kg] adjusted to the wind measurement height.
	Theta, Q *sparse.DenseArray

	// Wind is the bulk wind speed [m/s]: the input wind speed
	// augmented for convective gustiness and floored at a small
	// positive value.
	Wind *sparse.DenseArray

	// Ts and Qs are the surface temperature [K] and saturation
	// specific humidity [kg/kg], skin-corrected if the correction was
	// active and otherwise equal to the inputs.
	Ts, Qs *sparse.DenseArray
}

// newOutput allocates all output arrays with the given shape.
func newOutput(shape []int) *Output {
	return &Output{
		Cd:    sparse.ZerosDense(shape...),
		Ch:    sparse.ZerosDense(shape...),
		Ce:    sparse.ZerosDense(shape...),
		Theta: sparse.ZerosDense(shape...),
		Q:     sparse.ZerosDense(shape...),
		Wind:  sparse.ZerosDense(shape...),
	}
}

// Solver is a similarity-theory turbulent flux solver. Implementations
// must be safe for concurrent use and must bound their internal
// iteration.
type Solver interface {
	// Name returns the canonical algorithm identifier.
	Name() string

	// SupportsSkin reports whether this solver family implements the
	// cool-skin correction.
	SupportsSkin() bool

	// Solve runs the similarity-theory iteration for every grid cell.
	Solve(in *Input) (*Output, error)
}

// ForName returns the solver registered under the given
// case-insensitive identifier. Returning an error for an unknown
// identifier lets callers reject a misconfiguration before any array
// computation begins.
func ForName(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "coare":
		return &COARE{}, nil
	case "coare35":
		return &COARE{Refined: true}, nil
	case "ncar":
		return &NCAR{}, nil
	case "ecmwf":
		return &ECMWF{}, nil
	}
	return nil, fmt.Errorf("airsea: unknown bulk flux algorithm %q (supported: coare, coare35, ncar, ecmwf)", name)
}

// Names lists the supported algorithm identifiers.
func Names() []string {
	return []string{"coare", "coare35", "ncar", "ecmwf"}
}

// obukhov returns the Obukhov length [m] for friction velocity ustar,
// virtual potential temperature tv, and virtual temperature scaling
// parameter tvstar, guarding against division by zero in the neutral
// limit.
func obukhov(ustar, tv, tvstar float64) float64 {
	if math.Abs(tvstar) < 1.e-12 {
		tvstar = math.Copysign(1.e-12, tvstar)
	}
	return ustar * ustar * tv / (κ * thermo.G * tvstar)
}

// stabParam returns the clamped Monin-Obukhov stability parameter z/L.
func stabParam(z, l float64) float64 {
	ζ := z / l
	if ζ > 10 {
		return 10
	}
	if ζ < -10 {
		return -10
	}
	return ζ
}

// heightAdjust translates a scalar quantity measured at zt to height
// zu along the Monin-Obukhov profile with scaling parameter xstar.
func heightAdjust(x, xstar, zt, zu, ζt, ζu float64, psiH func(float64) float64) float64 {
	return x - xstar/κ*(math.Log(zt/zu)+psiH(ζu)-psiH(ζt))
}
