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

// Package airsea computes turbulent air-sea exchange fluxes (latent
// heat, sensible heat, and the two wind stress components) over a 2-D
// grid of near-surface atmospheric and oceanic state fields, using one
// of several interchangeable similarity-theory bulk flux algorithms
// (see package github.com/spatialmodel/airsea/bulk). It is intended to
// be called by a host ocean or atmosphere model once per simulation
// time step; it keeps no state between calls.
package airsea

import (
	"fmt"
	"sync"

	"github.com/ctessum/sparse"

	"github.com/spatialmodel/airsea/bulk"
)

// Version gives the version number of this version of AirSea.
const Version = "1.0.0-dev"

// Input holds the state fields for one grid-wide flux evaluation.
// All grids must share the same shape.
type Input struct {
	// SST is bulk sea surface temperature [K].
	SST *sparse.DenseArray
	// TAir is air temperature at the temperature measurement
	// height [K].
	TAir *sparse.DenseArray
	// QAir is air specific humidity at the temperature measurement
	// height [kg/kg].
	QAir *sparse.DenseArray
	// U and V are the eastward and northward wind components at the
	// wind measurement height [m/s].
	U, V *sparse.DenseArray
	// P is mean sea level pressure [Pa].
	P *sparse.DenseArray

	// SWDown and LWDown are downwelling short- and longwave radiation
	// [W/m2]. Supplying both enables the cool-skin correction for
	// algorithms that support it; algorithms without cool-skin support
	// silently ignore them. Supplying only one of the two is an error.
	SWDown, LWDown *sparse.DenseArray

	// Mask optionally weights cells in the validation statistics
	// (for example an ocean fraction). It does not mask the flux
	// computation itself.
	Mask *sparse.DenseArray

	// WantSkin requests the (possibly skin-corrected) surface
	// temperature as an additional output grid.
	WantSkin bool
}

// Fluxes holds the results of one grid-wide flux evaluation.
// Sign convention: positive heat flux is from the ocean to the
// atmosphere, and stress is positive in the direction of the wind.
type Fluxes struct {
	// QLatent is latent heat flux [W/m2].
	QLatent *sparse.DenseArray
	// QSensible is sensible heat flux [W/m2].
	QSensible *sparse.DenseArray
	// TauX and TauY are the zonal and meridional wind stress
	// components [N/m2].
	TauX, TauY *sparse.DenseArray
	// TSkin is the surface temperature seen by the fluxes [K]:
	// skin-corrected when the cool-skin correction was active,
	// otherwise equal to the bulk sea surface temperature. It is nil
	// unless Input.WantSkin was set.
	TSkin *sparse.DenseArray
}

// Compute calculates turbulent air-sea fluxes over the grid using the
// named bulk flux algorithm (see bulk.Names for the supported
// identifiers, matched case-insensitively). zt is the height of the
// temperature and humidity measurements [m] and zu the height of the
// wind measurement [m]. A validation or configuration failure aborts
// the whole call; no partial outputs are ever returned.
func Compute(algorithm string, zt, zu float64, in *Input) (*Fluxes, error) {
	// Resolve the algorithm before any array computation so that a
	// misconfiguration surfaces immediately.
	solver, err := bulk.ForName(algorithm)
	if err != nil {
		return nil, err
	}
	if zt <= 0 || zu <= 0 {
		return nil, fmt.Errorf("airsea: measurement heights must be positive; got zt=%g, zu=%g m", zt, zu)
	}
	if err := checkShapes(in); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	// The cool-skin mode is decided here, once: it requires both
	// radiative forcing grids and an algorithm family that implements
	// the correction. Radiative forcing supplied alongside an
	// algorithm without cool-skin support is deliberately ignored
	// rather than rejected.
	skin := in.SWDown != nil && in.LWDown != nil && solver.SupportsSkin()

	// The three derived fields are independent of each other.
	var wind, theta, ssq *sparse.DenseArray
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); wind = scalarWindSpeed(in.U, in.V) }()
	go func() { defer wg.Done(); theta = potentialTemperature(in.TAir, in.QAir, zt) }()
	go func() { defer wg.Done(); ssq = surfaceSatHumidity(in.SST, in.P) }()
	wg.Wait()

	solverIn := &bulk.Input{
		Zt:    zt,
		Zu:    zu,
		Ts:    in.SST,
		Qs:    ssq,
		Theta: theta,
		Q:     in.QAir,
		Wind:  wind,
		Skin:  skin,
	}
	if skin {
		solverIn.SWDown = in.SWDown
		solverIn.LWDown = in.LWDown
		solverIn.P = in.P
	}
	solverOut, err := solver.Solve(solverIn)
	if err != nil {
		return nil, fmt.Errorf("airsea: %s solver: %v", solver.Name(), err)
	}

	return assemble(in, solverOut, zu), nil
}

// checkShapes verifies that all supplied grids share the same shape
// and that the radiative forcing grids are supplied jointly.
func checkShapes(in *Input) error {
	grids := []struct {
		name string
		data *sparse.DenseArray
	}{
		{"sea surface temperature", in.SST},
		{"air temperature", in.TAir},
		{"air specific humidity", in.QAir},
		{"zonal wind", in.U},
		{"meridional wind", in.V},
		{"sea level pressure", in.P},
		{"downwelling shortwave radiation", in.SWDown},
		{"downwelling longwave radiation", in.LWDown},
		{"mask", in.Mask},
	}
	var shape []int
	for _, g := range grids {
		if g.data == nil {
			if g.name == "mask" || g.name == "downwelling shortwave radiation" ||
				g.name == "downwelling longwave radiation" {
				continue
			}
			return fmt.Errorf("airsea: missing required input grid: %s", g.name)
		}
		if shape == nil {
			shape = g.data.Shape
			continue
		}
		if len(g.data.Shape) != len(shape) {
			return fmt.Errorf("airsea: %s grid has %d dimensions; want %d", g.name, len(g.data.Shape), len(shape))
		}
		for d, n := range g.data.Shape {
			if n != shape[d] {
				return fmt.Errorf("airsea: %s grid shape %v does not match %v", g.name, g.data.Shape, shape)
			}
		}
	}
	if (in.SWDown == nil) != (in.LWDown == nil) {
		return fmt.Errorf("airsea: radiative forcing requires both shortwave and longwave grids")
	}
	return nil
}
