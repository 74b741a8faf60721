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

	"github.com/ctessum/sparse"

	"github.com/spatialmodel/airsea/thermo"
)

// salinityFactor reduces the saturation specific humidity at the sea
// surface to account for salinity (Kraus and Businger, 1994). It is a
// fixed physical constant, not a tuning parameter.
const salinityFactor = 0.98

// scalarWindSpeed returns the magnitude of the horizontal wind from
// its eastward and northward components.
func scalarWindSpeed(u, v *sparse.DenseArray) *sparse.DenseArray {
	s := sparse.ZerosDense(u.Shape...)
	for i, uu := range u.Elements {
		s.Elements[i] = math.Hypot(uu, v.Elements[i])
	}
	return s
}

// potentialTemperature returns the air potential temperature [K] at
// measurement height zt [m], approximated as the air temperature plus
// the moist adiabatic temperature increase over the height of the
// measurement.
func potentialTemperature(t, q *sparse.DenseArray, zt float64) *sparse.DenseArray {
	θ := sparse.ZerosDense(t.Shape...)
	for i, ti := range t.Elements {
		θ.Elements[i] = ti + thermo.MoistLapseRate(ti, q.Elements[i])*zt
	}
	return θ
}

// surfaceSatHumidity returns the saturation specific humidity [kg/kg]
// directly above the sea surface: the salinity-reduced saturation
// humidity at the sea surface temperature and sea level pressure.
func surfaceSatHumidity(sst, p *sparse.DenseArray) *sparse.DenseArray {
	qs := sparse.ZerosDense(sst.Shape...)
	for i, ts := range sst.Elements {
		qs.Elements[i] = salinityFactor * thermo.SatSpecHum(ts, p.Elements[i])
	}
	return qs
}
