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
	"github.com/ctessum/sparse"

	"github.com/spatialmodel/airsea/bulk"
	"github.com/spatialmodel/airsea/thermo"
)

// assemble combines the solver outputs with air density into the final
// flux fields. Density is evaluated twice: first with the sea level
// pressure, then again with the pressure corrected hydrostatically to
// the wind measurement height using the first-pass density. The order
// of the two passes matters and must not be changed.
func assemble(in *Input, s *bulk.Output, zu float64) *Fluxes {
	shape := s.Cd.Shape
	f := &Fluxes{
		QLatent:   sparse.ZerosDense(shape...),
		QSensible: sparse.ZerosDense(shape...),
		TauX:      sparse.ZerosDense(shape...),
		TauY:      sparse.ZerosDense(shape...),
	}
	if in.WantSkin {
		f.TSkin = s.Ts.Copy()
	}

	for i, cd := range s.Cd.Elements {
		θ := s.Theta.Elements[i]
		q := s.Q.Elements[i]
		p := in.P.Elements[i]

		ρ := thermo.AirDensity(θ, q, p)
		pzu := p - ρ*thermo.G*zu
		ρ = thermo.AirDensity(θ, q, pzu)

		ub := s.Wind.Elements[i]
		ts := s.Ts.Elements[i]
		qs := s.Qs.Elements[i]

		f.TauX.Elements[i] = cd * ρ * in.U.Elements[i] * ub
		f.TauY.Elements[i] = cd * ρ * in.V.Elements[i] * ub
		f.QLatent.Elements[i] = s.Ce.Elements[i] * ρ * thermo.LatentHeatVap(ts) * (qs - q) * ub
		f.QSensible.Elements[i] = s.Ch.Elements[i] * ρ * thermo.SpecHeatMoistAir(q) * (ts - θ) * ub
	}
	return f
}
