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
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// bound is the plausible physical range of one input field.
type bound struct {
	min, max float64
	unit     string
}

// inputBounds lists, for every physical input field, the range outside
// which a value cannot be a plausible ocean-surface observation. A
// violation anywhere in the grid invalidates the whole field.
var inputBounds = map[string]bound{
	"sea surface temperature":         {270, 313, "K"},
	"air temperature":                 {220, 323, "K"},
	"air specific humidity":           {0, 0.08, "kg/kg"},
	"sea level pressure":              {87000, 108000, "Pa"},
	"wind component":                  {0, 50, "m/s"},
	"downwelling shortwave radiation": {0, 1500, "W/m2"},
	"downwelling longwave radiation":  {0, 700, "W/m2"},
}

// CheckRange validates the named physical field against its plausible
// bound table entry: the grid maximum and minimum must lie within the
// inclusive bound range, and so must the mask-weighted grid mean. A
// nil mask weights all cells equally; a mask with zero total weight
// makes the mean undefined and is reported as an error, as is a field
// name without a bound table entry.
func CheckRange(field string, data, mask *sparse.DenseArray) error {
	b, ok := inputBounds[field]
	if !ok {
		return fmt.Errorf("airsea: validation of unrecognized field %q", field)
	}
	if max := floats.Max(data.Elements); max > b.max {
		return fmt.Errorf("airsea: %s maximum %g is above the plausible upper bound %g %s", field, max, b.max, b.unit)
	}
	if min := floats.Min(data.Elements); min < b.min {
		return fmt.Errorf("airsea: %s minimum %g is below the plausible lower bound %g %s", field, min, b.min, b.unit)
	}
	var sum, weight float64
	if mask == nil {
		sum = floats.Sum(data.Elements)
		weight = float64(len(data.Elements))
	} else {
		for i, v := range data.Elements {
			w := mask.Elements[i]
			sum += w * v
			weight += w
		}
	}
	if weight == 0 {
		return fmt.Errorf("airsea: %s mean is undefined: total mask weight is zero", field)
	}
	if mean := sum / weight; mean < b.min || mean > b.max {
		return fmt.Errorf("airsea: %s mean %g is outside the plausible range [%g, %g] %s", field, mean, b.min, b.max, b.unit)
	}
	return nil
}

// validateInput range-checks every supplied input field, fanning the
// independent checks out over goroutines. The first violation found is
// returned; any violation aborts the whole call.
func validateInput(in *Input) error {
	type check struct {
		field string
		data  *sparse.DenseArray
	}
	checks := []check{
		{"sea surface temperature", in.SST},
		{"air temperature", in.TAir},
		{"air specific humidity", in.QAir},
		{"sea level pressure", in.P},
		{"wind component", absDense(in.U)},
		{"wind component", absDense(in.V)},
	}
	if in.SWDown != nil {
		checks = append(checks, check{"downwelling shortwave radiation", in.SWDown})
	}
	if in.LWDown != nil {
		checks = append(checks, check{"downwelling longwave radiation", in.LWDown})
	}

	errChan := make(chan error, len(checks))
	for _, c := range checks {
		go func(c check) {
			errChan <- CheckRange(c.field, c.data, in.Mask)
		}(c)
	}
	var firstErr error
	for range checks {
		if err := <-errChan; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// absDense returns a new array holding the absolute values of a.
func absDense(a *sparse.DenseArray) *sparse.DenseArray {
	o := sparse.ZerosDense(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = math.Abs(v)
	}
	return o
}
