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
	"strings"
	"testing"

	"github.com/ctessum/sparse"
)

// uniform returns a 3x4 grid filled with val.
func uniform(val float64) *sparse.DenseArray {
	a := sparse.ZerosDense(3, 4)
	for i := range a.Elements {
		a.Elements[i] = val
	}
	return a
}

// TestCheckRangeSingleCell checks that one implausible cell fails the
// whole field even when the mean stays within range.
func TestCheckRangeSingleCell(t *testing.T) {
	sst := uniform(290)
	sst.Elements[5] = 320
	err := CheckRange("sea surface temperature", sst, nil)
	if err == nil {
		t.Fatal("expected a bound violation")
	}
	if !strings.Contains(err.Error(), "sea surface temperature") || !strings.Contains(err.Error(), "K") {
		t.Errorf("error should name the field and unit: %v", err)
	}

	sst.Elements[5] = 260 // below the lower bound
	if err := CheckRange("sea surface temperature", sst, nil); err == nil {
		t.Error("expected a lower bound violation")
	}
}

func TestCheckRangeUnknownField(t *testing.T) {
	if err := CheckRange("salinity", uniform(35), nil); err == nil {
		t.Error("an unrecognized field name must be rejected")
	}
}

func TestCheckRangeZeroMaskWeight(t *testing.T) {
	err := CheckRange("air temperature", uniform(290), uniform(0))
	if err == nil {
		t.Fatal("a zero-weight mask makes the mean undefined and must be rejected")
	}
	if !strings.Contains(err.Error(), "mask") {
		t.Errorf("error should mention the mask: %v", err)
	}
}

func TestCheckRangeMasked(t *testing.T) {
	mask := uniform(1)
	mask.Elements[0] = 0
	if err := CheckRange("air temperature", uniform(290), mask); err != nil {
		t.Errorf("valid masked field rejected: %v", err)
	}
}

func TestCheckRangeValid(t *testing.T) {
	cases := []struct {
		field string
		val   float64
	}{
		{"sea surface temperature", 290},
		{"air temperature", 285},
		{"air specific humidity", 0.012},
		{"sea level pressure", 101300},
		{"wind component", 12},
		{"downwelling shortwave radiation", 600},
		{"downwelling longwave radiation", 350},
	}
	for _, c := range cases {
		if err := CheckRange(c.field, uniform(c.val), nil); err != nil {
			t.Errorf("CheckRange(%q, %g): %v", c.field, c.val, err)
		}
	}
}

// TestValidateInputWind checks that a strongly negative wind component
// passes validation (the bound applies to the magnitude) while an
// excessive one fails.
func TestValidateInputWind(t *testing.T) {
	in := validTestInput()
	in.U = uniform(-30)
	if err := validateInput(in); err != nil {
		t.Errorf("negative wind component within magnitude bound rejected: %v", err)
	}
	in.U = uniform(-60)
	if err := validateInput(in); err == nil {
		t.Error("wind magnitude above bound should be rejected")
	}
}

func TestValidateInputHumidity(t *testing.T) {
	in := validTestInput()
	in.QAir = uniform(0.1)
	err := validateInput(in)
	if err == nil {
		t.Fatal("implausible humidity should be rejected")
	}
	if !strings.Contains(err.Error(), "air specific humidity") {
		t.Errorf("error should name the offending field: %v", err)
	}
}
