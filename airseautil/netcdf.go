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

package airseautil

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"

	"github.com/spatialmodel/airsea"
)

// readInput reads the state fields from the NetCDF file at filename.
// vars maps state field names to the names of the corresponding file
// variables. The radiation fields are optional; all others must be
// present in the file.
func readInput(filename string, vars map[string]string) (*airsea.Input, error) {
	ff, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("airsea: opening input file: %v", err)
	}
	defer ff.Close()
	f, err := cdf.Open(ff)
	if err != nil {
		return nil, fmt.Errorf("airsea: reading input file %s: %v", filename, err)
	}

	in := new(airsea.Input)
	required := []struct {
		field string
		dst   **sparse.DenseArray
	}{
		{"SST", &in.SST},
		{"TAir", &in.TAir},
		{"QAir", &in.QAir},
		{"U", &in.U},
		{"V", &in.V},
		{"P", &in.P},
	}
	for _, v := range required {
		data, err := readGrid(f, vars[v.field])
		if err != nil {
			return nil, fmt.Errorf("airsea: reading %s: %v", v.field, err)
		}
		*v.dst = data
	}
	for _, v := range []struct {
		field string
		dst   **sparse.DenseArray
	}{
		{"SWDown", &in.SWDown},
		{"LWDown", &in.LWDown},
	} {
		name := vars[v.field]
		if name == "" || len(f.Header.Lengths(name)) == 0 {
			continue
		}
		data, err := readGrid(f, name)
		if err != nil {
			return nil, fmt.Errorf("airsea: reading %s: %v", v.field, err)
		}
		*v.dst = data
	}
	return in, nil
}

// readGrid reads one 2-d variable from f.
func readGrid(f *cdf.File, Var string) (*sparse.DenseArray, error) {
	dims := f.Header.Lengths(Var)
	if len(dims) == 0 {
		return nil, fmt.Errorf("variable %s is not in the file", Var)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("variable %s has %d dimensions; need 2", Var, len(dims))
	}
	data := sparse.ZerosDense(dims...)
	r := f.Reader(Var, nil, nil)
	buf := r.Zero(len(data.Elements))
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("variable %s: %v", Var, err)
	}
	switch b := buf.(type) {
	case []float32:
		for i, e := range b {
			data.Elements[i] = float64(e)
		}
	case []float64:
		copy(data.Elements, b)
	default:
		return nil, fmt.Errorf("variable %s: unsupported type %T", Var, buf)
	}
	return data, nil
}

// writeFluxes writes the flux fields to a NetCDF file at filename.
func writeFluxes(filename string, fluxes *airsea.Fluxes) error {
	outVars := []struct {
		name        string
		data        *sparse.DenseArray
		units       string
		description string
	}{
		{"QLatent", fluxes.QLatent, "W m-2", "Latent heat flux, positive upward (ocean to atmosphere)"},
		{"QSensible", fluxes.QSensible, "W m-2", "Sensible heat flux, positive upward (ocean to atmosphere)"},
		{"TauX", fluxes.TauX, "N m-2", "Eastward component of the wind stress"},
		{"TauY", fluxes.TauY, "N m-2", "Northward component of the wind stress"},
	}
	if fluxes.TSkin != nil {
		outVars = append(outVars, struct {
			name        string
			data        *sparse.DenseArray
			units       string
			description string
		}{"TSkin", fluxes.TSkin, "K", "Sea surface skin temperature"})
	}

	shape := fluxes.QLatent.Shape
	h := cdf.NewHeader([]string{"y", "x"}, shape)
	for _, v := range outVars {
		h.AddVariable(v.name, []string{"y", "x"}, []float32{0})
		h.AddAttribute(v.name, "units", v.units)
		h.AddAttribute(v.name, "description", v.description)
	}
	h.Define()

	ff, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("airsea: creating output file: %v", err)
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		ff.Close()
		return fmt.Errorf("airsea: creating output file %s: %v", filename, err)
	}
	for _, v := range outVars {
		if err := writeNCF(f, v.name, v.data); err != nil {
			ff.Close()
			return fmt.Errorf("airsea: writing %s: %v", v.name, err)
		}
	}
	if err := cdf.UpdateNumRecs(ff); err != nil {
		ff.Close()
		return fmt.Errorf("airsea: finalizing output file: %v", err)
	}
	return ff.Close()
}

func writeNCF(f *cdf.File, Var string, data *sparse.DenseArray) error {
	data32 := make([]float32, len(data.Elements))
	for i, e := range data.Elements {
		data32[i] = float32(e)
	}
	end := f.Header.Lengths(Var)
	start := make([]int, len(end))
	w := f.Writer(Var, start, end)
	if _, err := w.Write(data32); err != nil {
		return err
	}
	return nil
}
