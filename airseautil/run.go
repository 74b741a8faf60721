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

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/airsea"
)

// Dimensions of the reported domain-mean quantities.
var (
	// heatFluxUnits is W/m2 expressed in base dimensions (kg s-3).
	heatFluxUnits = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3}
	// stressUnits is N/m2 expressed in base dimensions (kg m-1 s-2).
	stressUnits = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
)

// Run computes turbulent fluxes for the state fields in the NetCDF file
// inputFile using the named bulk flux algorithm, and writes the flux
// fields to the NetCDF file outputFile. zt and zu are the heights [m] of
// the temperature/humidity and wind fields, respectively. If wantSkin is
// true, the skin temperature field is included in the output. vars maps
// the state field names to the names of the corresponding variables in
// the input file.
func Run(inputFile, outputFile, algorithm string, zt, zu float64, wantSkin bool, vars map[string]string) error {
	if inputFile == "" {
		return fmt.Errorf("airsea: no input file specified")
	}
	log := logrus.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"input":     inputFile,
	})
	log.Info("reading state fields")

	in, err := readInput(inputFile, vars)
	if err != nil {
		return err
	}
	in.WantSkin = wantSkin
	log = log.WithField("shape", in.SST.Shape)
	if in.SWDown != nil && in.LWDown != nil {
		log.Info("radiation fields present; cool-skin correction available")
	}

	log.Info("computing fluxes")
	fluxes, err := airsea.Compute(algorithm, zt, zu, in)
	if err != nil {
		return err
	}

	n := float64(len(fluxes.QLatent.Elements))
	logrus.WithFields(logrus.Fields{
		"QLatent":   unit.New(fluxes.QLatent.Sum()/n, heatFluxUnits),
		"QSensible": unit.New(fluxes.QSensible.Sum()/n, heatFluxUnits),
		"TauX":      unit.New(fluxes.TauX.Sum()/n, stressUnits),
		"TauY":      unit.New(fluxes.TauY.Sum()/n, stressUnits),
	}).Info("domain-mean fluxes")

	log.WithField("output", outputFile).Info("writing fluxes")
	return writeFluxes(outputFile, fluxes)
}
