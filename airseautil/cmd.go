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

// Package airseautil provides the command-line interface for the
// AirSea bulk flux calculator.
package airseautil

import (
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/airsea"
	"github.com/spatialmodel/airsea/bulk"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the flux
	// calculator.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the path to the NetCDF file holding the input
              state fields.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the NetCDF file of flux fields
              will be written.`,
			shorthand:  "o",
			defaultVal: "fluxes.nc",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Algorithm",
			usage: fmt.Sprintf(`
              Algorithm selects the bulk flux algorithm. The supported
              identifiers are %s (case insensitive).`, strings.Join(bulk.Names(), ", ")),
			shorthand:  "a",
			defaultVal: "coare",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "HeightT",
			usage: `
              HeightT is the height above the sea surface of the air
              temperature and humidity fields [m].`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "HeightU",
			usage: `
              HeightU is the height above the sea surface of the wind
              fields [m].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "SkinTemperature",
			usage: `
              SkinTemperature additionally outputs the (possibly
              cool-skin-corrected) sea surface temperature field.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.SST",
			usage: `
              Vars.SST is the name of the sea surface temperature [K]
              variable in the input file.`,
			defaultVal: "tos",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.TAir",
			usage: `
              Vars.TAir is the name of the air temperature [K] variable in
              the input file.`,
			defaultVal: "tas",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.QAir",
			usage: `
              Vars.QAir is the name of the air specific humidity [kg/kg]
              variable in the input file.`,
			defaultVal: "huss",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.U",
			usage: `
              Vars.U is the name of the eastward wind [m/s] variable in
              the input file.`,
			defaultVal: "uas",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.V",
			usage: `
              Vars.V is the name of the northward wind [m/s] variable in
              the input file.`,
			defaultVal: "vas",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.P",
			usage: `
              Vars.P is the name of the sea level pressure [Pa] variable
              in the input file.`,
			defaultVal: "psl",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.SWDown",
			usage: `
              Vars.SWDown is the name of the downwelling shortwave
              radiation [W/m2] variable in the input file. The cool-skin
              correction is enabled when both radiation variables are
              present in the input file.`,
			defaultVal: "rsds",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Vars.LWDown",
			usage: `
              Vars.LWDown is the name of the downwelling longwave
              radiation [W/m2] variable in the input file.`,
			defaultVal: "rlds",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("AIRSEA")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("airsea: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "airsea",
	Short: "A bulk air-sea turbulent flux calculator.",
	Long: `AirSea computes turbulent air-sea exchange fluxes (latent heat,
sensible heat, and wind stress) from gridded near-surface ocean and
atmosphere state fields, using one of several interchangeable
similarity-theory bulk flux algorithms.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'AIRSEA_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number",
	Long:              "version prints the version number of this version of AirSea.",
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("AirSea v%s\n", airsea.Version)
	},
}

// runCmd computes fluxes for one set of input fields.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute fluxes from a NetCDF input file.",
	Long: `run reads the state fields from the input NetCDF file, computes the
turbulent fluxes over the grid, and writes the flux fields to the output
NetCDF file.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		vars := map[string]string{
			"SST":    Cfg.GetString("Vars.SST"),
			"TAir":   Cfg.GetString("Vars.TAir"),
			"QAir":   Cfg.GetString("Vars.QAir"),
			"U":      Cfg.GetString("Vars.U"),
			"V":      Cfg.GetString("Vars.V"),
			"P":      Cfg.GetString("Vars.P"),
			"SWDown": Cfg.GetString("Vars.SWDown"),
			"LWDown": Cfg.GetString("Vars.LWDown"),
		}
		return Run(
			Cfg.GetString("InputFile"),
			Cfg.GetString("OutputFile"),
			Cfg.GetString("Algorithm"),
			cast.ToFloat64(Cfg.Get("HeightT")),
			cast.ToFloat64(Cfg.Get("HeightU")),
			Cfg.GetBool("SkinTemperature"),
			vars,
		)
	},
}
