/*
Copyright © 2024 the DEWDB authors.
This file is part of DEWDB.

DEWDB is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DEWDB is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DEWDB.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package dewdbutil provides the command-line interface for converting
// DEW spreadsheet workbooks into YAML species databases.
package dewdbutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/dewdb"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to DEWDB.
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
			name: "Workbooks",
			usage: `
              Workbooks maps database tags to the DEW workbook files to
              convert. For each entry, the files {tag}-aqueous.yaml and
              {tag}-gas.yaml are written to OutputDir. Paths can include
              environment variables.`,
			defaultVal: map[string]string{
				"dew2024": "Latest_DEW2024.xlsm",
				"dew2019": "DEW_2019.xlsm",
			},
			flagsets: []*pflag.FlagSet{buildCmd.Flags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir is the directory the YAML species databases are
              written to. It can include environment variables.`,
			shorthand:  "o",
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("DEWDB")

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
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
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
	Root.AddCommand(buildCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("dewdb: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "dewdb",
	Short: "Convert DEW workbooks into thermodynamic species databases.",
	Long: `DEWDB converts the species tables of DEW (Deep Earth Water) spreadsheet
workbooks into YAML thermodynamic databases for use by chemical
equilibrium engines.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'DEWDB_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of DEWDB.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("DEWDB v%s\n", dewdb.Version)
	},
	DisableAutoGenTag: true,
}

// buildCmd converts the configured workbooks.
var buildCmd = &cobra.Command{
	Use:   "build [workbook tag]",
	Short: "Build YAML species databases from DEW workbooks.",
	Long: `build reads the "Aqueous Species Table" and "Gas Table" sheets from each
configured workbook and writes the species they hold to {tag}-aqueous.yaml
and {tag}-gas.yaml in OutputDir. With a workbook path and a tag given as
arguments, only that workbook is converted.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workbooks := GetStringMapString("Workbooks", Cfg)
		switch len(args) {
		case 1:
			return fmt.Errorf("dewdb: build needs both a workbook path and a tag")
		case 2:
			workbooks = map[string]string{args[1]: args[0]}
		}
		return Build(os.ExpandEnv(Cfg.GetString("OutputDir")), workbooks)
	},
	DisableAutoGenTag: true,
}

// GetStringMapString returns a map[string]string from a viper
// configuration, accounting for the fact that it might be a json object
// if it was set from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for GetStringMapString variable %s: %#v", varName, i))
	}
}
