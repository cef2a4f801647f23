// Package cmd is for command line interactions with the cn2threejs application
package cmd

import (
	"github.com/douglaslab/cn2threejs/internal/log"
	"github.com/douglaslab/cn2threejs/internal/threejs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd converts a cadnano design when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "cn2threejs",
	Short: "Convert a cadnano design to 3D oligo coordinates for three.js",
	Long: `Convert a cadnano design to 3D oligo coordinates for three.js

Every oligo in the design is traced from its 5' end to its 3' end and written
as a polyline midway between its backbone and the axis of each helix it runs
along. The output is a JSON list of {name, color, coords} objects.`,
	Example: `  cn2threejs -i box.json
  cn2threejs -i box.json -o viewer`,
	Run: threejs.ConvertCmd,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(viper.GetBool("verbose"))
	},
	SuggestionsMinimumDistance: 2,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	defer log.Sync()

	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.Flags().StringP("input", "i", "", "cadnano design file <JSON>")
	RootCmd.Flags().StringP("output", "o", "", "output directory, defaults to the input's")
	RootCmd.MarkFlagRequired("input")

	// settings is an optional parameter for a settings file that overrides the defaults
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
