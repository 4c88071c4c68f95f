// Package config holds the process-wide assembly settings, unmarshalled from
// Viper (defaults, an optional settings file, and flags bound by cmd/).
package config

import (
	"github.com/spf13/viper"

	"github.com/Xiuying/assemblyline/assemble"
)

// Settings are the assembly tunables as they appear in settings files and on
// the command line.
type Settings struct {
	// cap on the k-mer window-size search; 0 derives it from the data
	KmerMax int `mapstructure:"kmax"`

	// minimum fraction of evidence a candidate k must retain;
	// 0 disables the search
	KSensitivity float64 `mapstructure:"ksensitivity"`

	// minimum score, relative to the best path, for an isoform to be reported
	FractionMajorPath float64 `mapstructure:"fraction-major-path"`

	// cap on the number of reported isoforms
	MaxPaths int `mapstructure:"max-paths"`
}

// New returns Settings populated from Viper, with the assembly defaults
// filled in for anything not set by file or flag.
func New() (Settings, error) {
	def := assemble.DefaultOptions()
	viper.SetDefault("kmax", def.KmaxUser)
	viper.SetDefault("ksensitivity", def.KSensitivity)
	viper.SetDefault("fraction-major-path", def.FractionMajorPath)
	viper.SetDefault("max-paths", def.MaxPaths)

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Options converts the settings into per-call assembly options.
func (s Settings) Options() assemble.Options {
	return assemble.Options{
		KmaxUser:          s.KmerMax,
		KSensitivity:      s.KSensitivity,
		FractionMajorPath: s.FractionMajorPath,
		MaxPaths:          s.MaxPaths,
	}
}
