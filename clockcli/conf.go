package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/hebclock/hebtime"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"gopkg.in/yaml.v3"
)

// confPrefix is the key prefix of clock options in the configuration.
const confPrefix = "clock"

// loadConfig reads clock options from a YAML file holding a flat map, e.g.
//
//	hashaah: true
//	timeofday: false
//
// An empty path yields an empty configuration.
func loadConfig(path string) (testconfig.Conf, error) {
	conf := testconfig.Conf{}
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(conf, data)
}

func parseConfig(conf testconfig.Conf, data []byte) (testconfig.Conf, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("cannot read clock configuration: %w", err)
	}
	for k, v := range values {
		switch k {
		case hebtime.KeyHashaah, hebtime.KeyTimeOfDay, hebtime.KeyPlain, hebtime.KeyLiteral:
			conf[confPrefix+"."+k] = v
		default:
			tracer().Infof("ignoring unknown configuration key %q", k)
		}
	}
	return conf, nil
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	hebtime.KeyHashaah: hebtime.KeyHashaah,
	"tod":              hebtime.KeyTimeOfDay,
	hebtime.KeyPlain:   hebtime.KeyPlain,
	hebtime.KeyLiteral: hebtime.KeyLiteral,
}

// optionFlags defines the flags for clock options on fs.
func optionFlags(fs *flag.FlagSet) {
	fs.Bool(hebtime.KeyHashaah, false, "Start phrases with 'the hour is'")
	fs.Bool("tod", false, "Append the time of day")
	fs.Bool(hebtime.KeyPlain, false, "Strip vowel points")
	fs.Bool(hebtime.KeyLiteral, false, "Count all minutes, no idioms")
}

// overrideFromFlags copies option flags given on the command line into conf.
// Flags not given leave values from the configuration file alone.
func overrideFromFlags(fs *flag.FlagSet, conf testconfig.Conf) {
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			conf[confPrefix+"."+key] = f.Value.String()
		}
	})
}
