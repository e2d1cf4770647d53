/*
Package clocktest loads golden fixtures for tests of the Hebrew clock.

Fixtures are YAML files under the module's testdata folder. Each case names
a time, a list of options and the expected phrase.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package clocktest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/hebclock/hebtime"
	"gopkg.in/yaml.v3"
)

// Path returns the path of a fixture file, relative to a package folder
// depth levels below the module root.
func Path(depth int, name string) string {
	elems := make([]string, 0, depth+2)
	for i := 0; i < depth; i++ {
		elems = append(elems, "..")
	}
	return filepath.Join(append(elems, "testdata", name)...)
}

// Load parses a golden fixture file.
func Load(path string) (*Golden, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g Golden
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("clocktest: %s: %w", path, err)
	}
	if len(g.Cases) == 0 {
		return nil, fmt.Errorf("clocktest: %s: no cases", path)
	}
	return &g, nil
}

// Time splits At into hour and minute. It does not check ranges; fixtures
// may hold invalid times on purpose.
func (c Case) Time() (hour, minute int, err error) {
	if _, err = fmt.Sscanf(c.At, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("clocktest: invalid time %q: %w", c.At, err)
	}
	return
}

// Opts converts the option names of a case.
func (c Case) Opts() (hebtime.Options, error) {
	return OptionsFromNames(c.Options)
}

// OptionsFromNames maps option names to hebtime.Options. Names are the
// configuration keys of package hebtime.
func OptionsFromNames(names []string) (hebtime.Options, error) {
	var opts hebtime.Options
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case hebtime.KeyHashaah:
			opts.ShowHashaah = true
		case hebtime.KeyTimeOfDay:
			opts.ShowTimeOfDay = true
		case hebtime.KeyPlain:
			opts.StripNiqqud = true
		case hebtime.KeyLiteral:
			opts.LiteralMinutes = true
		default:
			return opts, fmt.Errorf("clocktest: unknown option %q", name)
		}
	}
	return opts, nil
}
