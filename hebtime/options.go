package hebtime

import (
	"fmt"

	"github.com/npillmayer/schuko"
)

// Options control how a time is phrased. The zero value yields the bare
// phrase: no prefix, no time of day, fully pointed, with idioms.
type Options struct {
	ShowHashaah    bool // start with "הַשָּׁעָה" ("the hour is")
	ShowTimeOfDay  bool // append the segment of the day, e.g. "in the evening"
	StripNiqqud    bool // remove vowel points from the phrase
	LiteralMinutes bool // count 5, 10, 15, 30, 45, 50 and 55 in minutes, no idioms
}

func (o Options) String() string {
	return fmt.Sprintf("hashaah=%v timeofday=%v plain=%v literal=%v",
		o.ShowHashaah, o.ShowTimeOfDay, o.StripNiqqud, o.LiteralMinutes)
}

// Configuration keys, relative to a prefix given to OptionsFromConfig.
const (
	KeyHashaah   = "hashaah"
	KeyTimeOfDay = "timeofday"
	KeyPlain     = "plain"
	KeyLiteral   = "literal"
)

// OptionsFromConfig reads options from a configuration. Keys are looked up
// as "<prefix>.<key>"; with an empty prefix the bare keys are used. Missing
// keys leave an option turned off.
func OptionsFromConfig(conf schuko.Configuration, prefix string) Options {
	if conf == nil {
		return Options{}
	}
	key := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	opts := Options{
		ShowHashaah:    conf.GetBool(key(KeyHashaah)),
		ShowTimeOfDay:  conf.GetBool(key(KeyTimeOfDay)),
		StripNiqqud:    conf.GetBool(key(KeyPlain)),
		LiteralMinutes: conf.GetBool(key(KeyLiteral)),
	}
	tracer().Debugf("options from configuration: %s", opts)
	return opts
}
