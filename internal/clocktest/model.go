package clocktest

// Golden is a set of expected clock phrases as read from a fixture file.
type Golden struct {
	Cases []Case `yaml:"cases"`
}

// Case is one expected phrase. At is a 24-hour time "HH:MM"; Options lists
// option names as understood by OptionsFromNames.
type Case struct {
	At      string   `yaml:"at"`
	Options []string `yaml:"options"`
	Text    string   `yaml:"text"`
}
