package hebtime

// TimeOfDay is a coarse segment of the day, derived from the 24-hour value.
type TimeOfDay int

// Segments of the day.
const (
	Night TimeOfDay = iota
	Morning
	Noon
	Afternoon
	Evening
)

// PartOfDay returns the segment of the day for hour (0…23). Minutes do not
// matter. Hours outside 6…20 count as night.
func PartOfDay(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour <= 11:
		return Morning
	case hour >= 12 && hour <= 13:
		return Noon
	case hour >= 14 && hour <= 17:
		return Afternoon
	case hour >= 18 && hour <= 20:
		return Evening
	}
	return Night
}

// String returns an English label.
func (tod TimeOfDay) String() string {
	switch tod {
	case Morning:
		return "morning"
	case Noon:
		return "noon"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return "unknown"
}

// Hebrew returns the phrase appended to a time, e.g. "in the morning".
func (tod TimeOfDay) Hebrew() string {
	switch tod {
	case Morning:
		return "בַּבֹּקֶר"
	case Noon:
		return "בַּצָּהֳרַיִם"
	case Afternoon:
		return "אַחַר־הַצָּהֳרַיִם"
	case Evening:
		return "בָּעֶרֶב"
	}
	return "בַּלַּיְלָה"
}
