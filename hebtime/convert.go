package hebtime

import (
	"strings"

	"github.com/npillmayer/hebclock/niqqud"
	"github.com/npillmayer/hebclock/numerals"
)

// Convert returns the Hebrew phrase for hour:minute, with hour in 24-hour
// format (0…23) and minute in 0…59.
//
// If an argument is out of range, Convert returns an *ArgumentError and no
// text. Hour is checked first.
func Convert(hour, minute int, opts Options) (string, error) {
	if err := checkRange("hour", hour, 0, 23); err != nil {
		return "", err
	}
	if err := checkRange("minute", minute, 0, 59); err != nil {
		return "", err
	}
	s := phrase(hour, minute, opts)
	tracer().Debugf("%02d:%02d [%s] => %s", hour, minute, opts, s)
	return s, nil
}

// MustConvert is like Convert but panics if an argument is out of range.
// It is meant for callers which take hour and minute from a clock.
func MustConvert(hour, minute int, opts Options) string {
	s, err := Convert(hour, minute, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Hour12 maps a 24-hour value onto the 12-hour dial; midnight and noon
// both map to 12.
func Hour12(hour int) int {
	switch {
	case hour == 0:
		return 12
	case hour <= 12:
		return hour
	}
	return hour - 12
}

// literalMinute reports whether minute has an idiom which is spelled out in
// minutes if Options.LiteralMinutes is set.
func literalMinute(minute int) bool {
	switch minute {
	case 5, 10, 15, 30, 45, 50, 55:
		return true
	}
	return false
}

// phrase expects validated arguments.
func phrase(hour, minute int, opts Options) string {
	h12 := Hour12(hour)
	var b strings.Builder
	if opts.LiteralMinutes && literalMinute(minute) {
		writeHour(&b, h12, opts)
		b.WriteString(" " + numerals.Conjunctive(minute) + " " + numerals.Minutes)
	} else {
		writeBody(&b, h12, minute, opts)
	}
	if opts.ShowTimeOfDay {
		b.WriteString(" " + PartOfDay(hour).Hebrew())
	}
	if opts.StripNiqqud {
		return niqqud.Strip(b.String())
	}
	return b.String()
}

// writeBody writes the minute-dependent part of the phrase. Idioms are
// checked before the generic numeral form; the order matters.
func writeBody(b *strings.Builder, h12, minute int, opts Options) {
	switch minute {
	case 0:
		writeHour(b, h12, opts)
	case 1:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.AndOneMinute)
	case 2:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.AndTwoMinutes)
	case 5:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.AndFive)
	case 10:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.AndTen)
	case 15:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.AndQuarter)
	case 20, 40:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.Conjunctive(minute))
	case 30:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.AndHalf)
	case 45:
		b.WriteString(numerals.QuarterTo + " " + numerals.Lamed(numerals.NextHour(h12)))
	case 50:
		b.WriteString(numerals.TenTo + " " + numerals.Lamed(numerals.NextHour(h12)))
	case 55:
		b.WriteString(numerals.FiveTo + " " + numerals.Lamed(numerals.NextHour(h12)))
	default:
		writeHour(b, h12, opts)
		b.WriteString(" " + numerals.Conjunctive(minute) + " " + numerals.Minutes)
	}
}

// writeHour writes the optional prefix and the name of the current hour.
// Phrases counting back from the next hour do not call it.
func writeHour(b *strings.Builder, h12 int, opts Options) {
	if opts.ShowHashaah {
		b.WriteString(numerals.TheHour + " ")
	}
	b.WriteString(numerals.Hour(h12))
}
