/*
Package hebclock tells the time in Hebrew words.

Display surfaces, such as a home-screen widget or a terminal, hand a
wall-clock time to this package and place the resulting phrase verbatim
into a text field:

	opts := hebtime.Options{ShowHashaah: true}
	label := hebclock.Text(time.Now(), opts)

The phrase itself is built by package hebtime from the number words of
package numerals. Package hebclock adds what a surface needs around it:
the language of the text and its writing direction.

There is no scheduling in here. Callers refresh at minute boundaries on
their own.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package hebclock

import (
	"strings"
	"time"

	"github.com/npillmayer/hebclock/hebtime"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// Language is the language of every phrase of this package.
var Language = language.Hebrew

// Text returns the phrase for t, read in t's location. As hour and minute
// come from a calendar clock, Text cannot fail.
func Text(t time.Time, opts hebtime.Options) string {
	return hebtime.MustConvert(t.Hour(), t.Minute(), opts)
}

// Now returns the phrase for the current local time.
func Now(opts hebtime.Options) string {
	return Text(time.Now(), opts)
}

// Direction returns the base direction of text, as given by its first
// strongly directional character. Text without any such character is
// considered left-to-right.
func Direction(text string) bidi.Direction {
	for i := 0; i < len(text); {
		p, size := bidi.LookupString(text[i:])
		if size == 0 {
			break
		}
		switch p.Class() {
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		case bidi.L:
			return bidi.LeftToRight
		}
		i += size
	}
	return bidi.LeftToRight
}

// Directional isolates (Unicode 6.3) to embed right-to-left text.
const (
	rli = "\u2067" // RIGHT-TO-LEFT ISOLATE
	pdi = "\u2069" // POP DIRECTIONAL ISOLATE
)

// Isolate wraps a right-to-left phrase into directional isolates, so it
// keeps its order when printed within left-to-right output. Left-to-right
// text is returned as is, as is text which is already isolated.
func Isolate(text string) string {
	if Direction(text) != bidi.RightToLeft || strings.HasPrefix(text, rli) {
		return text
	}
	return rli + text + pdi
}
