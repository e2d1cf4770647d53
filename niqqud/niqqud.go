/*
Package niqqud removes Hebrew vowel points and cantillation marks from text.

Fully pointed Hebrew is hard to read on small displays and not every font
carries the marks. Stripping the points leaves the consonantal text, which
is the everyday way to write modern Hebrew. Letters and Hebrew punctuation
(maqaf, paseq, sof pasuq, nun hafukha) are kept.

Presentation forms (U+FB1D…U+FB4F) carry their points built in; they are
decomposed before stripping, so a shin with dagesh and shin dot ends up as a
plain shin.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package niqqud

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	firstPoint = 0x0591 // ETNAHTA, first cantillation mark
	lastPoint  = 0x05C7 // QAMATS QATAN
)

// IsPoint reports whether r is a Hebrew point or cantillation mark, i.e. a
// nonspacing mark of the Hebrew block.
func IsPoint(r rune) bool {
	return r >= firstPoint && r <= lastPoint && unicode.Is(unicode.Mn, r)
}

var points = runes.Predicate(IsPoint)

// Has reports whether s contains at least one Hebrew point, either as a
// combining mark or built into a presentation form.
func Has(s string) bool {
	for _, r := range norm.NFD.String(s) {
		if IsPoint(r) {
			return true
		}
	}
	return false
}

// Strip returns s without Hebrew points. Text without Hebrew is returned
// unchanged; stripping is idempotent.
func Strip(s string) string {
	if !Has(s) {
		return s
	}
	// A transformer holds state and must not be shared between goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(points), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Not expected for valid UTF-8; keep the input rather than lose text.
		tracer().Errorf("niqqud: cannot strip %q: %v", s, err)
		return s
	}
	return out
}
