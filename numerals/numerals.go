package numerals

import "fmt"

// Hour returns the absolute name of hour h12, which must be in 1…12.
func Hour(h12 int) string {
	assertInRange("hour", h12, 1, 12)
	return hours[h12]
}

// Absolute returns the standalone form of n, which must be in 1…59.
// Compound numbers are written tens first, the ones joined by a
// conjunctive form ("twenty and three").
func Absolute(n int) string {
	assertInRange("absolute numeral", n, 1, 59)
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n]
	}
	t, o := n/10*10, n%10
	if o == 0 {
		return tens[t]
	}
	return tens[t] + " " + onesConjunctive[o]
}

// Conjunctive returns the form of n following a preceding "and", as used for
// minutes after the hour name. n must be in 3…59; 1 and 2 are never counted
// with a numeral on a clock, they use the minute nouns.
//
// Conjunctive panics for values outside its domain. Callers validate time
// values before they get here, so an out-of-range n is a programming error.
func Conjunctive(n int) string {
	assertInRange("conjunctive numeral", n, 3, 59)
	switch {
	case n < 10:
		return onesConjunctive[n]
	case n < 20:
		return teensConjunctive[n]
	}
	t, o := n/10*10, n%10
	if o == 0 {
		return tensConjunctive[t]
	}
	return tensConjunctive[t] + " " + onesConjunctive[o]
}

// Lamed prefixes the name of hour h12 with the preposition "to" (ל).
//
// Before the hours 2, 8 and 12 the preposition is vocalized with hiriq, as
// their names start with a sheva; all other hours take the sheva form.
// The set is a fixed fact of the language, not a rule to compute.
func Lamed(h12 int) string {
	name := Hour(h12)
	switch h12 {
	case 2, 8, 12:
		return lamedHiriq + name
	}
	return lamedSheva + name
}

// NextHour returns the hour following h12 on a 12-hour dial.
func NextHour(h12 int) int {
	assertInRange("hour", h12, 1, 12)
	if h12 == 12 {
		return 1
	}
	return h12 + 1
}

func assertInRange(name string, n, lo, hi int) {
	if n < lo || n > hi {
		panic(fmt.Sprintf("assertion [%s] failed: %d not in %d…%d", name, n, lo, hi))
	}
}
