/*
Package hebtime renders a time of day as a Hebrew phrase, the way people
read a clock aloud.

	s, err := hebtime.Convert(14, 15, hebtime.Options{ShowHashaah: true})
	// s == "הַשָּׁעָה שְׁתַּיִם וָרֶבַע"  ("the hour is two and a quarter")

The hour is read on a 12-hour dial. Minutes are counted with conjunctive
numerals after the hour name, with the usual short forms for five, ten,
quarter and half past. From a quarter to the hour on, the phrase counts back
from the next hour ("a quarter to three").

Conversion is a pure function: it has no state, performs no I/O and is safe
for concurrent use. The only error is an argument out of range, reported as
an *ArgumentError matching ErrInvalidArgument.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package hebtime

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hebclock.time'
func tracer() tracing.Trace {
	return tracing.Select("hebclock.time")
}
