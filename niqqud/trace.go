package niqqud

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hebclock.text'
func tracer() tracing.Trace {
	return tracing.Select("hebclock.text")
}
