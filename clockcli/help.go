package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	topic, _ := op.arg(0)
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "set", "options", "option":
		pterm.Info.Println("Options")
		pterm.Println(`
	set hashaah on|off   start with "the hour is" (הַשָּׁעָה)
	set tod on|off       append the time of day (morning, noon, …)
	set plain on|off     strip vowel points (niqqud)
	set literal on|off   count 5, 10, 15, 30, 45, 50, 55 in minutes,
	                     no "quarter past" or "ten to"
	options              show the current settings
	`)
	case "time", "now", "hour":
		pterm.Info.Println("Telling the time")
		pterm.Println(`
	time HH:MM   phrase for a 24-hour time, e.g. "time 14:15"
	HH:MM        the same, without the command word
	now          phrase for the current local time
	hour H       table of all minutes of hour H (0…23)
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	time HH:MM | now | hour H      tell the time
	set <option> on|off | options  change and show options
	numerals                       table of number words
	help [topic] | quit
	`)
	}
}
