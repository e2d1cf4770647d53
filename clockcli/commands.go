package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/hebclock"
	"github.com/npillmayer/hebclock/hebtime"
	"github.com/pterm/pterm"
)

// Op is a parsed REPL command.
type Op struct {
	code int
	args []string
}

const (
	QUIT int = iota
	HELP
	TIME
	NOW
	SET
	OPTIONS
	HOUR
	NUMERALS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"exit":     QUIT,
	"help":     HELP,
	"time":     TIME,
	"now":      NOW,
	"set":      SET,
	"options":  OPTIONS,
	"hour":     HOUR,
	"numerals": NUMERALS,
}

var opNames = []string{
	"quit",
	"help",
	"time",
	"now",
	"set",
	"options",
	"hour",
	"numerals",
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	TIME:     timeOp,
	NOW:      nowOp,
	SET:      setOp,
	OPTIONS:  optionsOp,
	HOUR:     hourOp,
	NUMERALS: numeralsOp,
}

// parseCommand splits a line into a command word and its arguments.
// A bare time "HH:MM" is short for "time HH:MM"; unknown words show help.
func parseCommand(line string) (*Op, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil, errors.New("empty command")
	}
	if strings.Contains(words[0], ":") {
		return &Op{code: TIME, args: words}, nil
	}
	code, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		tracer().Infof("unknown command %q", words[0])
		code = HELP
	}
	op := &Op{code: code, args: words[1:]}
	tracer().Debugf("parsed command: %s %v", opNames[code], op.args)
	return op, nil
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	if err, stop = f(intp, op); err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func timeOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.arg(0)
	if !ok {
		return errors.New("usage: time HH:MM"), false
	}
	return intp.printTime(arg), false
}

func nowOp(intp *Intp, op *Op) (error, bool) {
	now := time.Now()
	pterm.Printf("%s  %s\n", now.Format("15:04"), intp.display(hebclock.Text(now, intp.opts)))
	return nil, false
}

func setOp(intp *Intp, op *Op) (error, bool) {
	name, ok1 := op.arg(0)
	value, ok2 := op.arg(1)
	if !ok1 || !ok2 {
		return errors.New("usage: set <hashaah|tod|plain|literal> <on|off>"), false
	}
	on, err := parseSwitch(value)
	if err != nil {
		return err, false
	}
	switch strings.ToLower(name) {
	case hebtime.KeyHashaah:
		intp.opts.ShowHashaah = on
	case "tod", hebtime.KeyTimeOfDay:
		intp.opts.ShowTimeOfDay = on
	case hebtime.KeyPlain:
		intp.opts.StripNiqqud = on
	case hebtime.KeyLiteral:
		intp.opts.LiteralMinutes = on
	default:
		return fmt.Errorf("unknown option %q", name), false
	}
	tracer().Infof("options now %s", intp.opts)
	return nil, false
}

func optionsOp(intp *Intp, op *Op) (error, bool) {
	data := [][]string{
		{"Option", "Value"},
		{hebtime.KeyHashaah, onOff(intp.opts.ShowHashaah)},
		{"tod", onOff(intp.opts.ShowTimeOfDay)},
		{hebtime.KeyPlain, onOff(intp.opts.StripNiqqud)},
		{hebtime.KeyLiteral, onOff(intp.opts.LiteralMinutes)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func hourOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.arg(0)
	if !ok {
		return errors.New("usage: hour <0…23>"), false
	}
	hour, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("not an hour: %q", arg), false
	}
	return intp.printHour(hour), false
}

func numeralsOp(intp *Intp, op *Op) (error, bool) {
	printNumerals(intp.opts.StripNiqqud)
	return nil, false
}

// --- Helpers ----------------------------------------------------------

// printTime prints the phrase for a time given as "HH:MM".
func (intp *Intp) printTime(clock string) error {
	hour, minute, err := parseClock(clock)
	if err != nil {
		return err
	}
	s, err := hebtime.Convert(hour, minute, intp.opts)
	if err != nil {
		return err
	}
	pterm.Printf("%02d:%02d  %s\n", hour, minute, intp.display(s))
	return nil
}

func (intp *Intp) display(s string) string {
	if intp.isolate {
		return hebclock.Isolate(s)
	}
	return s
}

func parseClock(s string) (hour, minute int, err error) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, fmt.Errorf("time must be given as HH:MM, is %q", s)
	}
	if hour, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	if minute, err = strconv.Atoi(m); err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (op *Op) arg(inx int) (string, bool) {
	if inx < len(op.args) {
		return op.args[inx], true
	}
	return "", false
}
