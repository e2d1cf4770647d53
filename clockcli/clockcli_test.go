package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/npillmayer/hebclock/hebtime"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseClock(t *testing.T) {
	h, m, err := parseClock("14:05")
	if err != nil || h != 14 || m != 5 {
		t.Fatalf("parseClock(14:05) = %d, %d, %v", h, m, err)
	}
	for _, s := range []string{"1405", "a:b", "12:", ":30"} {
		if _, _, err := parseClock(s); err == nil {
			t.Errorf("parseClock(%q) should fail", s)
		}
	}
	// range checks are left to the converter
	if h, m, err := parseClock("25:61"); err != nil || h != 25 || m != 61 {
		t.Errorf("parseClock(25:61) = %d, %d, %v", h, m, err)
	}
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hebclock.cli")
	defer teardown()
	tests := []struct {
		line string
		code int
		args int
	}{
		{"time 14:15", TIME, 1},
		{"14:15", TIME, 1},
		{"NOW", NOW, 0},
		{"set plain on", SET, 2},
		{"frobnicate", HELP, 0},
		{"quit", QUIT, 0},
	}
	for _, tt := range tests {
		op, err := parseCommand(tt.line)
		if err != nil {
			t.Fatalf("parseCommand(%q): %v", tt.line, err)
		}
		if op.code != tt.code || len(op.args) != tt.args {
			t.Errorf("parseCommand(%q) = %d %v; want code %d with %d args", tt.line, op.code, op.args, tt.code, tt.args)
		}
	}
	if _, err := parseCommand("   "); err == nil {
		t.Errorf("expected error for empty command")
	}
}

func TestSetOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hebclock.cli")
	defer teardown()
	intp := &Intp{}
	for _, line := range []string{"set hashaah on", "set tod yes", "set plain 1", "set literal true"} {
		op, _ := parseCommand(line)
		if err, quit := intp.execute(op); err != nil || quit {
			t.Fatalf("%q: err=%v quit=%v", line, err, quit)
		}
	}
	want := hebtime.Options{ShowHashaah: true, ShowTimeOfDay: true, StripNiqqud: true, LiteralMinutes: true}
	if intp.opts != want {
		t.Errorf("options = %+v; want %+v", intp.opts, want)
	}
	op, _ := parseCommand("set colour on")
	if err, _ := intp.execute(op); err == nil {
		t.Errorf("expected error for unknown option")
	}
	op, _ = parseCommand("set plain maybe")
	if err, _ := intp.execute(op); err == nil {
		t.Errorf("expected error for invalid switch")
	}
}

func TestIntpShowsOptions(t *testing.T) {
	intp := &Intp{opts: hebtime.Options{ShowTimeOfDay: true}}
	if s := intp.String(); !strings.Contains(s, "timeofday=true") || !strings.Contains(s, "hashaah=false") {
		t.Errorf("prompt line = %q; should list the active options", s)
	}
	var none *Intp
	if none.String() != "()" {
		t.Errorf("nil interpreter should print as ()")
	}
}

func TestParseConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hebclock.cli")
	defer teardown()
	conf, err := parseConfig(testconfig.Conf{}, []byte("hashaah: true\ntimeofday: false\nliteral: true\ncolour: blue\n"))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	opts := hebtime.OptionsFromConfig(conf, confPrefix)
	want := hebtime.Options{ShowHashaah: true, LiteralMinutes: true}
	if opts != want {
		t.Errorf("options = %+v; want %+v", opts, want)
	}
	if conf.IsSet(confPrefix + ".colour") {
		t.Errorf("unknown key should be ignored")
	}
	if _, err := parseConfig(testconfig.Conf{}, []byte("hashaah: [")); err == nil {
		t.Errorf("expected error for malformed YAML")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hebclock.cli")
	defer teardown()
	conf, err := parseConfig(testconfig.Conf{}, []byte("hashaah: true\nplain: true\n"))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	fs := flag.NewFlagSet("clock", flag.ContinueOnError)
	optionFlags(fs)
	if err := fs.Parse([]string{"-hashaah=false", "-tod"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	overrideFromFlags(fs, conf)
	opts := hebtime.OptionsFromConfig(conf, confPrefix)
	want := hebtime.Options{ShowTimeOfDay: true, StripNiqqud: true}
	if opts != want {
		t.Errorf("options = %+v; want %+v", opts, want)
	}
}

func TestPrintDay(t *testing.T) {
	var buf bytes.Buffer
	if err := printDay(&buf, hebtime.Options{ShowHashaah: true}); err != nil {
		t.Fatalf("printDay: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Hebrew word clock [he]") {
		t.Errorf("header should carry the language tag")
	}
	if n := strings.Count(out, " → "); n != 24*60 {
		t.Errorf("expected %d phrases, got %d", 24*60, n)
	}
	if !strings.Contains(out, "23:59 → "+hebtime.MustConvert(23, 59, hebtime.Options{ShowHashaah: true})) {
		t.Errorf("last minute of the day is missing")
	}
}
