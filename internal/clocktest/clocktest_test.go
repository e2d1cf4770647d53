package clocktest

import (
	"testing"

	"github.com/npillmayer/hebclock/hebtime"
)

func TestLoadGolden(t *testing.T) {
	g, err := Load(Path(2, "golden.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(g.Cases) < 240 {
		t.Fatalf("expected at least 240 cases, got %d", len(g.Cases))
	}
	c := g.Cases[0]
	h, m, err := c.Time()
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if h != 0 || m != 0 {
		t.Errorf("expected first case at 00:00, got %02d:%02d", h, m)
	}
	if c.Text == "" {
		t.Errorf("expected text for first case")
	}
}

func TestOptionsFromNames(t *testing.T) {
	opts, err := OptionsFromNames([]string{"hashaah", " TimeOfDay", "plain", "literal"})
	if err != nil {
		t.Fatalf("OptionsFromNames: %v", err)
	}
	want := hebtime.Options{ShowHashaah: true, ShowTimeOfDay: true, StripNiqqud: true, LiteralMinutes: true}
	if opts != want {
		t.Errorf("got %+v; want %+v", opts, want)
	}
	if _, err := OptionsFromNames([]string{"diacritics"}); err == nil {
		t.Errorf("expected error for unknown option")
	}
}

func TestCaseTimeInvalid(t *testing.T) {
	if _, _, err := (Case{At: "noon"}).Time(); err == nil {
		t.Errorf("expected error for time %q", "noon")
	}
}
