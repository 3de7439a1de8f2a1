package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLevelGating(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("warned")
	l.Errorf("errored")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	for _, want := range []string{"INFO: shown 2", "WARN: warned", "ERROR: errored"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Errorf("silent")
	if buf.Len() != 0 {
		t.Fatalf("LevelNone still wrote: %q", buf.String())
	}
}

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"Error": LevelError,
		"none":  LevelNone,
		"bogus": LevelDebug,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Fatalf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
	if LevelInfo.String() != "INFO" || Level(99).String() != "UNKNOWN" {
		t.Fatalf("String roundtrip broken")
	}
}
