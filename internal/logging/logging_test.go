package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-threshold messages leaked:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "also shown") {
		t.Errorf("at-threshold messages missing:\n%s", out)
	}
}

func TestWithPrefixTagsLines(t *testing.T) {
	var buf bytes.Buffer
	parent := New(LevelDebug)
	parent.SetOutput(&buf)

	child := parent.WithPrefix("simloop")
	child.Info("tick %d", 7)

	out := buf.String()
	if !strings.Contains(out, "simloop: tick 7") {
		t.Errorf("child line missing prefix:\n%s", out)
	}

	// The parent stays untagged.
	buf.Reset()
	parent.Info("plain")
	if strings.Contains(buf.String(), "simloop") {
		t.Errorf("parent line picked up the child prefix:\n%s", buf.String())
	}
}

func TestDiscardSilences(t *testing.T) {
	l := Discard()
	l.Error("nothing should happen")
}
