package sim

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExportSnapshotWriteJSON(t *testing.T) {
	m := newTestManager(4.0)
	m.Seek(1234)

	export := ExportSnapshot(m.Snapshot(), time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded SnapshotExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round-trip decode: %v", err)
	}

	if decoded.SimTime != 1234 {
		t.Errorf("sim_time = %v, want 1234", decoded.SimTime)
	}
	if decoded.Speed != 4.0 {
		t.Errorf("speed = %v, want 4.0", decoded.Speed)
	}
	if len(decoded.Bodies) != 9 {
		t.Fatalf("expected 9 bodies, got %d", len(decoded.Bodies))
	}

	sun := decoded.Bodies[0]
	if sun.Code != "SUN" || sun.Kind != "star" {
		t.Errorf("first exported body = %+v, want the Sun", sun)
	}
	if sun.X != 0 || sun.Y != 0 || sun.Z != 0 {
		t.Errorf("Sun should sit at the origin, got (%v, %v, %v)", sun.X, sun.Y, sun.Z)
	}

	for _, b := range decoded.Bodies[1:] {
		if b.AngleDeg < 0 || b.AngleDeg >= 360 {
			t.Errorf("%s angle %v outside [0, 360)", b.Name, b.AngleDeg)
		}
	}
}

func TestWriteEphemerisTable(t *testing.T) {
	m := newTestManager(1.0)
	m.Seek(500)

	var buf bytes.Buffer
	WriteEphemerisTable(&buf, m.Snapshot())
	out := buf.String()

	for _, want := range []string{"BODY", "Sun", "Earth", "Neptune", "Simulation time"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if lines := strings.Count(out, "\n"); lines < 11 {
		t.Errorf("expected at least 11 lines, got %d", lines)
	}
}

func TestFormatSimTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0s"},
		{42, "42s"},
		{90, "1m 30s"},
		{3725, "1h 02m 05s"},
		{90000, "1d 01h 00m"},
		{-5, "0s"},
	}

	for _, tt := range tests {
		if got := FormatSimTime(tt.seconds); got != tt.want {
			t.Errorf("FormatSimTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
