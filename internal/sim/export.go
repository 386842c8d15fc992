package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// BodyExport is a JSON-friendly body pose.
type BodyExport struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Kind        string  `json:"kind"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	OrbitRadius float64 `json:"orbit_radius"`
	AngleDeg    float64 `json:"angle_deg"`
	SpinDeg     float64 `json:"spin_deg"`
}

// SnapshotExport is the JSON-serializable representation of simulation state.
type SnapshotExport struct {
	SimTime     float64      `json:"sim_time_seconds"`
	Speed       float64      `json:"speed"`
	Paused      bool         `json:"paused"`
	GeneratedAt time.Time    `json:"generated_at"`
	Bodies      []BodyExport `json:"bodies"`
}

// ExportSnapshot converts a simulation snapshot to an exportable format.
func ExportSnapshot(snap Snapshot, generatedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		SimTime:     snap.SimTime,
		Speed:       snap.Speed,
		Paused:      snap.Paused,
		GeneratedAt: generatedAt,
	}

	for _, st := range snap.Bodies {
		export.Bodies = append(export.Bodies, BodyExport{
			Name:        st.Body.Name,
			Code:        st.Body.Code,
			Kind:        st.Body.Kind.String(),
			X:           st.Pos.X(),
			Y:           st.Pos.Y(),
			Z:           st.Pos.Z(),
			OrbitRadius: st.Body.Orbit.Radius,
			AngleDeg:    st.Body.Orbit.AngleAt(snap.SimTime) * 180 / math.Pi,
			SpinDeg:     st.Spin * 180 / math.Pi,
		})
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (e *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteEphemerisTable writes a plain-text table of body positions.
func WriteEphemerisTable(w io.Writer, snap Snapshot) {
	fmt.Fprintf(w, "Simulation time: %s  (speed %.3gx)\n", FormatSimTime(snap.SimTime), snap.Speed)
	fmt.Fprintln(w, strings.Repeat("-", 68))
	fmt.Fprintf(w, "%-10s %-6s %10s %10s %10s %9s\n", "BODY", "KIND", "X", "Y", "Z", "ANGLE")

	for _, st := range snap.Bodies {
		angle := st.Body.Orbit.AngleAt(snap.SimTime) * 180 / math.Pi
		if st.Body.Orbit.Radius == 0 {
			fmt.Fprintf(w, "%-10s %-6s %10.2f %10.2f %10.2f %9s\n",
				st.Body.Name, st.Body.Kind, st.Pos.X(), st.Pos.Y(), st.Pos.Z(), "-")
			continue
		}
		fmt.Fprintf(w, "%-10s %-6s %10.2f %10.2f %10.2f %8.1f°\n",
			st.Body.Name, st.Body.Kind, st.Pos.X(), st.Pos.Y(), st.Pos.Z(), angle)
	}
}

// FormatSimTime renders a simulation-second count as d/h/m/s.
func FormatSimTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	days := total / 86400
	hours := (total % 86400) / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02dh %02dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %02dm %02ds", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%dm %02ds", mins, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
