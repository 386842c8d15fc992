package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-orrery/internal/body"
	"github.com/litescript/ls-orrery/internal/camera"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/sim"
)

// Trajectory sampling: points ahead along the orbit, as a fraction of one
// full revolution, truncated at the first sample outside the extended
// screen margin.
const (
	trajectorySegments   = 96
	trajectoryArc        = 0.75
	trajectoryMarginCell = 12
)

// OrreryModel renders the 3D scene through the camera onto a rune canvas:
// bodies, tracker brackets, trajectory polylines, and the starfield.
type OrreryModel struct {
	width  int
	height int

	cam    *camera.Controller
	logger *logging.Logger

	snapshot sim.Snapshot

	showTrackers     bool
	showTrajectories bool
	showStars        bool
	showHUD          bool

	// Bodies already warned about for non-finite positions.
	warned map[string]bool
}

// NewOrreryModel creates the scene view around a camera controller.
func NewOrreryModel(cam *camera.Controller, logger *logging.Logger) OrreryModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return OrreryModel{
		cam:              cam,
		logger:           logger,
		showTrackers:     true,
		showTrajectories: true,
		showStars:        true,
		showHUD:          true,
		warned:           make(map[string]bool),
	}
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// Tick applies a new simulation snapshot and advances the camera one frame.
func (m OrreryModel) Tick(snap sim.Snapshot) OrreryModel {
	m.snapshot = snap
	lockPos, hasLock := m.lockedBodyPos()
	m.cam.Update(lockPos, hasLock)
	return m
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Overlay toggles
		case "t":
			m.showTrackers = !m.showTrackers
		case "r":
			m.showTrajectories = !m.showTrajectories
		case "b":
			m.showStars = !m.showStars
		case "h":
			m.showHUD = !m.showHUD

		// Free-flight translation
		case "w":
			m.cam.Move(1, 0, 0)
		case "s":
			m.cam.Move(-1, 0, 0)
		case "a":
			m.cam.Move(0, -1, 0)
		case "d":
			m.cam.Move(0, 1, 0)
		case " ":
			m.cam.Move(0, 0, 1)
		case "z":
			m.cam.Move(0, 0, -1)

		case "esc":
			m.cam.ReleaseLock()

		default:
			// Digits 0-8 toggle per-body camera lock, in catalog order.
			if idx, ok := lockIndex(msg.String()); ok && idx < len(m.snapshot.Bodies) {
				b := m.snapshot.Bodies[idx].Body
				m.cam.ToggleLock(b.Code, b.Radius)
			}
		}

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.cam.Zoom(-1)
		case msg.Button == tea.MouseButtonWheelDown:
			m.cam.Zoom(1)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.cam.StartDrag(msg.X, msg.Y)
		case msg.Action == tea.MouseActionMotion:
			m.cam.DragTo(msg.X, msg.Y)
		case msg.Action == tea.MouseActionRelease:
			m.cam.EndDrag()
		}
	}

	return m, nil
}

// lockIndex maps a digit key to a catalog index.
func lockIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '8' {
		return 0, false
	}
	return int(key[0] - '0'), true
}

// lockedBodyPos returns the live position of the locked body, if any.
func (m OrreryModel) lockedBodyPos() (pos mgl64.Vec3, ok bool) {
	code, has := m.cam.Locked()
	if !has {
		return pos, false
	}
	for _, st := range m.snapshot.Bodies {
		if st.Body.Code == code {
			return st.Pos, true
		}
	}
	return pos, false
}

// View renders the scene.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for the orrery view"
	}

	canvas := m.buildCanvas()
	if !m.showHUD {
		return canvas
	}
	return lipgloss.JoinVertical(lipgloss.Left, canvas, m.renderHUD())
}

// canvasHeight returns the rows available for the scene canvas.
func (m OrreryModel) canvasHeight() int {
	h := m.height
	if m.showHUD {
		h -= 3
	}
	if h < 5 {
		h = 5
	}
	return h
}

func (m OrreryModel) buildCanvas() string {
	w := m.width
	h := m.canvasHeight()

	grid := make([][]rune, h)
	colors := make([][]string, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		colors[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	proj := camera.NewProjector(m.cam, w, h)

	if m.showStars {
		m.drawStarfield(grid, proj)
	}
	if m.showTrajectories {
		for _, st := range m.snapshot.Bodies {
			m.drawTrajectory(grid, colors, proj, st)
		}
	}
	m.drawBodies(grid, colors, proj)

	return renderGrid(grid, colors)
}

// drawStarfield paints the background star shell. Stars follow the camera
// position so they behave as a skybox: rotation moves them, translation
// does not.
func (m OrreryModel) drawStarfield(grid [][]rune, proj camera.Projector) {
	h := len(grid)
	w := len(grid[0])
	camPos := m.cam.Position()

	for _, star := range brightStars {
		world := camPos.Add(star.Direction().Mul(starShellRadius))
		x, y, ok := proj.Project(world)
		if !ok || x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		if grid[y][x] != ' ' {
			continue
		}
		grid[y][x] = starGlyph(star.Mag)
	}
}

// drawTrajectory samples the orbit ahead of the body's current angle and
// draws the projected polyline. The polyline stops at the first sample
// that falls outside the extended margin or behind the camera, even if the
// curve would re-enter the viewport later.
func (m OrreryModel) drawTrajectory(grid [][]rune, colors [][]string, proj camera.Projector, st body.State) {
	orbit := st.Body.Orbit
	if orbit.Radius == 0 || orbit.Speed == 0 {
		return
	}

	h := len(grid)
	w := len(grid[0])
	period := 2 * math.Pi / math.Abs(orbit.Speed)

	prevX, prevY := 0, 0
	havePrev := false

	for i := 0; i <= trajectorySegments; i++ {
		t := m.snapshot.SimTime + period*trajectoryArc*float64(i)/trajectorySegments
		x, y, ok := proj.Project(orbit.PositionAt(t))
		if !ok {
			break
		}
		if x < -trajectoryMarginCell || x >= w+trajectoryMarginCell ||
			y < -trajectoryMarginCell || y >= h+trajectoryMarginCell {
			break
		}

		if havePrev {
			plotLine(grid, colors, prevX, prevY, x, y, '·', st.Body.Color)
		}
		prevX, prevY = x, y
		havePrev = true
	}
}

func (m OrreryModel) drawBodies(grid [][]rune, colors [][]string, proj camera.Projector) {
	h := len(grid)
	w := len(grid[0])
	lockedCode, _ := m.cam.Locked()

	for _, st := range m.snapshot.Bodies {
		if !finiteVec(st.Pos) {
			if !m.warned[st.Body.Code] {
				m.logger.Warn("skipping %s: non-finite position", st.Body.Name)
				m.warned[st.Body.Code] = true
			}
			continue
		}

		x, y, ok := proj.Project(st.Pos)
		if !ok || x < 0 || x >= w || y < 0 || y >= h {
			continue
		}

		locked := st.Body.Code == lockedCode
		grid[y][x] = bodyGlyph(st.Body.Kind, locked)
		colors[y][x] = st.Body.Color

		if st.Body.HasRings {
			putIfEmpty(grid, colors, x-1, y, '(', st.Body.Color)
			putIfEmpty(grid, colors, x+1, y, ')', st.Body.Color)
		}

		if m.showTrackers {
			m.drawTracker(grid, colors, proj, st, x, y)
		}

		if locked {
			drawLabel(grid, colors, x+3, y, "◄ "+st.Body.Name, st.Body.Color)
		}
	}
}

// drawTracker draws bracket corners around a body, sized by its apparent
// on-screen size.
func (m OrreryModel) drawTracker(grid [][]rune, colors [][]string, proj camera.Projector, st body.State, x, y int) {
	size := proj.ApparentSize(st.Pos, st.Body.Radius)
	hw := int(math.Round(size)) + 1
	vh := hw / 2
	if vh < 1 {
		vh = 1
	}

	putIfEmpty(grid, colors, x-hw, y-vh, '┌', st.Body.Color)
	putIfEmpty(grid, colors, x+hw, y-vh, '┐', st.Body.Color)
	putIfEmpty(grid, colors, x-hw, y+vh, '└', st.Body.Color)
	putIfEmpty(grid, colors, x+hw, y+vh, '┘', st.Body.Color)
}

func (m OrreryModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	pos := m.cam.Position()

	if code, ok := m.cam.Locked(); ok {
		name := code
		for _, st := range m.snapshot.Bodies {
			if st.Body.Code == code {
				name = st.Body.Name
				break
			}
		}
		b.WriteString(headerStyle.Render("◆ " + name))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Orbit dist: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", m.cam.Distance())))
	} else {
		b.WriteString(headerStyle.Render("Free flight"))
	}
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Cam: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("(%.0f, %.0f, %.0f)", pos.X(), pos.Y(), pos.Z())))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Time: "))
	b.WriteString(valueStyle.Render(sim.FormatSimTime(m.snapshot.SimTime)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Speed: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3gx", m.snapshot.Speed)))
	if m.snapshot.Paused {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render("PAUSED"))
	}
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Trackers:%s  Paths:%s  Stars:%s",
		onOff(m.showTrackers), onOff(m.showTrajectories), onOff(m.showStars))))

	return b.String()
}

// ShowTrackers reports whether tracker overlays are enabled.
func (m OrreryModel) ShowTrackers() bool { return m.showTrackers }

// ShowTrajectories reports whether trajectory overlays are enabled.
func (m OrreryModel) ShowTrajectories() bool { return m.showTrajectories }

// ShowHUD reports whether the HUD block is visible.
func (m OrreryModel) ShowHUD() bool { return m.showHUD }

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func bodyGlyph(kind body.Kind, locked bool) rune {
	switch kind {
	case body.KindStar:
		return '☉'
	case body.KindGiant:
		if locked {
			return '◉'
		}
		return '○'
	default:
		if locked {
			return '●'
		}
		return '•'
	}
}

// putIfEmpty writes a glyph only over empty cells or trajectory dots.
func putIfEmpty(grid [][]rune, colors [][]string, x, y int, r rune, color string) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[0]) {
		return
	}
	if grid[y][x] != ' ' && grid[y][x] != '·' {
		return
	}
	grid[y][x] = r
	colors[y][x] = color
}

// drawLabel writes label text, stopping at the canvas edge.
func drawLabel(grid [][]rune, colors [][]string, x, y int, text, color string) {
	if y < 0 || y >= len(grid) {
		return
	}
	w := len(grid[0])
	for i, r := range text {
		cx := x + i
		if cx < 0 {
			continue
		}
		if cx >= w {
			break
		}
		if grid[y][cx] == ' ' || grid[y][cx] == '·' {
			grid[y][cx] = r
			colors[y][cx] = color
		}
	}
}

// plotLine draws a straight cell run between two points, skipping cells
// that already hold something other than background.
func plotLine(grid [][]rune, colors [][]string, x0, y0, x1, y1 int, glyph rune, color string) {
	dx := x1 - x0
	dy := y1 - y0
	steps := maxInt(absInt(dx), absInt(dy))
	if steps == 0 {
		putIfEmpty(grid, colors, x0, y0, glyph, color)
		return
	}

	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		putIfEmpty(grid, colors, x, y, glyph, color)
	}
}

// renderGrid converts the rune canvas into a styled string. Cells carrying
// an explicit color use it; everything else gets a glyph-class style.
func renderGrid(grid [][]rune, colors [][]string) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	for y, row := range grid {
		for x, ch := range row {
			if ch == ' ' {
				b.WriteRune(ch)
				continue
			}

			if c := colors[y][x]; c != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(ch)))
				continue
			}

			switch ch {
			case '✦', '˙':
				b.WriteString(starStyle.Render(string(ch)))
			default:
				b.WriteString(dimStyle.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func finiteVec(v mgl64.Vec3) bool {
	for _, f := range []float64{v.X(), v.Y(), v.Z()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
