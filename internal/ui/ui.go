// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/camera"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/version"
)

// Msg types for Bubble Tea
type (
	// FrameMsg carries a fresh simulation snapshot from the sim loop.
	FrameMsg struct {
		Snapshot sim.Snapshot
	}

	// updateCheckMsg contains the result of a version check.
	updateCheckMsg struct {
		info version.UpdateInfo
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	sim *sim.Manager
	cam *camera.Controller

	// UI state
	width     int
	height    int
	ready     bool
	statusMsg string

	// Sub-model
	scene OrreryModel

	snapshot sim.Snapshot
}

// New creates a new root UI model.
func New(simMgr *sim.Manager, cam *camera.Controller, logger *logging.Logger) Model {
	return Model{
		sim:   simMgr,
		cam:   cam,
		scene: NewOrreryModel(cam, logger),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "p":
			m.sim.TogglePause()

		case "+", "=":
			m.sim.AdjustSpeed(true)
		case "-":
			m.sim.AdjustSpeed(false)

		case "u":
			m.statusMsg = "Checking for updates..."
			cmds = append(cmds, checkForUpdate())

		default:
			// Everything else belongs to the scene: toggles, movement,
			// lock digits.
			var cmd tea.Cmd
			m.scene, cmd = m.scene.Update(msg)
			cmds = append(cmds, cmd)
		}

	case updateCheckMsg:
		if msg.info.Error != nil {
			m.statusMsg = fmt.Sprintf("Update check failed: %v", msg.info.Error)
		} else if msg.info.UpdateAvailable {
			m.statusMsg = fmt.Sprintf("Update available: v%s → v%s",
				msg.info.CurrentVersion, msg.info.LatestVersion)
		} else {
			m.statusMsg = fmt.Sprintf("You're on the latest version (v%s)", msg.info.CurrentVersion)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header is 2 lines, footer 2 lines.
		contentHeight := msg.Height - 4
		m.scene = m.scene.SetSize(msg.Width, contentHeight)

	case FrameMsg:
		m.snapshot = msg.Snapshot
		m.scene = m.scene.Tick(msg.Snapshot)

	default:
		var cmd tea.Cmd
		m.scene, cmd = m.scene.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return m.renderHeader() + "\n" + m.scene.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("  LS-ORRERY")
	tag := muted.Render(fmt.Sprintf("  Solar System · Interactive 3D Orrery | v%s", version.Version))
	return title + tag + "\n"
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	var status string
	if m.snapshot.Paused {
		status = accentStyle.Render("⏸ paused")
	} else {
		status = accentStyle.Render(fmt.Sprintf("▶ %.3gx", m.snapshot.Speed))
	}

	help := dimStyle.Render("drag: orbit | wheel: zoom | 0-8: lock | wasd/space/z: move | p: pause | t/r/b: overlays | h: hud | q: quit")

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

// Scene returns the scene sub-model, for tests.
func (m Model) Scene() OrreryModel {
	return m.scene
}

func checkForUpdate() tea.Cmd {
	return func() tea.Msg {
		info := version.CheckForUpdate()
		return updateCheckMsg{info: info}
	}
}

// SendFrame creates a command that delivers a simulation snapshot.
func SendFrame(snapshot sim.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return FrameMsg{Snapshot: snapshot}
	}
}
