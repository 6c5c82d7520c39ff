// Command pgnames-tui is an interactive galaxy browser: list the
// hand-authored sectors and look up sector/system names against the
// pgnames codec.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/starfield-tools/pgnames/internal/pgdata"
	"github.com/starfield-tools/pgnames/pgnames"
)

var (
	titleStyle         = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	statusMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	errorMessageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	tableStyle         = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render
)

// Model holds the TUI's state: a browse view listing the hand-authored
// sectors, and a lookup view for resolving an arbitrary name.
type Model struct {
	browseView bool
	lookupView bool

	haTable   table.Model
	nameInput textinput.Model

	resultText    string
	statusMessage string
	errorMessage  string
}

// Initialize returns the model's starting state.
func Initialize() Model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Shape", Width: 10},
		{Title: "Centre", Width: 24},
		{Title: "Mass Code", Width: 10},
	}

	names := make([]string, 0, len(pgdata.HASectors))
	for key := range pgdata.HASectors {
		names = append(names, key)
	}
	sort.Strings(names)

	var rows []table.Row
	for _, key := range names {
		sec := pgdata.HASectors[key]
		shape := "sphere"
		if sec.Kind == pgdata.HABox {
			shape = "box"
		}
		centre := fmt.Sprintf("%.0f, %.0f, %.0f", sec.Centre[0], sec.Centre[1], sec.Centre[2])
		rows = append(rows, table.Row{sec.Name, shape, centre, string(sec.MassCode)})
	}

	haTable := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	ti := textinput.New()
	ti.Placeholder = "Sector or system name"
	ti.CharLimit = 64
	ti.Width = 40

	return Model{
		browseView:    true,
		haTable:       haTable,
		nameInput:     ti,
		statusMessage: "Browse hand-authored sectors, or press tab to look up a name.",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.browseView = !m.browseView
			m.lookupView = !m.lookupView
			if m.lookupView {
				m.nameInput.Focus()
			}
			return m, nil

		case "enter":
			if m.lookupView {
				m.resolve(m.nameInput.Value())
				return m, nil
			}
		}
	}

	if m.browseView {
		newTable, cmd := m.haTable.Update(msg)
		m.haTable = newTable
		cmds = append(cmds, cmd)
	}
	if m.lookupView {
		newInput, cmd := m.nameInput.Update(msg)
		m.nameInput = newInput
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// resolve looks up name as a system first, falling back to a sector,
// and records the outcome in resultText/errorMessage.
func (m *Model) resolve(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		m.errorMessage = "Enter a name first"
		m.statusMessage = ""
		return
	}

	if sys, err := pgnames.GetSystem(name); err == nil {
		m.resultText = fmt.Sprintf("%s\nposition: (%.1f, %.1f, %.1f)\nuncertainty: +/-%.1f ly\nsector: %s",
			sys.Name, sys.Position.X, sys.Position.Y, sys.Position.Z, sys.Uncertainty, sys.Sector.Name)
		m.statusMessage = statusMessageStyle.Render("Resolved as a system")
		m.errorMessage = ""
		return
	}

	sec, err := pgnames.GetSector(name)
	if err != nil {
		m.resultText = ""
		m.errorMessage = errorMessageStyle.Render(err.Error())
		m.statusMessage = ""
		return
	}

	kind := "procedural"
	if sec.Kind == pgnames.SectorHA {
		kind = "hand-authored"
	}
	m.resultText = fmt.Sprintf("%s (%s, class %d)\norigin: (%.1f, %.1f, %.1f)", sec.Name, kind, sec.Class, sec.Origin.X, sec.Origin.Y, sec.Origin.Z)
	m.statusMessage = statusMessageStyle.Render("Resolved as a sector")
	m.errorMessage = ""
}

func (m Model) View() string {
	if m.lookupView {
		var view strings.Builder
		view.WriteString(titleStyle.Render("pgnames - Lookup") + "\n\n")
		view.WriteString(m.nameInput.View() + "\n\n")
		if m.resultText != "" {
			view.WriteString(m.resultText + "\n\n")
		}
		view.WriteString(m.statusMessage + "\n" + m.errorMessage + "\n\n")
		view.WriteString(helpStyle("enter: resolve, tab: browse, q: quit"))
		return view.String()
	}

	return titleStyle.Render("pgnames - Hand-Authored Sectors") + "\n\n" +
		tableStyle.Render(m.haTable.View()) + "\n\n" +
		m.statusMessage + "\n" + m.errorMessage + "\n\n" +
		helpStyle("tab: lookup, q: quit")
}

func main() {
	logFile := flag.String("log", "", "write debug log to this file")
	flag.Parse()

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "debug")
		if err != nil {
			fmt.Println("Fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	p := tea.NewProgram(Initialize(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
