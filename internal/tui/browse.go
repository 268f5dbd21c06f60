// Package tui provides the interactive browser for the registered
// models and parameter sets.
package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	supercapacitors "github.com/mmsg-warwick/supercapacitors"
	"github.com/mmsg-warwick/supercapacitors/export"
	"github.com/mmsg-warwick/supercapacitors/internal/render"
)

type pane int

const (
	paneModels pane = iota
	paneSets
)

type model struct {
	pane   pane
	cursor int
	models []string
	sets   []string
	detail string
	width  int
	height int
}

// New builds the browser over the current registries.
func New() model {
	return model{
		models: supercapacitors.Models(),
		sets:   supercapacitors.ParameterSets(),
		width:  80,
		height: 24,
	}
}

// Browse runs the browser until the user quits.
func Browse() error {
	_, err := tea.NewProgram(New(), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail != "" {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.detail = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "left", "right":
		if m.pane == paneModels {
			m.pane = paneSets
		} else {
			m.pane = paneModels
		}
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}
	case "enter":
		m.detail = m.describe(m.items()[m.cursor])
	}
	return m, nil
}

func (m model) items() []string {
	if m.pane == paneModels {
		return m.models
	}
	return m.sets
}

func (m model) describe(name string) string {
	if m.pane == paneModels {
		return describeModel(name)
	}
	return describeSet(name)
}

func describeModel(name string) string {
	def, err := supercapacitors.NewModel(name)
	if err != nil {
		return err.Error()
	}
	summary := export.Summarize(def)

	var b strings.Builder
	b.WriteString(render.Title.Render(summary.Name) + "\n\n")
	b.WriteString(render.KeyValue("differential equations", strconv.Itoa(summary.Differential)) + "\n")
	b.WriteString(render.KeyValue("algebraic equations", strconv.Itoa(summary.Algebraic)) + "\n")
	b.WriteString(render.KeyValue("parameters", strconv.Itoa(len(summary.Parameters))) + "\n\n")

	b.WriteString(render.Header.Render("variables") + "\n")
	for _, v := range def.VariableNames() {
		domains := "time only"
		if ds := def.Variables[v].Domains; len(ds) > 0 {
			names := make([]string, len(ds))
			for i, d := range ds {
				names[i] = string(d)
			}
			domains = strings.Join(names, ", ")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", v, render.Dim.Render("("+domains+")")))
	}

	b.WriteString("\n" + render.Header.Render("outputs") + "\n")
	for _, o := range summary.Outputs {
		b.WriteString("  " + o + "\n")
	}
	return b.String()
}

func describeSet(name string) string {
	values, err := supercapacitors.GetParameterValues(name)
	if err != nil {
		return err.Error()
	}
	snap := export.Snapshot(name, values)

	var b strings.Builder
	b.WriteString(render.Title.Render(name) + "\n")
	b.WriteString(render.KeyValue("chemistry", snap.Chemistry) + "\n")
	if len(snap.Citations) > 0 {
		b.WriteString(render.KeyValue("citations", strings.Join(snap.Citations, ", ")) + "\n")
	}
	b.WriteString("\n")

	rows := make([][]string, 0, len(snap.Constants)+len(snap.Functions))
	names := make([]string, 0, len(snap.Constants))
	for n := range snap.Constants {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		rows = append(rows, []string{n, strconv.FormatFloat(snap.Constants[n], 'g', -1, 64)})
	}
	for _, n := range snap.Functions {
		rows = append(rows, []string{n, "function"})
	}
	b.WriteString(render.Table([]string{"parameter", "value"}, rows))
	return b.String()
}

func (m model) View() string {
	if m.detail != "" {
		return m.detail + "\n" + render.Dim.Render("any key to go back, q to quit")
	}

	var b strings.Builder
	b.WriteString(render.Title.Render("supercapacitors") + " " +
		render.Dim.Render("v"+supercapacitors.Version) + "\n\n")

	tabs := []string{"models", "parameter sets"}
	for i, tab := range tabs {
		if pane(i) == m.pane {
			b.WriteString(render.Header.Render("[" + tab + "]"))
		} else {
			b.WriteString(render.Dim.Render(" " + tab + " "))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	for i, item := range m.items() {
		cursor := "  "
		line := item
		if i == m.cursor {
			cursor = render.Title.Render("> ")
			line = render.Value.Render(item)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + render.Dim.Render("tab: switch  enter: inspect  q: quit"))
	return b.String()
}
