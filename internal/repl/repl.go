// Package repl is a small interactive host surface: it reads one script
// line at a time, parses it, and shows the resulting tree next to any
// diagnostics. Nothing is evaluated and no state carries over between
// lines; each submit is an isolated parse.
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tangent/internal/diagfmt"
	"tangent/internal/driver"
)

const historyShown = 8

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	treeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	diagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type entry struct {
	input string
	tree  string
	diags string
}

type Model struct {
	input   textinput.Model
	history []entry
	maxDiag int
	width   int
}

// New creates a REPL model. maxDiagnostics caps the bag of each parse.
func New(maxDiagnostics int) Model {
	ti := textinput.New()
	ti.Prompt = "tan> "
	ti.Placeholder = "x = 2.5; dist(a, b)"
	ti.Focus()
	return Model{
		input:   ti,
		maxDiag: maxDiagnostics,
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.history = append(m.history, m.submit(line))
				if len(m.history) > historyShown {
					m.history = m.history[len(m.history)-historyShown:]
				}
			}
			m.input.Reset()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - len(m.input.Prompt) - 2
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses one line in full isolation and renders the result.
func (m Model) submit(line string) entry {
	result := driver.ParseSource("repl", []byte(line), m.maxDiag)

	var tree strings.Builder
	diagfmt.DumpAST(&tree, result.Builder, result.FileSet, result.Root)

	var diags strings.Builder
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(&diags, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			PathMode:  diagfmt.PathModeBasename,
			ShowNotes: true,
		})
	}

	return entry{
		input: line,
		tree:  strings.TrimRight(tree.String(), "\n"),
		diags: strings.TrimRight(diags.String(), "\n"),
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("tangent"))
	b.WriteString(helpStyle.Render("  parse-only shell, ctrl+d quits"))
	b.WriteString("\n\n")
	for _, e := range m.history {
		b.WriteString(inputStyle.Render("tan> " + e.input))
		b.WriteString("\n")
		b.WriteString(treeStyle.Render(e.tree))
		b.WriteString("\n")
		if e.diags != "" {
			b.WriteString(diagStyle.Render(e.diags))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive shell and blocks until the user quits.
func Run(maxDiagnostics int) error {
	_, err := tea.NewProgram(New(maxDiagnostics)).Run()
	return err
}
