package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/textblock/block"
)

type viewKeyMap struct {
	Left, Right key.Binding
	Coords      key.Binding
	Quit        key.Binding
}

func defaultViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Coords: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "toggle xyz")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

type viewStyle struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

func defaultViewStyle(r *lipgloss.Renderer) viewStyle {
	return viewStyle{
		Text:   r.NewStyle(),
		Cursor: r.NewStyle().Reverse(true),
		Status: r.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// viewModel overwrites characters in place; it never inserts or deletes.
type viewModel struct {
	b      *block.TextBlock
	cursor int

	keys  viewKeyMap
	style viewStyle
	log   zerolog.Logger

	showCoords bool
	err        error
}

func newViewModel(b *block.TextBlock, style viewStyle, lg zerolog.Logger) viewModel {
	return viewModel{b: b, keys: defaultViewKeyMap(), style: style, log: lg}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		m.err = nil
	case key.Matches(km, m.keys.Right):
		if m.cursor < m.b.Len()-1 {
			m.cursor++
		}
		m.err = nil
	case key.Matches(km, m.keys.Coords):
		m.showCoords = !m.showCoords
	case km.Type == tea.KeyRunes, km.Type == tea.KeySpace:
		for _, r := range km.Runes {
			m = m.overwrite(r)
		}
	}
	return m, nil
}

func (m viewModel) overwrite(r rune) viewModel {
	p, err := m.b.Ref(m.cursor)
	if err != nil {
		m.err = err
		m.log.Warn().Err(err).Msg("overwrite rejected")
		return m
	}
	*p = r
	m.err = nil
	if m.cursor < m.b.Len()-1 {
		m.cursor++
	}
	return m
}

func (m viewModel) View() string {
	var sb strings.Builder
	v := m.b.View()
	if v.Len() == 0 {
		sb.WriteString(m.style.Cursor.Render(" "))
	}
	for i, r := range v.Runes() {
		if i == m.cursor {
			sb.WriteString(m.style.Cursor.Render(string(r)))
			continue
		}
		sb.WriteString(m.style.Text.Render(string(r)))
	}
	sb.WriteByte('\n')

	status := fmt.Sprintf("pos %d/%d", m.cursor, v.Len())
	if m.showCoords {
		var xyz strings.Builder
		_ = m.b.DebugPrintTo(&xyz)
		status += "  xyz " + strings.TrimSuffix(xyz.String(), "\n")
	}
	sb.WriteString(m.style.Status.Render(status))
	if m.err != nil {
		sb.WriteByte('\n')
		sb.WriteString(m.style.Error.Render(m.err.Error()))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (a *app) view(c *cli.Context) error {
	m := newViewModel(a.newBlock(), defaultViewStyle(lipgloss.DefaultRenderer()), a.log)
	final, err := tea.NewProgram(m, tea.WithOutput(a.out)).Run()
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}
	if fm, ok := final.(viewModel); ok {
		_, err = fmt.Fprintln(a.out, fm.b.String())
	}
	return err
}
