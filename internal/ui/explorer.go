// Package ui implements the interactive explorer: a table of the current
// node's children that the user walks with enter/backspace, with the dotted
// path shown in a status bar.
package ui

import (
	"fmt"
	"sort"
	"strings"

	bubtable "charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/scenepath/internal/formatter"
	"github.com/oakwood-commons/scenepath/pkg/path"
	"github.com/oakwood-commons/scenepath/pkg/scene"
)

const (
	defaultKeyColWidth   = 30
	defaultValueColWidth = 50
)

// row is one child entry of the current node.
type row struct {
	Key   string
	Value string
}

// Model is the explorer's bubbletea model. It walks a scene hierarchy or a
// document tree from a fixed root; the current position is tracked as a
// path so ascending never needs parent pointers on documents.
type Model struct {
	table bubtable.Model

	root any
	cur  any
	path path.Path

	rows   []row
	filter string

	width   int
	height  int
	noColor bool

	quitting bool
}

// NewModel creates an explorer rooted at root, which may be a
// *scene.Instance or any document value (maps, slices, scalars).
func NewModel(root any, noColor bool) *Model {
	columns := []bubtable.Column{
		{Title: "KEY", Width: defaultKeyColWidth},
		{Title: "VALUE", Width: defaultValueColWidth},
	}
	t := bubtable.New(
		bubtable.WithColumns(columns),
		bubtable.WithFocused(true),
		bubtable.WithHeight(10),
	)

	s := bubtable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true)
	if noColor {
		s.Header = s.Header.UnsetForeground().UnsetBackground()
		s.Selected = s.Selected.UnsetForeground().UnsetBackground().Reverse(true)
		s.Cell = s.Cell.UnsetForeground().UnsetBackground()
	}
	t.SetStyles(s)

	m := &Model{
		table:   t,
		root:    root,
		cur:     root,
		width:   80,
		height:  24,
		noColor: noColor,
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(3, m.height-4))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter", "right":
			m.descend()
			return m, nil

		case "left", "backspace":
			m.ascend()
			return m, nil

		case "esc":
			if m.filter != "" {
				m.filter = ""
				m.reload()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}

		// Type-ahead filtering over child keys, like the key browser's
		// prefix filter.
		if s := msg.String(); len(s) == 1 && isFilterRune(rune(s[0])) {
			m.filter += s
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render builds the frame: status bar, table, footer.
func (m *Model) render() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// Path returns the dotted path of the current position.
func (m *Model) Path() path.Path {
	return m.path
}

// CurrentNode returns the node the explorer is positioned at.
func (m *Model) CurrentNode() any {
	return m.cur
}

func (m *Model) statusBar() string {
	label := m.path.String()
	if label == "" {
		label = "(root)"
	}
	if m.filter != "" {
		label += "  filter: " + m.filter
	}
	label = runewidth.Truncate(label, maxInt(10, m.width-2), "…")
	if m.noColor {
		return label
	}
	return lipgloss.NewStyle().Bold(true).Render(label)
}

func (m *Model) footer() string {
	help := "enter: descend • backspace: up • esc/q: quit"
	if m.noColor {
		return help
	}
	return lipgloss.NewStyle().Faint(true).Render(help)
}

// descend moves into the child selected in the table.
func (m *Model) descend() {
	sel := m.table.Cursor()
	if sel < 0 || sel >= len(m.rows) {
		return
	}
	key := m.rows[sel].Key
	child, ok := childByKey(m.cur, key)
	if !ok {
		return
	}
	m.cur = child
	m.path = m.path.Append(key)
	m.filter = ""
	m.reload()
	m.table.SetCursor(0)
}

// ascend moves back to the parent by replaying the shortened path from the
// root.
func (m *Model) ascend() {
	if m.path.IsEmpty() {
		return
	}
	parent := m.root
	for _, seg := range m.path.Parent() {
		next, ok := childByKey(parent, seg)
		if !ok {
			return
		}
		parent = next
	}
	m.cur = parent
	m.path = m.path.Parent()
	m.filter = ""
	m.reload()
	m.table.SetCursor(0)
}

// reload rebuilds the table rows from the current node and filter.
func (m *Model) reload() {
	all := rowsFor(m.cur)
	m.rows = m.rows[:0]
	for _, r := range all {
		if m.filter != "" && !strings.HasPrefix(r.Key, m.filter) {
			continue
		}
		m.rows = append(m.rows, r)
	}

	tableRows := make([]bubtable.Row, len(m.rows))
	for i, r := range m.rows {
		value := runewidth.Truncate(r.Value, defaultValueColWidth, "…")
		tableRows[i] = bubtable.Row{r.Key, value}
	}
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(m.rows) {
		m.table.SetCursor(0)
	}
}

// rowsFor lists the children of a node as key/value rows. Scene instances
// list their children by name with the class as the value; documents list
// map keys (sorted) or array indexes.
func rowsFor(node any) []row {
	switch t := node.(type) {
	case *scene.Instance:
		children := t.Children()
		rows := make([]row, len(children))
		for i, c := range children {
			rows[i] = row{Key: c.Name(), Value: c.ClassName()}
		}
		return rows
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([]row, len(keys))
		for i, k := range keys {
			rows[i] = row{Key: k, Value: formatter.Stringify(t[k])}
		}
		return rows
	case []any:
		rows := make([]row, len(t))
		for i, v := range t {
			rows[i] = row{Key: fmt.Sprintf("%d", i), Value: formatter.Stringify(v)}
		}
		return rows
	default:
		return []row{{Key: "(value)", Value: formatter.Stringify(node)}}
	}
}

// childByKey resolves one explorer step. It never blocks: scene children are
// looked up with FindFirstChild, not WaitForChild.
func childByKey(node any, key string) (any, bool) {
	switch t := node.(type) {
	case *scene.Instance:
		child := t.FindFirstChild(key)
		if child == nil {
			return nil, false
		}
		return child, true
	case map[string]any:
		v, ok := t[key]
		return v, ok
	case []any:
		var idx int
		if _, err := fmt.Sscanf(key, "%d", &idx); err != nil {
			return nil, false
		}
		if idx < 0 || idx >= len(t) {
			return nil, false
		}
		return t[idx], true
	default:
		return nil, false
	}
}

func isFilterRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
