package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

// browseCommand creates the browse command for exploring a context
// interactively.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Explore the objects of a context interactively",
		Long: `Explore the objects of a context interactively.

Move through the objects to see their attributes. Select several objects to
see the attributes they share and every object that has all of them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinPath {
				return errors.New(errors.ErrCodeIO, "browse needs a file; standard input is used for the keyboard")
			}
			fc, _, err := c.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			if fc.ObjectCount() == 0 {
				printInfo(cmd.OutOrStdout(), "%s has no objects", args[0])
				return nil
			}

			p := tea.NewProgram(NewBrowseModel(args[0], fc),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - Interactive object browser
// =============================================================================

// BrowseModel is the bubbletea model for browsing the objects of a context.
type BrowseModel struct {
	Title    string
	Context  *fca.Context
	Objects  []string
	Cursor   int
	Offset   int
	Height   int
	Selected map[string]bool
}

// NewBrowseModel creates a browser over the objects of fc.
func NewBrowseModel(title string, fc *fca.Context) BrowseModel {
	return BrowseModel{
		Title:    title,
		Context:  fc,
		Objects:  fc.Objects(),
		Height:   15,
		Selected: make(map[string]bool),
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Objects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			g := m.Objects[m.Cursor]
			if m.Selected[g] {
				delete(m.Selected, g)
			} else {
				m.Selected[g] = true
			}
		case "c":
			clear(m.Selected)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// selection returns the selected objects in canonical order.
func (m BrowseModel) selection() []string {
	var out []string
	for _, g := range m.Objects {
		if m.Selected[g] {
			out = append(out, g)
		}
	}
	return out
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  c clear  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Objects))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		g := m.Objects[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := ""
		if m.Selected[g] {
			mark = iconSuccess
		}
		intent := m.Context.Intent(g)
		rows = append(rows, []string{cursor, mark, g, fmt.Sprintf("%d", len(intent)), strings.Join(intent, ", ")})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "", "Object", "#", "Attributes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.Offset + row
			base := lipgloss.NewStyle()
			if col == 3 || col == 4 {
				base = base.Foreground(colorDim)
			}
			switch {
			case idx == m.Cursor:
				return base.Foreground(colorCyan).Bold(true)
			case idx < len(m.Objects) && m.Selected[m.Objects[idx]]:
				return base.Foreground(colorYellow)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Objects))))
	b.WriteString("\n\n")

	if sel := m.selection(); len(sel) > 0 {
		shared := m.Context.ObjectDerivation(sel...)
		b.WriteString(StyleSelected.Render("Selected") + "  " + strings.Join(sel, ", ") + "\n")
		b.WriteString(StyleHighlight.Render("Shared  ") + "  " + listOrNone(shared) + "\n")
		b.WriteString(StyleHighlight.Render("Objects ") + "  " + listOrNone(m.Context.AttributeDerivation(shared...)) + "\n")
	}

	return b.String()
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return StyleDim.Render("none")
	}
	return strings.Join(names, ", ")
}
