package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/assetgraph/pkg/resolve"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command, an interactive browser over
// the resolved inclusion order.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Browse the resolved order interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, order, err := c.loadResolved(cmd.Context(), args[0])
			if err != nil {
				printError("Resolution failed: %v", err)
				return err
			}
			if len(order) == 0 {
				printWarning("Manifest resolves to no resources")
				return nil
			}

			model := newOrderModel(order)
			p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
			_, err = p.Run()
			return err
		},
	}
}

// orderModel is the bubbletea model for browsing resolved candidates.
type orderModel struct {
	Order  []*resolve.Candidate
	Cursor int
	Height int
	Offset int
}

func newOrderModel(order []*resolve.Candidate) orderModel {
	return orderModel{
		Order:  order,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m orderModel) Init() tea.Cmd {
	return nil
}

func (m orderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Order)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m orderModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Resolved Inclusion Order"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Order) {
		end = len(m.Order)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cand := m.Order[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		deps := "—"
		if len(cand.Resource.Depends) > 0 {
			deps = strings.Join(cand.Resource.Depends, ", ")
		}

		location := cand.Resource.URL
		if location == "" {
			location = cand.Resource.File
			if p := cand.Path; p != "" {
				location = p + "/" + location
			}
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i+1),
			cand.Kind().String(),
			cand.UID(),
			deps,
			location,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Kind", "UID", "Depends", "Location").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 4 || col == 5 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	sel := m.Order[m.Cursor]
	b.WriteString(listSelectedStyle.Render("  " + sel.UID()))
	if dir := sel.Directory; dir != "" {
		b.WriteString(listDimStyle.Render("  dir: " + dir))
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Order))))
	b.WriteString("\n")

	return b.String()
}
