package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/craftio"
	"github.com/partbench/partbench/pkg/errors"
	"github.com/partbench/partbench/pkg/integrity"
	"github.com/partbench/partbench/pkg/staging"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newEditCmd creates the edit command.
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [craft.json]",
		Short: "Edit a craft interactively",
		Long: `Edit a craft interactively.

Navigate the part tree with the arrow keys (or j/k). The footer shows the
integrity engine's verdict for the selected part. Press d to delete the
part, b to break its symmetry group, s to save, and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, tree, err := loadCraftFile(args[0])
			if err != nil {
				return err
			}
			seq := staging.NewSequencer(tree)
			host := newEditorHost(seq, logger)

			m := newEditorModel(args[0], doc, tree, integrity.New(tree, host), host)
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(editorModel); ok && fm.dirty {
				logger.Warn("unsaved changes discarded", "craft", args[0])
			}
			return nil
		},
	}
	return cmd
}

// =============================================================================
// editorModel - Interactive part tree editing
// =============================================================================

// editorModel is the bubbletea model for the interactive craft editor.
type editorModel struct {
	path string
	doc  *craftio.Document
	tree *craft.Tree
	eng  *integrity.Engine
	host *editorHost

	rows   []craft.UID // visible parts in staging (pre-)order
	cursor int
	offset int
	height int

	status string
	dirty  bool
}

func newEditorModel(path string, doc *craftio.Document, tree *craft.Tree, eng *integrity.Engine, host *editorHost) editorModel {
	m := editorModel{
		path:   path,
		doc:    doc,
		tree:   tree,
		eng:    eng,
		host:   host,
		height: 15,
	}
	m.reload()
	return m
}

// reload rebuilds the visible row list from the tree and clamps the cursor.
func (m *editorModel) reload() {
	m.rows = staging.Order(m.tree)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

func (m editorModel) selected() (craft.UID, bool) {
	if len(m.rows) == 0 {
		return craft.None, false
	}
	return m.rows[m.cursor], true
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "d":
			m.deleteSelected()
		case "b":
			m.breakSelected()
		case "s":
			if err := saveCraftFile(m.path, m.doc, m.tree); err != nil {
				m.status = errors.UserMessage(err)
			} else {
				m.status = fmt.Sprintf("saved %s", m.path)
				m.dirty = false
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m *editorModel) deleteSelected() {
	uid, ok := m.selected()
	if !ok {
		return
	}
	m.host.selected = uid

	deletable, err := m.eng.IsDeletable(uid)
	if err != nil {
		m.status = errors.UserMessage(err)
		return
	}
	if !deletable {
		m.status = fmt.Sprintf("part %d is not deletable", uid)
		return
	}
	if symmetric, _ := m.eng.HasSymmetry(uid); symmetric {
		if err := m.eng.BreakSymmetry(uid); err != nil {
			m.status = errors.UserMessage(err)
			return
		}
	}
	if err := m.eng.Delete(uid); err != nil {
		m.status = errors.UserMessage(err)
		return
	}
	m.status = fmt.Sprintf("deleted part %d", uid)
	m.dirty = true
	m.reload()
}

func (m *editorModel) breakSelected() {
	uid, ok := m.selected()
	if !ok {
		return
	}
	verdict, err := m.eng.HasBreakableSymmetry(uid)
	if err != nil {
		m.status = errors.UserMessage(err)
		return
	}
	if !verdict.OK {
		m.status = verdict.Reason
		return
	}
	if err := m.eng.BreakSymmetry(uid); err != nil {
		m.status = errors.UserMessage(err)
		return
	}
	m.status = fmt.Sprintf("broke symmetry of part %d", uid)
	m.dirty = true
	m.reload()
}

func (m editorModel) View() string {
	var b strings.Builder

	title := m.doc.Name
	if m.dirty {
		title += " *"
	}
	b.WriteString(styleTitle.Render(title) + "\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		p, ok := m.tree.Part(m.rows[i])
		if !ok {
			continue
		}
		line := strings.Repeat("  ", depthOf(m.tree, p)) + p.Name
		suffix := fmt.Sprintf(" (%d)", p.UID)
		if p.HasSymmetry() {
			suffix += fmt.Sprintf(" [%d-way]", len(p.Symmetry)+1)
		}
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("> "+line) + listDimStyle.Render(suffix) + "\n")
		} else {
			b.WriteString(listNormalStyle.Render("  "+line) + listDimStyle.Render(suffix) + "\n")
		}
	}

	b.WriteString("\n" + m.footer() + "\n")
	b.WriteString(listDimStyle.Render("↑/↓ move · d delete · b break · s save · q quit") + "\n")
	return b.String()
}

// footer summarizes the engine's verdict for the part under the cursor.
func (m editorModel) footer() string {
	uid, ok := m.selected()
	if !ok {
		return listDimStyle.Render("empty craft")
	}
	deletable, err := m.eng.IsDeletable(uid)
	if err != nil {
		return listDimStyle.Render(errors.UserMessage(err))
	}
	line := "delete " + yesNo(deletable)
	if symmetric, _ := m.eng.HasSymmetry(uid); symmetric {
		verdict, err := m.eng.HasBreakableSymmetry(uid)
		if err == nil {
			line += "  break " + yesNo(verdict.OK)
			if !verdict.OK {
				line += " " + styleDim.Render(verdict.Reason)
			}
		}
	}
	if m.status != "" {
		line += "\n" + styleDim.Render(m.status)
	}
	return line
}
