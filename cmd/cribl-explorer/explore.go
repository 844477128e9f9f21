package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/PySecNinja/cribl-cloud-explorer/internal/render"
	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

// Styles for the interactive browser.
var (
	leftPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	rightPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

var titleCaser = cases.Title(language.AmericanEnglish)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the environment interactively",
	Long: `Browse the environment in an interactive terminal UI: worker groups
on the left, the selected group's resources and data-flow diagram on the
right. Press r to re-fetch everything; the view swaps to the new snapshot
wholesale once the fetch completes.
`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return err
	}
	snap, err := fetchSnapshot(cmd.Context(), settings)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newExploreModel(settings, snap), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// groupItem adapts a GroupData for the bubbles list.
type groupItem struct {
	data cribl.GroupData
}

func (i groupItem) Title() string { return i.data.Group.Name }

func (i groupItem) Description() string {
	return fmt.Sprintf("%s · %d workers · %d routes",
		titleCaser.String(i.data.Group.Product),
		i.data.Group.WorkerCount,
		len(i.data.Routes))
}

func (i groupItem) FilterValue() string {
	return i.data.Group.Name + " " + i.data.Group.ID
}

type refreshDoneMsg struct {
	snap *cribl.Snapshot
	err  error
}

// refreshCmd re-runs the full fetch cycle in the background.
func refreshCmd(settings *cribl.Settings) tea.Cmd {
	return func() tea.Msg {
		snap, err := fetchSnapshot(context.Background(), settings)
		return refreshDoneMsg{snap: snap, err: err}
	}
}

type exploreModel struct {
	settings *cribl.Settings
	snap     *cribl.Snapshot

	groups list.Model
	detail viewport.Model

	width      int
	height     int
	refreshing bool
	err        error
}

func newExploreModel(settings *cribl.Settings, snap *cribl.Snapshot) exploreModel {
	groups := list.New(groupItems(snap), list.NewDefaultDelegate(), 0, 0)
	groups.Title = "Worker Groups"
	groups.SetShowHelp(false)

	m := exploreModel{
		settings: settings,
		snap:     snap,
		groups:   groups,
		detail:   viewport.New(0, 0),
	}
	m.syncDetail()
	return m
}

func groupItems(snap *cribl.Snapshot) []list.Item {
	items := make([]list.Item, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		items = append(items, groupItem{data: snap.GroupData[g.ID]})
	}
	return items
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := m.width / 3
		m.groups.SetSize(listWidth, m.height-4)
		m.detail.Width = m.width - listWidth - 6
		m.detail.Height = m.height - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.refreshing {
				m.refreshing = true
				return m, refreshCmd(m.settings)
			}
			return m, nil
		}

	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.snap = msg.snap
			m.groups.SetItems(groupItems(m.snap))
		}
		m.syncDetail()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.groups, cmd = m.groups.Update(msg)
	cmds = append(cmds, cmd)
	m.detail, cmd = m.detail.Update(msg)
	cmds = append(cmds, cmd)

	m.syncDetail()
	return m, tea.Batch(cmds...)
}

// syncDetail re-renders the right pane for the selected group.
func (m *exploreModel) syncDetail() {
	item, ok := m.groups.SelectedItem().(groupItem)
	if !ok {
		m.detail.SetContent("No worker groups available.")
		return
	}
	var buf bytes.Buffer
	render.GroupDetail(&buf, item.data)
	render.FlowDiagram(&buf, item.data)
	m.detail.SetContent(buf.String())
}

func (m exploreModel) View() string {
	left := leftPaneStyle.Render(m.groups.View())
	right := rightPaneStyle.Render(m.detail.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := helpStyle.Render("↑/↓ select · r refresh · q quit")
	if m.refreshing {
		status = helpStyle.Render("Refreshing...")
	}
	if m.err != nil {
		status = statusErrStyle.Render(fmt.Sprintf("Refresh failed: %v", m.err))
	}

	return body + "\n" + status
}
