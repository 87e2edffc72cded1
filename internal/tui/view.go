package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/focusdeck/internal/timer"
	"github.com/idilsaglam/focusdeck/internal/ui"
)

// Vertical space taken by everything around the task list: header,
// timer pane, status line, borders.
const (
	chromeHeight  = 10
	addBarHeight  = 3
	minListHeight = 3
	minListWidth  = 20
)

// placeholderRow is shown instead of task rows when the list is empty.
const placeholderRow = "Nothing yet — press a to add a task"

func (m Model) View() string {
	t := ui.Current()

	header := t.Title.Render(m.greet) + "  " + t.Accent.Render(m.clockStr)

	tasks := m.tasksView()
	if m.adding {
		title := "Add task"
		if m.addErr != "" {
			title += " — " + t.Error.Render(m.addErr)
		}
		tasks += "\n" + ui.Panel(title+"\n"+m.ti.View())
	}

	sections := []string{
		header,
		"",
		tasks,
		"",
		m.timerView(),
		m.statusLine(),
	}
	if unlocked := milestoneTitles(m.roadmap, true); unlocked != "" {
		sections = append(sections, t.Help.Render("Unlocked: "+unlocked))
	}
	return ui.Panel(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) tasksView() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		t := ui.Current()
		return m.list.Title + "\n\n  " + t.Muted.Render(placeholderRow)
	}
	return m.list.View()
}

func (m Model) timerView() string {
	t := ui.Current()

	var display string
	switch m.session.State() {
	case timer.Finished:
		display = t.Success.Render("Done!")
	case timer.Running:
		display = t.Title.Render(m.session.Format())
	default:
		display = t.Muted.Render(m.session.Format())
	}

	start := control(t, "s start", m.session.CanStart())
	pause := control(t, "p pause", m.session.CanPause())
	reset := control(t, "r reset", true)

	label := t.Accent.Render("Focus") + " " + t.Help.Render("("+m.session.State().String()+")")
	return label + "  " + display + "   " + start + " " + pause + " " + reset
}

func control(t ui.Theme, text string, enabled bool) string {
	if enabled {
		return t.Pending.Render("[" + text + "]")
	}
	return t.Muted.Render("[" + text + "]")
}
