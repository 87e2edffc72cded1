// Package tui is the full-screen dashboard: clock/greeting header, task
// list, and focus-timer pane, composed in one Bubble Tea model. Storage
// is the source of truth for the task pane; every render path re-reads
// the state file rather than trusting an in-memory copy.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/focusdeck/internal/clock"
	"github.com/idilsaglam/focusdeck/internal/config"
	"github.com/idilsaglam/focusdeck/internal/greeting"
	"github.com/idilsaglam/focusdeck/internal/model"
	"github.com/idilsaglam/focusdeck/internal/store/jsonstore"
	"github.com/idilsaglam/focusdeck/internal/store/watch"
	"github.com/idilsaglam/focusdeck/internal/timer"
	"github.com/idilsaglam/focusdeck/internal/ui"
	"github.com/idilsaglam/focusdeck/internal/xp"
)

const windowTitle = "focusdeck"

// clockTickMsg drives the header clock; one arrives every second for the
// lifetime of the program.
type clockTickMsg time.Time

// sessionTickMsg decrements the focus session. gen must match the
// model's current generation; a stale tick from a cancelled schedule is
// dropped on arrival.
type sessionTickMsg struct {
	gen int
}

// stateChangedMsg reports an out-of-band write to the state file.
type stateChangedMsg struct{}

type Model struct {
	cfg     config.Config
	store   *jsonstore.Store
	watcher *watch.Watcher // nil when watching is unavailable
	clk     clock.Clock

	list   list.Model
	ti     textinput.Model
	adding bool
	addErr string

	session  timer.Countdown
	timerGen int

	points  int
	level   int
	roadmap []xp.Milestone

	clockStr string
	greet    string

	width, height int
}

func NewModel(cfg config.Config, store *jsonstore.Store, watcher *watch.Watcher, clk clock.Clock) Model {
	l := list.New(nil, taskDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	t := ui.Current()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.AdditionalShortHelpKeys = keys.extraBindings
	l.AdditionalFullHelpKeys = keys.extraBindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task..."
	ti.CharLimit = 200

	m := Model{
		cfg:     cfg,
		store:   store,
		watcher: watcher,
		clk:     clk,
		list:    l,
		ti:      ti,
		session: timer.New(cfg.SessionSeconds()),
	}
	m.reload()
	// Header is populated before the first tick; no blank initial state.
	m.refreshClock()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(clockTickCmd(), m.waitForStateChange(), tea.SetWindowTitle(windowTitle))
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func sessionTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return sessionTickMsg{gen: gen} })
}

func (m Model) waitForStateChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeList()
		return m, nil

	case clockTickMsg:
		m.refreshClock()
		return m, clockTickCmd()

	case sessionTickMsg:
		if msg.gen != m.timerGen {
			return m, nil // cancelled schedule, drop
		}
		return m.sessionTick()

	case stateChangedMsg:
		m.reload()
		return m, m.waitForStateChange()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refreshClock recomputes the header strings, writing only on change.
// Recomputation is idempotent so this is an optimization, not a
// correctness requirement.
func (m *Model) refreshClock() {
	now := m.clk.Now()
	if s := greeting.Clock(now); s != m.clockStr {
		m.clockStr = s
	}
	if g := greeting.ForHour(now.Hour()); g != m.greet {
		m.greet = g
	}
}

func (m Model) sessionTick() (tea.Model, tea.Cmd) {
	m.session.Tick()
	switch m.session.State() {
	case timer.Finished:
		// Natural completion releases the schedule: bump the generation
		// so any in-flight tick is dropped, then bank the session XP.
		m.timerGen++
		m.mutate(func(st *jsonstore.State) bool {
			st.XP += xp.SessionFinished
			return true
		})
		return m, tea.SetWindowTitle(windowTitle)
	case timer.Running:
		return m, tea.Batch(
			sessionTickCmd(m.timerGen),
			tea.SetWindowTitle(m.session.Format()+" — "+windowTitle),
		)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleAddKey(msg)
	}
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		m.ti.Focus()
		m.resizeList()
		return m, textinput.Blink

	case key.Matches(msg, keys.Toggle):
		if id, ok := m.selectedTaskID(); ok {
			m.mutate(func(st *jsonstore.State) bool {
				nowDone, ok := model.Toggle(st.Tasks, id)
				if ok && nowDone {
					// XP is a ratchet: un-toggling later does not refund.
					st.XP += xp.TaskCompleted
				}
				return ok
			})
		}
		return m, nil

	case key.Matches(msg, keys.Delete):
		if id, ok := m.selectedTaskID(); ok {
			m.mutate(func(st *jsonstore.State) bool {
				tasks, ok := model.Delete(st.Tasks, id)
				st.Tasks = tasks
				return ok
			})
		}
		return m, nil

	case key.Matches(msg, keys.Start):
		if m.session.Start() {
			m.timerGen++
			return m, tea.Batch(
				sessionTickCmd(m.timerGen),
				tea.SetWindowTitle(m.session.Format()+" — "+windowTitle),
			)
		}
		return m, nil

	case key.Matches(msg, keys.Pause):
		if m.session.Pause() {
			m.timerGen++ // release the schedule; in-flight tick goes stale
		}
		return m, nil

	case key.Matches(msg, keys.Reset):
		m.timerGen++
		m.session.Reset()
		return m, tea.SetWindowTitle(windowTitle)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.ti.Value()
		added := false
		m.mutate(func(st *jsonstore.State) bool {
			tasks, ok := model.Add(st.Tasks, text, m.clk.Now())
			st.Tasks = tasks
			added = ok
			return ok
		})
		if !added {
			// Input keeps focus so the user can retry.
			m.addErr = "Task text cannot be empty"
			return m, nil
		}
		m.ti.SetValue("")
		m.ti.Blur()
		m.adding = false
		m.addErr = ""
		m.resizeList()
		return m, nil
	case "esc":
		m.adding = false
		m.addErr = ""
		m.ti.SetValue("")
		m.ti.Blur()
		m.resizeList()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) selectedTaskID() (int64, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return 0, false
	}
	return it.task.ID, true
}

// mutate runs a read-modify-write against storage. fn returns false to
// skip the write (id miss, empty text); any write is followed by a full
// reload so the pane always reflects the file.
func (m *Model) mutate(fn func(*jsonstore.State) bool) {
	st, err := m.store.Load()
	if err != nil {
		slog.Warn("load state", "err", err)
		return
	}
	if !fn(&st) {
		return
	}
	if err := m.store.Save(st); err != nil {
		slog.Warn("save state", "err", err)
		return
	}
	m.reload()
}

// reload re-reads storage and rebuilds the task pane and progression
// fields from it.
func (m *Model) reload() {
	st, err := m.store.Load()
	if err != nil {
		slog.Warn("load state", "err", err)
	}
	m.points = st.XP
	m.level = st.Level
	m.roadmap = st.Roadmap

	items := make([]list.Item, 0, len(st.Tasks))
	for _, t := range st.Tasks {
		items = append(items, taskItem{task: t})
	}
	m.list.SetItems(items)

	dn, pn := model.Stats(st.Tasks)
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), dn,
		t.Pending.Render(t.SymPending), pn,
	)
}

func (m *Model) resizeList() {
	h := m.height - chromeHeight
	if m.adding {
		h -= addBarHeight
	}
	if h < minListHeight {
		h = minListHeight
	}
	w := m.width - 4
	if w < minListWidth {
		w = minListWidth
	}
	m.list.SetSize(w, h)
}

// statusLine summarizes progression under the panes.
func (m Model) statusLine() string {
	t := ui.Current()
	return t.Help.Render(fmt.Sprintf("Lv %d · %d xp · roadmap %d/%d",
		m.level, m.points, xp.Unlocked(m.roadmap), len(m.roadmap)))
}

func milestoneTitles(roadmap []xp.Milestone, unlocked bool) string {
	var names []string
	for _, ms := range roadmap {
		if ms.Unlocked == unlocked {
			names = append(names, ms.Title)
		}
	}
	return strings.Join(names, ", ")
}
