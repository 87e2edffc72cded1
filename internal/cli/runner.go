package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/focusdeck/internal/config"
	"github.com/idilsaglam/focusdeck/internal/model"
	"github.com/idilsaglam/focusdeck/internal/store/jsonstore"
	"github.com/idilsaglam/focusdeck/internal/tui"
	"github.com/idilsaglam/focusdeck/internal/ui"
	"github.com/idilsaglam/focusdeck/internal/xp"
)

// timeNow stamps new task ids; swapped out in tests.
var timeNow = time.Now

// Options tune behavior from root flags.
type Options struct {
	Group      bool   // ls output grouped by pending/done
	ConfigFile string // path to focusdeck.yaml, empty for default lookup
	DataFile   string // overrides the configured state file
	Theme      string // overrides the configured theme
	Debug      bool   // write slog JSON lines to focusdeck.log
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error,
// 2 usage). No subcommand launches the dashboard.
func Run(args []string, opt Options) int {
	setupLogging(opt.Debug)

	cfg, err := config.Load(opt.ConfigFile)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	if opt.DataFile != "" {
		cfg.DataFile = opt.DataFile
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	ui.SetTheme(cfg.Theme)
	store := jsonstore.New(cfg.DataFile)

	if len(args) == 0 {
		if err := tui.Run(cfg, store); err != nil {
			ui.Fail("dashboard: " + err.Error())
			return 1
		}
		return 0
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(store, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: focusdeck add <text...>")
			return 2
		}
		return doAdd(store, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: focusdeck done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(store, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: focusdeck rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(store, n)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`focusdeck - clock, tasks and focus timer in the terminal

Usage:
  focusdeck                 Open the dashboard
  focusdeck <subcommand> [args]

Subcommands:
  add <text...>      Add a new task (text can be multiple words)
  ls                 List tasks with progression
  done <index>       Toggle done for task at 1-based index
  rm <index>         Remove task at 1-based index

Examples:
  focusdeck add "Buy milk"
  focusdeck ls
  focusdeck done 2
  focusdeck rm 3
`)
}

// setupLogging routes slog to focusdeck.log under -debug and discards it
// otherwise; the altscreen dashboard owns the terminal.
func setupLogging(debug bool) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
		return
	}
	f, err := os.OpenFile("focusdeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// -------------- subcommand impls ----------------

func doList(store *jsonstore.Store, opt Options) int {
	st, err := store.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	t := ui.Current()

	dn, pn := model.Stats(st.Tasks)
	header := fmt.Sprintf("%s  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), dn,
		t.Pending.Render(t.SymPending), pn,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(dn, dn+pn, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(st.Tasks)...)
	} else {
		lines = append(lines, flatLines(st.Tasks)...)
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %s",
		t.Accent.Render(fmt.Sprintf("Lv %d", st.Level)),
		t.Muted.Render(fmt.Sprintf("%d xp", st.XP)),
	))
	lines = append(lines, roadmapLines(st.Roadmap)...)
	ui.PrintPanel(lines)
	return 0
}

func doAdd(store *jsonstore.Store, text string) int {
	return mutate(store, "added", func(st *jsonstore.State) (bool, int) {
		tasks, ok := model.Add(st.Tasks, text, timeNow())
		if !ok {
			ui.Fail("add: empty text")
			return false, 2
		}
		st.Tasks = tasks
		return true, 0
	})
}

func doToggle(store *jsonstore.Store, userIndex int) int {
	return mutate(store, "toggled", func(st *jsonstore.State) (bool, int) {
		id, code := idAt(st.Tasks, userIndex)
		if code != 0 {
			return false, code
		}
		nowDone, _ := model.Toggle(st.Tasks, id)
		if nowDone {
			st.XP += xp.TaskCompleted
		}
		return true, 0
	})
}

func doRemove(store *jsonstore.Store, userIndex int) int {
	return mutate(store, "removed", func(st *jsonstore.State) (bool, int) {
		id, code := idAt(st.Tasks, userIndex)
		if code != 0 {
			return false, code
		}
		st.Tasks, _ = model.Delete(st.Tasks, id)
		return true, 0
	})
}

// mutate wraps the load/apply/save cycle shared by every mutating
// subcommand. fn returns whether to write plus the exit code when not.
func mutate(store *jsonstore.Store, okMsg string, fn func(*jsonstore.State) (bool, int)) int {
	st, err := store.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	write, code := fn(&st)
	if !write {
		return code
	}
	if err := store.Save(st); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(okMsg)
	return 0
}

func idAt(tasks []model.Task, userIndex int) (int64, int) {
	if userIndex < 1 || userIndex > len(tasks) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(tasks), userIndex))
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `focusdeck ls` to see valid indexes"))
		return 0, 2
	}
	return tasks[userIndex-1].ID, 0
}

// -------------- rendering helpers --------------

func flatLines(tasks []model.Task) []string {
	t := ui.Current()
	if len(tasks) == 0 {
		return []string{t.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, task := range tasks {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.BoxUnchecked)
		text := task.Text
		if task.Done {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, text))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, task := range tasks {
		if task.Done {
			done = append(done, task)
		} else {
			pend = append(pend, task)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}

func roadmapLines(roadmap []xp.Milestone) []string {
	t := ui.Current()
	out := make([]string, 0, len(roadmap))
	for _, ms := range roadmap {
		mark := t.Muted.Render(t.BoxUnchecked)
		title := t.Muted.Render(fmt.Sprintf("%s (Lv %d)", ms.Title, ms.Level))
		if ms.Unlocked {
			mark = t.Success.Render(t.BoxChecked)
			title = fmt.Sprintf("%s (Lv %d)", ms.Title, ms.Level)
		}
		out = append(out, mark+" "+title)
	}
	return out
}
