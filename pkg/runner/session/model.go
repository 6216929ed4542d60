package session

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/storyjournal/pkg/prompts"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/timer"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true)
	timerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// tickMsg carries the countdown generation it was scheduled for, so ticks
// from a restarted or cancelled countdown are dropped.
type tickMsg struct {
	gen int
}

type savedMsg struct {
	rec record.Record
	err error
}

// SaveFunc persists the session's text.
type SaveFunc func(content, prompt string) (record.Record, error)

// Model is the bubbletea model for one timed writing session.
type Model struct {
	title     string
	prompt    string
	shuffle   bool
	minutes   int
	countdown *timer.Countdown
	editor    textarea.Model
	interval  time.Duration
	rng       *rand.Rand

	save   SaveFunc
	notify func(message string)

	status  string
	err     error
	confirm bool
	saving  bool
	saved   record.Record
	width   int
}

// Options configures a session model.
type Options struct {
	Title   string
	Prompt  string
	Shuffle bool
	Minutes int
	Save    SaveFunc
	Notify  func(message string)
	// Interval between ticks; one second unless set.
	Interval time.Duration
	Rand     *rand.Rand
}

func NewModel(o Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Start writing, don't stop."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(78)
	ta.SetHeight(16)
	ta.Focus()

	interval := o.Interval
	if interval <= 0 {
		interval = time.Second
	}

	m := Model{
		title:     o.Title,
		prompt:    o.Prompt,
		shuffle:   o.Shuffle,
		minutes:   o.Minutes,
		countdown: &timer.Countdown{},
		editor:    ta,
		interval:  interval,
		rng:       o.Rand,
		save:      o.Save,
		notify:    o.Notify,
	}
	m.countdown.Start(o.Minutes)
	return m
}

func (m Model) tick() tea.Cmd {
	gen := m.countdown.Generation()
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.SetWidth(max(20, msg.Width-2))
		m.editor.SetHeight(max(5, msg.Height-8))
		return m, nil

	case tickMsg:
		if msg.gen != m.countdown.Generation() {
			return m, nil
		}
		snap := m.countdown.Tick()
		if snap.State == timer.Done {
			m.status = "Time's up. Finish your sentence, then ctrl+s to save."
			if m.notify != nil {
				m.notify(fmt.Sprintf("%s: %d minutes are up.", m.title, m.minutes))
			}
			return m, nil
		}
		return m, m.tick()

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.saved = msg.rec
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			if m.saving {
				return m, nil
			}
			m.err = nil
			m.saving = true
			return m, m.saveCmd()
		case "esc", "ctrl+c":
			if strings.TrimSpace(m.editor.Value()) != "" && !m.confirm {
				m.confirm = true
				m.status = "Unsaved writing. Press esc again to discard, ctrl+s to save."
				return m, nil
			}
			m.countdown.Cancel()
			return m, tea.Quit
		case "ctrl+r":
			m.countdown.Start(m.minutes)
			m.status = "Timer restarted."
			return m, m.tick()
		case "ctrl+p":
			if m.shuffle {
				m.prompt = prompts.Random(m.prompt, m.rng)
			}
			return m, nil
		}
		m.confirm = false
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) saveCmd() tea.Cmd {
	content, prompt, save := m.editor.Value(), m.prompt, m.save
	return func() tea.Msg {
		if save == nil {
			return savedMsg{err: fmt.Errorf("nowhere to save")}
		}
		rec, err := save(content, prompt)
		return savedMsg{rec: rec, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	snap := m.countdown.Snapshot()
	switch snap.State {
	case timer.Done:
		b.WriteString(doneStyle.Render("0:00 done"))
	case timer.Running:
		b.WriteString(timerStyle.Render(timer.Format(snap.Remaining)))
	default:
		b.WriteString(faintStyle.Render("stopped"))
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("  %d words", record.WordCount(m.editor.Value()))))
	b.WriteString("\n")
	if m.prompt != "" {
		b.WriteString(promptStyle.Render(m.prompt))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.saving:
		b.WriteString(faintStyle.Render("Saving..."))
	case m.status != "":
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	help := "ctrl+s save • ctrl+r restart timer • esc quit"
	if m.shuffle {
		help = "ctrl+s save • ctrl+p new prompt • ctrl+r restart timer • esc quit"
	}
	b.WriteString(faintStyle.Render(help))
	return b.String()
}

// Saved is the record written by the session, if any.
func (m Model) Saved() record.Record {
	return m.saved
}

// Remaining reports the countdown's seconds left.
func (m Model) Remaining() (int, bool) {
	return m.countdown.Remaining()
}
