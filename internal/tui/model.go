package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"chi-calculator/internal/calculator"
	"chi-calculator/internal/observability"
)

// drawerSettledMsg arrives once the drawer's exit transition has ended.
type drawerSettledMsg struct{}

const legend = `0-9 .     digits        + - * x / × ÷   operators
= enter   equals        %               percent
s n       sign          c esc           clear
h tab     history       ctrl+l          clear history
t         theme         q ctrl+c        quit`

// Model renders a Calculator in the terminal and turns key presses into
// calculator actions.
type Model struct {
	ctx    context.Context
	calc   *calculator.Calculator
	snap   calculator.Snapshot
	status string
	width  int
	height int
}

func New(ctx context.Context, calc *calculator.Calculator) Model {
	return Model{ctx: ctx, calc: calc, snap: calc.Snapshot()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// The first size message means the first frame is about to be laid
		// out; from here on a calculation may open the drawer.
		if !m.calc.Ready() {
			m.calc.MarkReady()
		}
		return m, nil

	case drawerSettledMsg:
		m.snap = m.calc.Snapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	action, err := calculator.ActionForKey(key)
	if err != nil {
		if errors.Is(err, calculator.ErrUnknownKey) {
			m.status = "no binding for " + key
		}
		return m, nil
	}

	snap, err := m.calc.Do(m.ctx, action)
	m.snap = snap
	if err != nil {
		observability.Logger.Warn("calculator action rejected", zap.String("key", key), zap.Error(err))
		m.status = err.Error()
		return m, nil
	}
	m.status = ""

	if action.Kind == calculator.ActionToggleHistory && snap.HistoryClosing {
		return m, settleAfter(m.calc.CloseDelay())
	}
	return m, nil
}

// settleAfter re-reads the state once the drawer's closing flag has cleared.
func settleAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d+10*time.Millisecond, func(time.Time) tea.Msg {
		return drawerSettledMsg{}
	})
}

func (m Model) View() string {
	st := stylesFor(m.snap.Theme)

	var b strings.Builder
	b.WriteString(st.Expression.Render(m.snap.Expression))
	b.WriteString("\n")
	b.WriteString(st.Display.Render(m.snap.Display))
	b.WriteString("\n")
	b.WriteString(st.Legend.Render(legend))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(st.Status.Render(m.status))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, b.String(), m.drawerView(st))
	return st.App.Render(body)
}

func (m Model) drawerView(st styles) string {
	switch {
	case m.snap.HistoryOpen:
		var b strings.Builder
		b.WriteString(st.Title.Render("History"))
		b.WriteString("\n")
		if len(m.snap.History) == 0 {
			b.WriteString(st.Empty.Render("No calculations yet"))
		}
		for i, entry := range m.snap.History {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(st.Entry.Render(entry))
		}
		return st.Drawer.Render(b.String())

	case m.snap.HistoryClosing:
		return st.Collapsed.Render(" ")

	default:
		return ""
	}
}
