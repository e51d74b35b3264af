package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/genedist/genedist/pkg/genome"
	"github.com/genedist/genedist/pkg/matrix"
)

// =============================================================================
// MatrixProgressModel - Live matrix computation progress
// =============================================================================

// progressMsg reports finished pairs out of the total.
type progressMsg struct {
	done  int
	total int
}

// runDoneMsg carries the finished run (or its error) into the model.
type runDoneMsg struct {
	run *matrix.Run
	err error
}

// MatrixProgressModel is the bubbletea model showing live progress of a
// matrix run. Quitting with q or ctrl+c cancels the computation.
type MatrixProgressModel struct {
	done      int
	total     int
	width     int
	run       *matrix.Run
	err       error
	cancelled bool

	cancel context.CancelFunc
	msgs   <-chan tea.Msg
}

// NewMatrixProgressModel creates a progress model fed by msgs; cancel is
// invoked when the user aborts.
func NewMatrixProgressModel(total int, msgs <-chan tea.Msg, cancel context.CancelFunc) MatrixProgressModel {
	return MatrixProgressModel{
		total:  total,
		width:  40,
		msgs:   msgs,
		cancel: cancel,
	}
}

func (m MatrixProgressModel) nextMsg() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgs
	}
}

func (m MatrixProgressModel) Init() tea.Cmd {
	return m.nextMsg()
}

func (m MatrixProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancelled = true
			m.cancel()
			return m, nil // wait for runDoneMsg so workers drain
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width - 20
		if m.width < 10 {
			m.width = 10
		}
	case progressMsg:
		m.done = msg.done
		m.total = msg.total
		return m, m.nextMsg()
	case runDoneMsg:
		m.run = msg.run
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m MatrixProgressModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Computing distance matrix"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q: cancel"))
	b.WriteString("\n\n")

	filled := 0
	if m.total > 0 {
		filled = m.done * m.width / m.total
	}
	bar := StyleSuccess.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", m.width-filled))

	pct := 0
	if m.total > 0 {
		pct = 100 * m.done / m.total
	}
	b.WriteString(fmt.Sprintf("  %s %3d%%  %s\n", bar, pct,
		StyleDim.Render(fmt.Sprintf("[%d/%d pairs]", m.done, m.total))))

	if m.cancelled {
		b.WriteString("\n" + StyleWarning.Render("cancelling..."))
	}
	return b.String()
}

// runMatrixTUI executes the matrix run behind a live progress display.
func runMatrixTUI(ctx context.Context, r *matrix.Runner, genomes []genome.Set, opts matrix.Options) (*matrix.Run, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := make(chan tea.Msg, 64)
	opts.Progress = func(done, total int) {
		select {
		case msgs <- progressMsg{done: done, total: total}:
		default: // drop updates rather than stall workers
		}
	}

	go func() {
		run, err := r.Compute(ctx, genomes, opts)
		msgs <- runDoneMsg{run: run, err: err}
	}()

	n := len(genomes)
	model := NewMatrixProgressModel(n*(n-1)/2, msgs, cancel)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("progress display: %w", err)
	}

	m := final.(MatrixProgressModel)
	return m.run, m.err
}
