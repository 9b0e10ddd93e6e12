// Package tui implements the interactive zspecimen terminal interface.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zspecimen/internal/specimen"
)

// Synthesizer produces records. *synth.Synthesizer satisfies it.
type Synthesizer interface {
	SynthesizeIdentity(ctx context.Context, f specimen.Filter) (specimen.IdentityRecord, error)
}

// Exporter writes a record manifest. *manifest.Exporter satisfies it.
type Exporter interface {
	Export(rec specimen.IdentityRecord) (string, error)
}

// typeCycle is the order the t key steps through.
var typeCycle = []specimen.InstitutionType{"", specimen.HighSchool, specimen.University}

// recordMsg carries a freshly synthesized record.
type recordMsg struct {
	record specimen.IdentityRecord
	seq    int
}

// errMsg reports a failed synthesis.
type errMsg struct {
	err error
	seq int
}

// exportedMsg reports a finished manifest export.
type exportedMsg struct {
	name string
	err  error
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	synth    Synthesizer
	exporter Exporter
	version  string

	filter  specimen.Filter
	spinner spinner.Model
	loading bool
	seq     int

	// record is the single active record; replaced wholesale on success
	record *specimen.IdentityRecord
	err    error
	flash  string
}

// New creates the root model. A generation request starts on Init.
func New(ctx context.Context, version string, s Synthesizer, e Exporter, f specimen.Filter) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(zstyle.ZburnAccent)

	return Model{
		ctx:      ctx,
		synth:    s,
		exporter: e,
		version:  version,
		filter:   f,
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.generate())
}

func (m *Model) startGenerate() tea.Cmd {
	m.loading = true
	m.err = nil
	m.seq++
	return tea.Batch(m.spinner.Tick, m.generate())
}

// generate runs synthesis off the update loop. Results tagged with an old
// seq are dropped when they arrive.
func (m Model) generate() tea.Cmd {
	s, ctx, f, seq := m.synth, m.ctx, m.filter, m.seq
	return func() tea.Msg {
		rec, err := s.SynthesizeIdentity(ctx, f)
		if err != nil {
			return errMsg{err: err, seq: seq}
		}
		return recordMsg{record: rec, seq: seq}
	}
}

func (m Model) export() tea.Cmd {
	e, rec := m.exporter, *m.record
	return func() tea.Msg {
		name, err := e.Export(rec)
		return exportedMsg{name: name, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case recordMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		rec := msg.record
		m.record = &rec
		m.loading = false
		return m, nil

	case errMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.err = msg.err
		m.loading = false
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.flash = "export failed: " + msg.err.Error()
		} else {
			m.flash = "saved " + msg.name
		}
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	switch msg.String() {
	case "n":
		if m.loading {
			return m, nil
		}
		cmd := m.startGenerate()
		return m, cmd

	case "t":
		m.filter.Type = nextType(m.filter.Type)
		return m, nil

	case "m":
		if m.record == nil || m.exporter == nil {
			return m, nil
		}
		return m, m.export()
	}

	return m, nil
}

func nextType(t specimen.InstitutionType) specimen.InstitutionType {
	for i, c := range typeCycle {
		if c == t {
			return typeCycle[(i+1)%len(typeCycle)]
		}
	}
	return typeCycle[0]
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}
