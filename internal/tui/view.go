package tui

import (
	"fmt"

	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zspecimen/internal/card"
)

func (m Model) View() string {
	s := fmt.Sprintf("\n  %s %s\n", zstyle.Title.Render("zspecimen"), zstyle.MutedText.Render(m.version))
	s += "  " + zstyle.MutedText.Render(m.filterLine()) + "\n\n"

	switch {
	case m.loading && m.record == nil:
		s += fmt.Sprintf("  %s synthesizing specimen...\n", m.spinner.View())
	case m.err != nil:
		s += "  " + zstyle.StatusErr.Render("could not synthesize a record. press n to try again.") + "\n"
		s += "  " + zstyle.MutedText.Render(m.err.Error()) + "\n"
	case m.record != nil:
		s += card.Render(*m.record) + "\n"
		if m.loading {
			s += fmt.Sprintf("  %s synthesizing specimen...\n", m.spinner.View())
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	help := "n new  t type  m save manifest  q quit"
	s += "  " + zstyle.MutedText.Render(help) + "\n"
	return s
}

func (m Model) filterLine() string {
	typ := string(m.filter.Type)
	if typ == "" {
		typ = "any"
	}
	region := m.filter.Region
	if region == "" {
		region = "any"
	}
	return fmt.Sprintf("type: %s  region: %s", typ, region)
}
