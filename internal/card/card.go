// Package card renders a specimen record as a terminal card.
package card

import (
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zspecimen/internal/specimen"
)

// Watermark is stamped on every rendered card.
const Watermark = "SPECIMEN · NOT VALID FOR IDENTIFICATION"

const barcodeWidth = 36

// theme is the per institution type palette.
type theme struct {
	band   lipgloss.Color
	accent lipgloss.Color
	label  string
}

var themes = map[specimen.InstitutionType]theme{
	specimen.University: {band: lipgloss.Color("#004a87"), accent: lipgloss.Color("#7fb2e5"), label: "UNIVERSITY STUDENT"},
	specimen.HighSchool: {band: lipgloss.Color("#7a1f2b"), accent: lipgloss.Color("#e5a27f"), label: "HIGH SCHOOL STUDENT"},
}

func themeFor(t specimen.InstitutionType) theme {
	if th, ok := themes[t]; ok {
		return th
	}
	return themes[specimen.HighSchool]
}

// Render draws rec as a bordered card.
func Render(rec specimen.IdentityRecord) string {
	th := themeFor(rec.InstitutionType)

	header := lipgloss.NewStyle().
		Background(th.band).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(0, 1).
		Width(barcodeWidth + 4).
		Render(strings.ToUpper(rec.InstitutionName) + "\n" + th.label)

	label := lipgloss.NewStyle().Foreground(th.accent)
	rows := []string{
		zstyle.Title.Render(rec.FullName()),
		label.Render("id       ") + rec.RecordID,
		label.Render(levelLabel(rec.InstitutionType)) + rec.ProgramOrLevel,
		label.Render("dept     ") + rec.Department,
		label.Render("enrolled ") + rec.EnrollmentYear,
		label.Render("issued   ") + rec.IssueDate,
		label.Render("expires  ") + rec.ExpiryDate,
		label.Render("campus   ") + rec.City + ", " + rec.Region,
		zstyle.MutedText.Render(PortraitLabel(rec.PortraitRef)),
		"",
		Barcode(rec.RecordID, barcodeWidth),
		zstyle.StatusWarn.Render(Watermark),
	}

	body := lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(rows, "\n"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.band).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func levelLabel(t specimen.InstitutionType) string {
	if t == specimen.University {
		return "major    "
	}
	return "grade    "
}

// PortraitLabel describes where the portrait came from.
func PortraitLabel(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		return "[portrait: generated]"
	}
	return "[portrait: placeholder]"
}

// Barcode returns a decorative bar pattern of the given width. The pattern
// is seeded from seed, so the same record always renders the same bars.
func Barcode(seed string, width int) string {
	h := fnv.New64a()
	h.Write([]byte(seed))
	sum := h.Sum64()
	r := rand.New(rand.NewPCG(sum, sum>>1|1))

	bars := []rune{'█', '▌', '▐', '│', ' '}
	out := make([]rune, width)
	for i := range out {
		out[i] = bars[r.IntN(len(bars))]
	}
	return string(out)
}
