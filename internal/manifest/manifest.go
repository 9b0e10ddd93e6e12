// Package manifest renders a specimen record as a plain-text manifest and
// writes it to a filesystem.
package manifest

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zfilesystem"

	"github.com/zarlcorp/zspecimen/internal/specimen"
)

const rule = "========================================"

// Render formats rec as a manifest. now is printed as the generation time
// and exportID identifies this particular export.
func Render(rec specimen.IdentityRecord, now time.Time, exportID string) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("SPECIMEN STUDENT RECORD (SYNTHETIC)\n")
	b.WriteString("NOT A VALID IDENTIFICATION DOCUMENT\n")
	b.WriteString(rule + "\n")
	line(&b, "Full Name", rec.FullName())
	line(&b, "Record ID", rec.RecordID)
	line(&b, "Institution", rec.InstitutionName+" (fictional)")
	line(&b, "Type", string(rec.InstitutionType))
	line(&b, "Address", rec.InstitutionAddress)
	line(&b, "Location", rec.City+", "+rec.Region)
	line(&b, "Email", rec.InstitutionEmail)
	line(&b, "Department", rec.Department)
	line(&b, levelLabel(rec.InstitutionType), rec.ProgramOrLevel)
	line(&b, "Enrollment Year", rec.EnrollmentYear)
	line(&b, "Issue Date", rec.IssueDate)
	line(&b, "Expiry Date", rec.ExpiryDate)
	line(&b, "Portrait", portraitKind(rec.PortraitRef))
	b.WriteString("----------------------------------------\n")
	line(&b, "Generated", now.Format(time.RFC3339))
	line(&b, "Export ID", exportID)
	b.WriteString(rule + "\n")
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func levelLabel(t specimen.InstitutionType) string {
	if t == specimen.University {
		return "Major"
	}
	return "Grade"
}

func portraitKind(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		return "generated (embedded)"
	}
	return "placeholder " + ref
}

// Filename returns Details_<Last>_<First>.txt with unsafe characters removed.
func Filename(rec specimen.IdentityRecord) string {
	return "Details_" + sanitize(rec.LastName) + "_" + sanitize(rec.FirstName) + ".txt"
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '-' || r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}

// Exporter writes manifests to a filesystem.
type Exporter struct {
	fs  zfilesystem.ReadWriteFileFS
	now func() time.Time
}

// NewExporter creates an exporter writing into fsys.
func NewExporter(fsys zfilesystem.ReadWriteFileFS) *Exporter {
	return &Exporter{fs: fsys, now: time.Now}
}

// Export writes the manifest for rec and returns the file name used.
func (e *Exporter) Export(rec specimen.IdentityRecord) (string, error) {
	name := Filename(rec)
	body := Render(rec, e.now(), uuid.NewString())
	if err := e.fs.WriteFile(name, []byte(body), 0o600); err != nil {
		return "", fmt.Errorf("export manifest: %w", err)
	}
	return name, nil
}
