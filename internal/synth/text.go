package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/zarlcorp/zspecimen/internal/specimen"
)

// dateLayouts are the human readable formats the generator is asked for.
var dateLayouts = []string{"Jan 2, 2006", "January 2, 2006", "01/02/2006", "2006-01-02"}

// textPrompt builds the structured generation instruction. nonce varies per
// call so repeated requests do not converge on the same answer.
func textPrompt(nonce string, f specimen.Filter) string {
	region := f.Region
	if region == "" {
		region = "any US state of your choosing (pick freely, vary across requests)"
	}
	kind := string(f.Type)
	if kind == "" {
		kind = "either HighSchool or University, your choice"
	}

	var b strings.Builder
	b.WriteString("Generate sample data for a SPECIMEN student ID card used as synthetic test data.\n")
	fmt.Fprintf(&b, "Reference: %s.\n", nonce)
	fmt.Fprintf(&b, "Region (US state): %s.\n", region)
	fmt.Fprintf(&b, "Institution type: %s.\n\n", kind)
	b.WriteString("RULES:\n")
	b.WriteString("1. INSTITUTION: invent a fictional school name. It must not be the name of any real school.\n")
	b.WriteString("2. ADDRESS: invent a street address in a real city of the region. Do not use the address of any real school.\n")
	b.WriteString("3. NAMES: use a common US first and last name; vary demographic background across requests.\n")
	fmt.Fprintf(&b, "4. RECORD ID: an alphanumeric identifier that starts with %q.\n", specimen.RecordIDPrefix)
	b.WriteString("5. EMAIL: an institutional contact address on a domain ending in .example.\n")
	b.WriteString("6. CONSISTENCY: city and region must match the address.\n")
	b.WriteString("7. institutionType is exactly HighSchool or University. programOrLevel is a major for University and a grade for HighSchool.\n")
	if f.Region != "" {
		fmt.Fprintf(&b, "8. region must be exactly %q.\n", f.Region)
	}
	return b.String()
}

// SynthesizeTextRecord issues one structured generation call and returns the
// validated record. Any failure is a *SynthesisError.
func (s *Synthesizer) SynthesizeTextRecord(ctx context.Context, f specimen.Filter) (specimen.RawRecord, error) {
	nonce := specimen.Nonce(4)
	budget := s.cfg.ThinkingBudget

	resp, err := s.gen.GenerateContent(ctx, s.cfg.TextModel, genai.Text(textPrompt(nonce, f)), &genai.GenerateContentConfig{
		ThinkingConfig:   &genai.ThinkingConfig{ThinkingBudget: &budget},
		ResponseMIMEType: "application/json",
		ResponseSchema:   specimen.Schema(),
	})
	if err != nil {
		return specimen.RawRecord{}, synthesisErr("text", err)
	}
	if resp == nil {
		return specimen.RawRecord{}, synthesisErr("text", ErrEmptyResponse)
	}

	raw, err := s.parseRecord(resp.Text())
	if err != nil {
		return specimen.RawRecord{}, synthesisErr("text", err)
	}

	if err := honorsFilter(raw, f); err != nil {
		return specimen.RawRecord{}, synthesisErr("text", err)
	}
	if f.Region != "" {
		raw.Region = f.Region
	}

	s.checkDates(raw)
	s.log.Debug("text record synthesized",
		zap.String("nonce", nonce),
		zap.String("record_id", raw.RecordID),
		zap.String("type", string(raw.InstitutionType)),
		zap.String("region", raw.Region),
	)
	return raw, nil
}

func (s *Synthesizer) parseRecord(text string) (specimen.RawRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return specimen.RawRecord{}, ErrEmptyResponse
	}

	// decode loosely first so a spaced type like "High School" still parses
	var wire struct {
		specimen.RawRecord
		InstitutionType string `json:"institutionType"`
	}
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return specimen.RawRecord{}, fmt.Errorf("decode: %w", err)
	}

	raw := wire.RawRecord
	if wire.InstitutionType != "" {
		t, err := specimen.ParseInstitutionType(wire.InstitutionType)
		if err != nil {
			return specimen.RawRecord{}, fmt.Errorf("%w: %v", ErrIncompleteRecord, err)
		}
		raw.InstitutionType = t
	}
	raw.Gender = specimen.Gender(strings.ToLower(strings.TrimSpace(string(raw.Gender))))
	raw = trimFields(raw)

	if err := s.validate.Struct(raw); err != nil {
		return specimen.RawRecord{}, fmt.Errorf("%w: %v", ErrIncompleteRecord, err)
	}

	if !strings.HasPrefix(raw.RecordID, specimen.RecordIDPrefix) {
		raw.RecordID = specimen.RecordIDPrefix + raw.RecordID
	}
	return raw, nil
}

func trimFields(r specimen.RawRecord) specimen.RawRecord {
	for _, p := range []*string{
		&r.FirstName, &r.LastName, &r.InstitutionName, &r.InstitutionAddress,
		&r.InstitutionEmail, &r.RecordID, &r.ProgramOrLevel, &r.Department,
		&r.EnrollmentYear, &r.IssueDate, &r.ExpiryDate, &r.Region, &r.City,
	} {
		*p = strings.TrimSpace(*p)
	}
	return r
}

func honorsFilter(r specimen.RawRecord, f specimen.Filter) error {
	if f.Type != "" && r.InstitutionType != f.Type {
		return fmt.Errorf("%w: institutionType %q, want %q", ErrFilterIgnored, r.InstitutionType, f.Type)
	}
	if f.Region != "" && !strings.EqualFold(r.Region, f.Region) {
		return fmt.Errorf("%w: region %q, want %q", ErrFilterIgnored, r.Region, f.Region)
	}
	return nil
}

// checkDates logs issue/expiry dates that parse but are out of order. The
// record is still accepted.
func (s *Synthesizer) checkDates(r specimen.RawRecord) {
	issued, ok1 := parseDate(r.IssueDate)
	expires, ok2 := parseDate(r.ExpiryDate)
	if ok1 && ok2 && !issued.Before(expires) {
		s.log.Warn("issue date not before expiry date",
			zap.String("record_id", r.RecordID),
			zap.String("issue_date", r.IssueDate),
			zap.String("expiry_date", r.ExpiryDate),
		)
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
