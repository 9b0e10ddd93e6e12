package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarlcorp/zspecimen/internal/card"
	"github.com/zarlcorp/zspecimen/internal/specimen"
)

type stubSynth struct {
	record specimen.IdentityRecord
	err    error
	filter specimen.Filter
}

func (s *stubSynth) SynthesizeIdentity(_ context.Context, f specimen.Filter) (specimen.IdentityRecord, error) {
	s.filter = f
	return s.record, s.err
}

type stubExporter struct {
	calls int
	err   error
}

func (e *stubExporter) Export(specimen.IdentityRecord) (string, error) {
	e.calls++
	return "Details_Lopez_Maria.txt", e.err
}

func testRecord() specimen.IdentityRecord {
	return specimen.IdentityRecord{
		RawRecord: specimen.RawRecord{
			FirstName:       "Maria",
			LastName:        "Lopez",
			InstitutionName: "Cedar Hollow Academy",
			InstitutionType: specimen.HighSchool,
			RecordID:        "SPECIMEN-1",
			Region:          "Ohio",
			City:            "Dayton",
		},
		PortraitRef: "https://picsum.photos/seed/abc/300/400",
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Options
		wantErr bool
	}{
		{"empty", nil, Options{}, false},
		{"flags", []string{"--json", "--manifest"}, Options{JSON: true, Manifest: true}, false},
		{"type and region", []string{"--type", "high school", "--region", "ohio"},
			Options{Filter: specimen.Filter{Type: specimen.HighSchool, Region: "Ohio"}}, false},
		{"equals form", []string{"--type=University", "--region=New York"},
			Options{Filter: specimen.Filter{Type: specimen.University, Region: "New York"}}, false},
		{"bad type", []string{"--type", "daycare"}, Options{}, true},
		{"bad region", []string{"--region", "Ontario"}, Options{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCmdGenerateCard(t *testing.T) {
	s := &stubSynth{record: testRecord()}
	var buf bytes.Buffer

	err := CmdGenerate(context.Background(), &buf, s, nil, Options{Filter: specimen.Filter{Region: "Ohio"}})
	require.NoError(t, err)
	assert.Equal(t, "Ohio", s.filter.Region)
	assert.Contains(t, buf.String(), card.Watermark)
	assert.Contains(t, buf.String(), "SPECIMEN-1")
}

func TestCmdGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	err := CmdGenerate(context.Background(), &buf, &stubSynth{record: testRecord()}, nil, Options{JSON: true})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "SPECIMEN-1", got["recordId"])
	assert.Equal(t, "HighSchool", got["institutionType"])
	assert.Equal(t, "https://picsum.photos/seed/abc/300/400", got["portraitRef"])
}

func TestCmdGenerateManifest(t *testing.T) {
	e := &stubExporter{}
	var buf bytes.Buffer
	err := CmdGenerate(context.Background(), &buf, &stubSynth{record: testRecord()}, e, Options{Manifest: true})
	require.NoError(t, err)
	assert.Equal(t, 1, e.calls)
	assert.Contains(t, buf.String(), "manifest: Details_Lopez_Maria.txt")
}

func TestCmdGenerateSynthesisError(t *testing.T) {
	e := &stubExporter{}
	var buf bytes.Buffer
	err := CmdGenerate(context.Background(), &buf, &stubSynth{err: errors.New("quota")}, e, Options{Manifest: true})
	assert.EqualError(t, err, "quota")
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, e.calls)
}

func TestCmdRegions(t *testing.T) {
	var buf bytes.Buffer
	CmdRegions(&buf)
	assert.Contains(t, buf.String(), "Ohio\n")
	assert.Contains(t, buf.String(), "Wyoming\n")
}

func TestHasFlag(t *testing.T) {
	assert.True(t, hasFlag([]string{"--JSON"}, "--json"))
	assert.False(t, hasFlag(nil, "--json"))
}

func TestFlagValue(t *testing.T) {
	v, ok := flagValue([]string{"--region"}, "--region")
	assert.False(t, ok)
	assert.Empty(t, v)

	v, ok = flagValue([]string{"--region", "Ohio"}, "--region")
	assert.True(t, ok)
	assert.Equal(t, "Ohio", v)
}
