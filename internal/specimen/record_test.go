package specimen

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func validRaw() RawRecord {
	return RawRecord{
		FirstName:          "Maria",
		LastName:           "Lopez",
		Gender:             Female,
		InstitutionName:    "Cedar Hollow Academy",
		InstitutionType:    HighSchool,
		InstitutionAddress: "410 Birch Ln, Dayton, OH 45402",
		InstitutionEmail:   "office@cedarhollow.example",
		RecordID:           "SPECIMEN-204881",
		ProgramOrLevel:     "Grade 11",
		Department:         "General Studies",
		EnrollmentYear:     "2023",
		IssueDate:          "Aug 15, 2024",
		ExpiryDate:         "Jun 30, 2025",
		Region:             "Ohio",
		City:               "Dayton",
	}
}

func TestSchemaRequiresEveryField(t *testing.T) {
	typ := reflect.TypeOf(RawRecord{})
	var tags []string
	for i := range typ.NumField() {
		tags = append(tags, strings.Split(typ.Field(i).Tag.Get("json"), ",")[0])
	}

	s := Schema()
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, tags, s.Required)
	assert.Len(t, s.Properties, len(tags))
	for _, name := range tags {
		p, ok := s.Properties[name]
		require.True(t, ok, "missing property %s", name)
		assert.Equal(t, genai.TypeString, p.Type, name)
	}
}

func TestSchemaEnums(t *testing.T) {
	s := Schema()
	assert.Equal(t, []string{"male", "female"}, s.Properties["gender"].Enum)
	assert.Equal(t, []string{"HighSchool", "University"}, s.Properties["institutionType"].Enum)
}

func TestSchemaIsFreshPerCall(t *testing.T) {
	a := Schema()
	a.Required[0] = "mutated"
	b := Schema()
	assert.Equal(t, "firstName", b.Required[0])
}

func TestRawRecordValidation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		mutate  func(*RawRecord)
		wantErr bool
	}{
		{"complete", func(*RawRecord) {}, false},
		{"empty", func(r *RawRecord) { *r = RawRecord{} }, true},
		{"missing city", func(r *RawRecord) { r.City = "" }, true},
		{"bad gender", func(r *RawRecord) { r.Gender = "other" }, true},
		{"bad type", func(r *RawRecord) { r.InstitutionType = "Kindergarten" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRaw()
			tt.mutate(&r)
			err := v.Struct(r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseInstitutionType(t *testing.T) {
	tests := []struct {
		in      string
		want    InstitutionType
		wantErr bool
	}{
		{"HighSchool", HighSchool, false},
		{"High School", HighSchool, false},
		{"high school", HighSchool, false},
		{"University", University, false},
		{"university", University, false},
		{"college", University, false},
		{"", "", true},
		{"kindergarten", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInstitutionType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeBracket(t *testing.T) {
	assert.Contains(t, University.AgeBracket(), "college")
	assert.Contains(t, University.AgeBracket(), "20-year-old")
	assert.Contains(t, HighSchool.AgeBracket(), "16-year-old")
	assert.Equal(t, HighSchool.AgeBracket(), InstitutionType("").AgeBracket())
}

func TestCanonicalRegion(t *testing.T) {
	got, ok := CanonicalRegion("  new york ")
	assert.True(t, ok)
	assert.Equal(t, "New York", got)

	_, ok = CanonicalRegion("Ontario")
	assert.False(t, ok)

	assert.Len(t, Regions(), 50)
}

func TestNonce(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{12}$`)
	a := Nonce(6)
	b := Nonce(6)
	assert.Regexp(t, re, a)
	assert.NotEqual(t, a, b)
}
