package specimen

import "google.golang.org/genai"

// RecordIDPrefix marks every record identifier as synthetic.
const RecordIDPrefix = "SPECIMEN-"

// field describes one property of the structured-generation schema.
type field struct {
	name        string
	description string
	enum        []string
}

// fields lists every RawRecord property in declaration order. Each one is
// required; the generator omits anything left out of the required list.
var fields = []field{
	{name: "firstName"},
	{name: "lastName"},
	{name: "gender", enum: []string{string(Male), string(Female)}},
	{name: "institutionName", description: "Invented name of a fictional school"},
	{name: "institutionType", enum: []string{string(HighSchool), string(University)}},
	{name: "institutionAddress", description: "Invented street address, city, state and zip"},
	{name: "institutionEmail", description: "Contact address on a .example domain"},
	{name: "recordId", description: "Identifier starting with " + RecordIDPrefix},
	{name: "programOrLevel", description: "Major for a University, grade for a HighSchool"},
	{name: "department"},
	{name: "enrollmentYear"},
	{name: "issueDate", description: "Human readable date, e.g. Aug 15, 2024"},
	{name: "expiryDate", description: "Human readable date, e.g. Aug 15, 2028"},
	{name: "region", description: "US state the school is located in"},
	{name: "city"},
}

// RequiredFields returns the JSON names of every record field.
func RequiredFields() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Schema returns the JSON-schema descriptor sent with text generation
// requests. A fresh value is built each call so callers may not share state.
func Schema() *genai.Schema {
	props := make(map[string]*genai.Schema, len(fields))
	for _, f := range fields {
		props[f.name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: f.description,
			Enum:        f.enum,
		}
	}

	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         RequiredFields(),
		PropertyOrdering: RequiredFields(),
	}
}
