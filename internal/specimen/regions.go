package specimen

import "strings"

var regions = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
	"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// Regions returns the US state names accepted as a region filter.
func Regions() []string {
	out := make([]string, len(regions))
	copy(out, regions)
	return out
}

// CanonicalRegion matches s case-insensitively against the known states.
func CanonicalRegion(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, r := range regions {
		if strings.EqualFold(r, s) {
			return r, true
		}
	}
	return "", false
}
