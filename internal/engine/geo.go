package engine

import (
	"math"
	"strings"
	"unicode"
)

const earthRadiusMiles = 3959.0

// HaversineMiles returns the great-circle distance in miles between two
// (lat, lon) pairs. Symmetric; 0 for identical points.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// usStates maps full state names to their two-letter codes, in a fixed
// order so inference is deterministic.
var usStates = []struct {
	name string
	code string
}{
	{"alabama", "AL"}, {"alaska", "AK"}, {"arizona", "AZ"}, {"arkansas", "AR"},
	{"california", "CA"}, {"colorado", "CO"}, {"connecticut", "CT"},
	{"delaware", "DE"}, {"florida", "FL"}, {"georgia", "GA"}, {"hawaii", "HI"},
	{"idaho", "ID"}, {"illinois", "IL"}, {"indiana", "IN"}, {"iowa", "IA"},
	{"kansas", "KS"}, {"kentucky", "KY"}, {"louisiana", "LA"}, {"maine", "ME"},
	{"maryland", "MD"}, {"massachusetts", "MA"}, {"michigan", "MI"},
	{"minnesota", "MN"}, {"mississippi", "MS"}, {"missouri", "MO"},
	{"montana", "MT"}, {"nebraska", "NE"}, {"nevada", "NV"},
	{"new hampshire", "NH"}, {"new jersey", "NJ"}, {"new mexico", "NM"},
	{"new york", "NY"}, {"north carolina", "NC"}, {"north dakota", "ND"},
	{"ohio", "OH"}, {"oklahoma", "OK"}, {"oregon", "OR"},
	{"pennsylvania", "PA"}, {"rhode island", "RI"}, {"south carolina", "SC"},
	{"south dakota", "SD"}, {"tennessee", "TN"}, {"texas", "TX"},
	{"utah", "UT"}, {"vermont", "VT"}, {"virginia", "VA"},
	{"washington", "WA"}, {"west virginia", "WV"}, {"wisconsin", "WI"},
	{"wyoming", "WY"},
}

var stateCodes = func() map[string]bool {
	m := make(map[string]bool, len(usStates))
	for _, s := range usStates {
		m[s.code] = true
	}
	return m
}()

// InferState extracts a US state code from a free-text location label
// ("Austin, TX" or "Dallas, Texas"). Two-letter tokens count only when
// uppercase in the source, so "Remote in Texas" does not read as Indiana.
// Returns "" when no state is recognizable.
func InferState(label string) string {
	for _, tok := range strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if len(tok) == 2 && tok == strings.ToUpper(tok) && stateCodes[tok] {
			return tok
		}
	}
	lower := strings.ToLower(label)
	for _, s := range usStates {
		if strings.Contains(lower, s.name) {
			return s.code
		}
	}
	return ""
}

// SameState reports whether two location labels resolve to the same US state.
func SameState(a, b string) bool {
	sa := InferState(a)
	return sa != "" && sa == InferState(b)
}
