package income

import "strings"

// Category is the aggregation bucket an income type falls into.
// The dashboard's scenario summaries partition income into exactly
// three buckets: W2-like wages, K1-like pass-through income, and
// everything else.
type Category string

const (
	CategoryW2    Category = "w2"
	CategoryK1    Category = "k1"
	CategoryOther Category = "other"
)

// categoryByType is the closed mapping for the known vocabulary plus the
// label aliases observed in real records. Keeping this explicit (rather
// than substring-matching labels at aggregation time) makes
// misclassification impossible for known values: a new type must be
// added here before it can ever land in the W2 or K1 bucket.
var categoryByType = map[string]Category{
	"w2":                      CategoryW2,
	"wages":                   CategoryW2,
	"k1":                      CategoryK1,
	"k-1":                     CategoryK1,
	"capital_gains":           CategoryOther,
	"capital_gains_long_term": CategoryOther,
	"dividends":               CategoryOther,
	"interest":                CategoryOther,
	"patient":                 CategoryOther,
	"rental_income":           CategoryOther,
	"retirement":              CategoryOther,
	"social_security":         CategoryOther,
}

// Classify maps an income-type label to its aggregation category.
// Matching is case-insensitive. The second return value reports whether
// the label is known; unknown labels are classified as Other so totals
// stay complete, and callers are expected to surface them rather than
// bucket silently.
func Classify(incomeType string) (Category, bool) {
	if cat, ok := categoryByType[strings.ToLower(strings.TrimSpace(incomeType))]; ok {
		return cat, true
	}
	return CategoryOther, false
}
