package filter

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// DefaultCategoryField is the record field holding the Project VIC category.
const DefaultCategoryField = "Category"

// ByCategory returns the records of doc whose category field equals category.
// Records keep their source order and are not deduplicated. A document with
// no matching records yields an empty MatchSet, not an error.
func ByCategory(doc *model.Document, category, field string) *model.MatchSet {
	if field == "" {
		field = DefaultCategoryField
	}

	matches := &model.MatchSet{
		Category: category,
		Document: doc,
		Records:  make([]*model.Record, 0),
	}
	if doc == nil {
		return matches
	}

	want := normalize(category)
	for _, r := range doc.Records {
		v, ok := r.Category(field)
		if !ok {
			continue
		}
		if categoryEqual(v, want) {
			matches.Records = append(matches.Records, r)
		}
	}
	return matches
}

// CategoryEqual reports whether a record's category value equals the
// requested category.
//
// Both sides are trimmed and NFC-normalized. When both parse as finite
// numbers they are compared numerically, so 1, "1", 1.0 and "01" all equal
// "1". Otherwise the texts must be identical. Only string and number values
// can match; null, booleans, objects and arrays never do.
func CategoryEqual(v model.Value, category string) bool {
	return categoryEqual(v, normalize(category))
}

// categoryEqual compares against an already normalized category.
func categoryEqual(v model.Value, want string) bool {
	if v.Kind() != model.KindString && v.Kind() != model.KindNumber {
		return false
	}
	got := normalize(v.Text())

	if gotNum, ok := parseNumber(got); ok {
		if wantNum, ok := parseNumber(want); ok {
			return gotNum == wantNum
		}
	}
	return got == want
}

// normalize trims surrounding whitespace and applies Unicode NFC.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// parseNumber parses s as a finite float64.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
