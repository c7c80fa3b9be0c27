package voice

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSpaces      = regexp.MustCompile(`\s+`)
	reTrailPunct  = regexp.MustCompile(`[.!?]+$`)
	reInnerPunct  = regexp.MustCompile(`[,;!?]`)
	reLeadingQty  = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	reFillerWords = regexp.MustCompile(`(?i)\b(?:a|an|the|some|few|many|couple of|dozen|pack of|bottle of|can of|box of|bag of|loaf of|pounds? of|ounces? of|oz of|for|costs?|dollars?)\b`)

	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`for (\d+(?:\.\d{1,2})?)\s*dollars?`),
		regexp.MustCompile(`\$(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(\d+(?:\.\d{1,2})?)\s*dollars?`),
		regexp.MustCompile(`costs? (\d+(?:\.\d{1,2})?)`),
	}
)

// Normalized is a cleaned transcript with its spoken price removed.
type Normalized struct {
	Text  string
	Price *float64
}

// Clean lowercases raw, drops sentence punctuation and collapses whitespace.
func Clean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = reTrailPunct.ReplaceAllString(s, "")
	s = reInnerPunct.ReplaceAllString(s, " ")
	return collapse(s)
}

// Normalize cleans raw and extracts the first spoken price. The matched
// price phrase is cut out of Text so it cannot leak into an item name.
func Normalize(raw string) Normalized {
	text := Clean(raw)
	for _, re := range pricePatterns {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		v, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err != nil {
			continue
		}
		return Normalized{
			Text:  collapse(text[:loc[0]] + " " + text[loc[1]:]),
			Price: &v,
		}
	}
	return Normalized{Text: text}
}

// StripFillers removes determiners, container units and price words.
func StripFillers(phrase string) string {
	return collapse(reFillerWords.ReplaceAllString(phrase, " "))
}

// LeadingQuantity splits "<digits> <rest>". ok is false when phrase does not
// start with a number; a number that is not a positive int yields quantity 1.
func LeadingQuantity(phrase string) (qty int, rest string, ok bool) {
	m := reLeadingQty.FindStringSubmatch(phrase)
	if m == nil {
		return 0, phrase, false
	}
	return parseQuantity(m[1]), m[2], true
}

func parseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func collapse(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
