package voice

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// rule is one (pattern, extractor) pair. extract returns false to let the
// next rule try, which is how an empty item phrase skips a template.
type rule struct {
	name    string
	re      *regexp.Regexp
	extract func(text string, m []string) (Intent, bool)
}

// Parser classifies transcripts by trying its rules in order. The first rule
// whose pattern matches and whose extractor accepts the match wins.
type Parser struct {
	rules       []rule
	priceFirst  bool
	salvageKind Kind
	stopwords   map[string]bool
}

var reClearAll = regexp.MustCompile(`\b(?:clear all|delete all|remove all|empty list|clear list|delete everything)\b`)

var (
	addRule = rule{
		name:    "add",
		re:      regexp.MustCompile(`\badd (?:(\d+)\s+)?(.+?)(?:\s+to (?:my |the )?list)?(?:\s+please)?$`),
		extract: addExtractor,
	}
	needRule = rule{
		name:    "need",
		re:      regexp.MustCompile(`\bi(?: need| want|'d like)(?: to buy)? (?:(\d+)\s+)?(.+)$`),
		extract: addExtractor,
	}
	buyRule = rule{
		name:    "buy",
		re:      regexp.MustCompile(`\b(?:buy|get|purchase) (?:(\d+)\s+)?(.+)$`),
		extract: addExtractor,
	}
	putRule = rule{
		name:    "put",
		re:      regexp.MustCompile(`\b(?:put|include) (?:(\d+)\s+)?(.+?)(?:\s+(?:on|in) (?:my |the )?list)?$`),
		extract: addExtractor,
	}
	bareRule = rule{
		name:    "bare",
		re:      regexp.MustCompile(`^(?:(\d+)\s+)?([a-z][a-z\s'-]*)$`),
		extract: bareExtractor,
	}
	removeRule = rule{
		name:    "remove",
		re:      regexp.MustCompile(`\b(?:remove|delete|take (?:off|out)) (.+?)(?:\s+(?:from|off) (?:of )?(?:my |the )?list)?(?:\s+please)?$`),
		extract: removeExtractor,
	}
	clearAllRule = rule{
		name: "clear-all",
		re:   reClearAll,
		extract: func(string, []string) (Intent, bool) {
			return Intent{Kind: ClearAll}, true
		},
	}
	betweenRule = rule{
		name:    "between",
		re:      regexp.MustCompile(`\bbetween \$?(\d+(?:\.\d+)?) and \$?(\d+(?:\.\d+)?)`),
		extract: betweenExtractor,
	}
	underRule = rule{
		name:    "under",
		re:      regexp.MustCompile(`\b(?:under|less than|below) \$?(\d+(?:\.\d+)?)`),
		extract: underExtractor,
	}
	searchRule = rule{
		name:    "search",
		re:      regexp.MustCompile(`\S`),
		extract: searchExtractor,
	}
)

var commandStopwords = wordSet("add", "get", "buy", "need", "want", "please", "can", "could", "you",
	"the", "a", "an", "some", "and", "or", "but", "to", "from", "my", "list")

var searchStopwords = wordSet("find", "search", "show", "look", "for", "me", "please", "can", "could",
	"you", "the", "a", "an", "some", "and", "or", "but", "to", "from", "my", "list", "dollars", "dollar")

// NewCommandParser reads transcripts spoken to manage the list. A spoken
// price is cut out first. Clear-all phrases win over every template, and
// removal is tried before a bare phrase is read as an item name.
func NewCommandParser() *Parser {
	return &Parser{
		rules:       []rule{clearAllRule, addRule, needRule, buyRule, putRule, removeRule, bareRule},
		priceFirst:  true,
		salvageKind: Add,
		stopwords:   commandStopwords,
	}
}

// NewSearchParser reads transcripts spoken to browse the catalog. Explicit
// add templates still add; price bounds become a PriceFilter; anything else
// is a Search.
func NewSearchParser() *Parser {
	return &Parser{
		rules:       []rule{addRule, needRule, buyRule, putRule, betweenRule, underRule, searchRule},
		salvageKind: Add,
		stopwords:   searchStopwords,
	}
}

// Parse classifies raw. It returns ErrNotRecognized, with an Unrecognized
// intent, when nothing can be salvaged.
func (p *Parser) Parse(raw string) (Intent, error) {
	var (
		text  string
		price *float64
	)
	if p.priceFirst {
		n := Normalize(raw)
		text, price = n.Text, n.Price
	} else {
		text = Clean(raw)
	}

	for _, r := range p.rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		in, ok := r.extract(text, m)
		if !ok {
			continue
		}
		in.Rule = r.name
		in.Transcript = text
		if in.Kind == Add {
			in.Price = price
		}
		return in, nil
	}

	if item := salvage(text, p.stopwords); item != "" {
		return Intent{
			Kind:       p.salvageKind,
			Item:       item,
			Quantity:   1,
			Price:      price,
			Implicit:   true,
			Rule:       "salvage",
			Transcript: text,
		}, nil
	}
	return Intent{Kind: Unrecognized, Transcript: text}, ErrNotRecognized
}

func addExtractor(_ string, m []string) (Intent, bool) {
	qty := 1
	if m[1] != "" {
		qty = parseQuantity(m[1])
	}
	phrase := StripFillers(m[2])
	if q, rest, ok := LeadingQuantity(phrase); ok {
		qty, phrase = q, StripFillers(rest)
	}
	if !hasLetter(phrase) {
		return Intent{}, false
	}
	return Intent{Kind: Add, Item: phrase, Quantity: qty}, true
}

// bareExtractor refuses phrases made only of command words, such as a
// lone "add".
func bareExtractor(text string, m []string) (Intent, bool) {
	for _, w := range strings.Fields(StripFillers(m[2])) {
		if !commandStopwords[w] {
			return addExtractor(text, m)
		}
	}
	return Intent{}, false
}

func removeExtractor(_ string, m []string) (Intent, bool) {
	phrase := StripFillers(m[1])
	if !hasLetter(phrase) {
		return Intent{}, false
	}
	return Intent{Kind: Remove, Item: phrase}, true
}

var (
	rePriceWords = regexp.MustCompile(`\b(?:between \$?\d+(?:\.\d+)? and \$?\d+(?:\.\d+)?|(?:under|less than|below) \$?\d+(?:\.\d+)?)`)
	reSearchVerb = regexp.MustCompile(`\b(?:find|search(?: for)?|show(?: me)?|look for)\b`)
	reCurrency   = regexp.MustCompile(`\$|\bdollars?\b`)
	reNounNoise  = regexp.MustCompile(`\b(?:items?|products?|things?|stuff)\b`)
)

func betweenExtractor(text string, m []string) (Intent, bool) {
	lo, err1 := strconv.ParseFloat(m[1], 64)
	hi, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return Intent{}, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Intent{Kind: PriceFilter, Filter: PriceRange{Min: &lo, Max: &hi}, Item: searchQuery(text)}, true
}

func underExtractor(text string, m []string) (Intent, bool) {
	hi, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Intent{}, false
	}
	return Intent{Kind: PriceFilter, Filter: PriceRange{Max: &hi}, Item: searchQuery(text)}, true
}

func searchExtractor(text string, _ []string) (Intent, bool) {
	q := searchQuery(text)
	if !hasLetter(q) {
		return Intent{}, false
	}
	return Intent{Kind: Search, Item: q}, true
}

// searchQuery strips verbs, price bounds, currency and filler words,
// leaving the product words.
func searchQuery(text string) string {
	q := rePriceWords.ReplaceAllString(text, " ")
	q = reSearchVerb.ReplaceAllString(q, " ")
	q = reCurrency.ReplaceAllString(q, " ")
	q = reNounNoise.ReplaceAllString(q, " ")
	return StripFillers(q)
}

func salvage(text string, stop map[string]bool) string {
	var kept []string
	for _, w := range strings.Fields(text) {
		if len(w) <= 2 || stop[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
