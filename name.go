package buddy

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxCleanIterations bounds the rule loop so pathological input cannot spin.
const maxCleanIterations = 50

// maxNameLength is the longest product name ever returned, in runes.
const maxNameLength = 150

// residualWords are table-data leftovers (packaging, colors, materials) that
// sometimes precede the real product name in the page text stream.
var residualWords = []string{
	"trumma", "bobin", "box", "kartong", "kapad",
	"svart", "grön", "gul", "vit", "röd", "antracit", "grå",
	"platt", "plan", "nej", "ja", "stål", "plast", "metall",
	"rörelsesensor",
}

var (
	// fillerRe matches the "read more" boilerplate that the flipbook text
	// layer injects between products.
	fillerRe = regexp.MustCompile(`Läs mer om produkterna på ahlsell\.se\s*`)

	// leadingUnitRe matches a stray unit abbreviation left over from a
	// previous dimension value.
	leadingUnitRe = regexp.MustCompile(`^(?:mm²|mm|cm|lm|kg|kN|kW|mAh?)\s+`)

	// leadingDimensionRe matches dimension/spec values, including compound
	// strings like "10 mm² 3x1,5".
	leadingDimensionRe = regexp.MustCompile(`^[\d\s,./xGX×:+-]+(?:mm²|mm|cm|m\b|kW|kN|W\b|V\b|A\b|°C|lm|kg|mAh|mA|K\b)[\d\s,.²/x×]*`)

	// leadingRatingRe matches protection ratings and current-type markers.
	leadingRatingRe = regexp.MustCompile(`^(?:IP\d{2}|DC|AC)\s+`)

	// leadingLampRe matches lamp base + wattage + color temperature,
	// e.g. "E27 4,5 W 3000 K ".
	leadingLampRe = regexp.MustCompile(`^E\d{1,2}\s+[\d,.]+\s*W\s+\d+\s*K\s+`)

	// leadingShortNumberRe matches standalone short numbers (page-number residue).
	leadingShortNumberRe = regexp.MustCompile(`^\d{1,4}\s+`)

	// leadingUppercaseRe matches a lone uppercase letter at the start.
	leadingUppercaseRe = regexp.MustCompile(`^[A-Z]\s+`)

	// modelCodeRe matches an alphanumeric model/type code with an optional
	// parenthetical and optional trailing numeric-with-unit groups.
	modelCodeRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9/_.-]{0,20}(?:\s*\([^)]*\))?(?:\s+[\d,.]+\s*(?:V|A|W|mm²?|m)\b)*\s+`)

	// longCapitalizedWordRe matches a capitalized word of at least 4 letters,
	// the shape a genuine Swedish product name starts with.
	longCapitalizedWordRe = regexp.MustCompile(`^([A-ZÅÄÖ][a-zåäö]{3,})`)
)

// nameRule is one noise-stripping rule. apply reports whether it changed the
// text; the cleaning loop restarts from the first rule after any change.
type nameRule struct {
	name  string
	apply func(text string) (string, bool)
}

// nameRules are tried in priority order each iteration, first match wins.
// The model-code rule must stay last: it only runs when nothing else fired,
// and its guard is deliberately conservative (see stripModelCode).
var nameRules = []nameRule{
	{"filler", stripFiller},
	{"unit", stripLeading(leadingUnitRe)},
	{"dimension", stripLeading(leadingDimensionRe)},
	{"rating", stripLeading(leadingRatingRe)},
	{"lamp", stripLeading(leadingLampRe)},
	{"short-number", stripLeading(leadingShortNumberRe)},
	{"punctuation", stripPunctuation},
	{"uppercase-letter", stripLeading(leadingUppercaseRe)},
	{"residual-word", stripResidualWord},
	{"model-code", stripModelCode},
}

// CleanProductName extracts a short human-readable product name from a raw
// text span that may have residual table data at the start. Rules are applied
// until no rule matches, the text is exhausted, or the iteration bound is hit.
func CleanProductName(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	for i := 0; i < maxCleanIterations; i++ {
		text = strings.TrimSpace(text)
		if text == "" {
			break
		}

		matched := false
		for _, rule := range nameRules {
			if next, ok := rule.apply(text); ok {
				text = next
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	// Take text up to the first period. The index guard keeps decimal-like
	// values ("1.5") from truncating the whole name.
	if idx := strings.Index(text, "."); idx > 5 {
		text = strings.TrimSpace(text[:idx])
	}

	if utf8.RuneCountInString(text) > maxNameLength {
		text = truncateAtWordBoundary(text, maxNameLength)
	}

	return strings.TrimSpace(text)
}

// stripFiller removes every occurrence of the boilerplate phrase.
func stripFiller(text string) (string, bool) {
	cleaned := fillerRe.ReplaceAllString(text, "")
	return cleaned, cleaned != text
}

// stripLeading returns a rule that removes a leading match of re.
func stripLeading(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		loc := re.FindStringIndex(text)
		if loc == nil {
			return text, false
		}
		return text[loc[1]:], true
	}
}

// stripPunctuation removes a single leading punctuation character.
func stripPunctuation(text string) (string, bool) {
	if text == "" || !strings.ContainsRune(".!,;:", rune(text[0])) {
		return text, false
	}
	return strings.TrimLeft(text[1:], " "), true
}

// stripResidualWord removes a leading residual word, case-insensitive,
// whether it is followed by a space or a slash.
func stripResidualWord(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, word := range residualWords {
		if strings.HasPrefix(lower, word+" ") || strings.HasPrefix(lower, word+"/") {
			return strings.TrimLeft(text[len(word):], " /"), true
		}
	}
	return text, false
}

// stripModelCode removes a leading model/type code, but only when the text
// that remains starts with a long capitalized word that is not itself a
// residual word. Without the guard this rule eats genuine name prefixes.
func stripModelCode(text string) (string, bool) {
	loc := modelCodeRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	rest := strings.TrimSpace(text[loc[1]:])
	m := longCapitalizedWordRe.FindStringSubmatch(rest)
	if m == nil {
		return text, false
	}
	if isResidualWord(m[1]) {
		return text, false
	}
	return rest, true
}

func isResidualWord(word string) bool {
	lower := strings.ToLower(word)
	for _, w := range residualWords {
		if lower == w {
			return true
		}
	}
	return false
}

// truncateAtWordBoundary returns the longest whole-word prefix of text that
// fits within limit runes.
func truncateAtWordBoundary(text string, limit int) string {
	var kept []string
	length := 0
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		if length+n+1 > limit {
			break
		}
		kept = append(kept, word)
		length += n + 1
	}
	return strings.Join(kept, " ")
}
