package engine

import (
	"regexp"
	"strings"
)

// phraseSet is a declarative vocabulary: a list of trigger words/phrases
// compiled once into a single word-boundary alternation. Keeping the lists
// as plain string slices makes each vocabulary independently testable and
// extensible without touching matcher code.
type phraseSet struct {
	phrases []string
	re      *regexp.Regexp
}

func newPhraseSet(phrases ...string) phraseSet {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return phraseSet{
		phrases: phrases,
		re:      regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

// match reports whether any phrase in the set occurs in the lowercased text.
func (s phraseSet) match(lowered string) bool {
	return s.re.MatchString(lowered)
}

// Affiliate/growth/monetization vocabulary. Checked first in the intent
// cascade: education queries often also mention products ("how to promote
// kurta sets") and must not fall into the shopping buckets.
var educationVocab = newPhraseSet(
	"affiliate", "affiliate marketing", "earn money", "earning money",
	"pinterest", "linktree", "branding", "brand", "promotion", "promote",
	"growth strategy", "traffic", "conversion", "how it works",
	"monetize", "monetise",
)

// Evaluative phrases that signal the user wants a specific product judged.
var checkPhraseVocab = newPhraseSet(
	"check this", "is this worth it", "worth it", "should i buy",
	"review this", "is this good", "good option",
)

// Brand and product vocabularies for the conjunctive brand+product signal.
// A brand name alone ("zara") is not enough; the message must also name an
// apparel item ("zara shirt"). Both lists are illustrative samples meant to
// grow with the catalog.
var brandVocab = newPhraseSet(
	"zara", "h&m", "hm", "uniqlo", "nike", "adidas", "puma", "levi", "levis",
	"myntra", "ajio", "roadster", "allen solly", "manyavar", "fabindia",
	"biba", "wrogn", "snitch", "rare rabbit", "uspolo", "u.s. polo",
	"louis philippe", "van heusen",
)

var productVocab = newPhraseSet(
	"shirt", "tshirt", "t-shirt", "tee", "jeans", "dress", "kurta", "kurti",
	"saree", "lehenga", "jacket", "hoodie", "top", "trouser", "pants",
	"sneaker", "shoes", "ethnic", "co-ord", "coord",
)

var suggestionPhraseVocab = newPhraseSet(
	"show", "suggest", "recommend", "trendy", "trending",
	"what should i wear", "what to wear", "outfit", "style", "look",
	"for women", "for men", "for girls", "for boys", "for kids",
)

var fashionItemVocab = newPhraseSet(
	"shirt", "tshirt", "t-shirt", "tee", "dress", "kurta", "kurti", "saree",
	"lehenga", "jeans", "trouser", "hoodie", "jacket", "top", "ethnic",
	"streetwear", "casual", "formal", "party wear",
)

// Audience token sets, in resolution priority order: kids beats women beats
// men, so "outfit for kids and women" resolves to Kids.
var kidsVocab = newPhraseSet("kid", "kids", "child", "children", "toddler", "baby")

var womenVocab = newPhraseSet("girl", "girls", "women", "womens", "woman", "ladies", "female")

var menVocab = newPhraseSet("boy", "boys", "men", "mens", "man", "male")

// Romanized-Hindi function words and English commerce words used by the
// language detector. Both present means hinglish; Hindi words alone still
// read as hinglish since the reply stays in Latin script either way.
var hindiRomanVocab = newPhraseSet(
	"bhai", "yaar", "acha", "accha", "achha", "kya", "kaise", "sahi",
	"kapda", "kapde", "chahiye", "mere", "mujhe", "aap", "aur", "kyu",
)

var englishCommerceVocab = newPhraseSet(
	"shirt", "dress", "fit", "style", "color", "fabric", "link", "buy",
	"product", "under",
)

// platformLookup maps marketplace substrings to display labels. URL text is
// checked before free text; anything unrecognized reports Other.
var platformLookup = []struct {
	needle string
	label  string
}{
	{"amazon", "Amazon"},
	{"flipkart", "Flipkart"},
	{"myntra", "Myntra"},
	{"meesho", "Meesho"},
}
