package engine

import "strings"

// IntentMode is the classified purpose of a user message.
type IntentMode string

const (
	ModeProductLink       IntentMode = "product_link"
	ModeFashionSuggestion IntentMode = "fashion_suggestion"
	ModeEducation         IntentMode = "education"
	ModeFriendlyChat      IntentMode = "friendly_chat"
)

// intentRule is one predicate in the classification cascade. raw preserves
// the original casing (URLs are case-sensitive enough to keep), lowered is
// the normalized view the vocabularies match against.
type intentRule struct {
	mode  IntentMode
	match func(raw, lowered string) bool
}

// intentCascade is the classification priority as an explicit ordered list:
// first match wins, and reordering these entries changes observable
// behavior. Education outranks product_link so that growth questions which
// happen to mention products or links stay in education; product_link
// outranks fashion_suggestion because explicit URLs and evaluation phrases
// are narrower signals than generic fashion vocabulary.
var intentCascade = []intentRule{
	{ModeEducation, func(_, lowered string) bool {
		return educationVocab.match(lowered)
	}},
	{ModeProductLink, func(raw, lowered string) bool {
		return len(ExtractURLs(raw)) > 0 ||
			checkPhraseVocab.match(lowered) ||
			containsBrandAndProduct(lowered)
	}},
	{ModeFashionSuggestion, func(_, lowered string) bool {
		return suggestionPhraseVocab.match(lowered) || fashionItemVocab.match(lowered)
	}},
}

// DetectIntent classifies a message into exactly one IntentMode. The
// classifier is total: messages matching no rule are friendly chat.
func DetectIntent(message string) IntentMode {
	lowered := strings.ToLower(message)
	for _, rule := range intentCascade {
		if rule.match(message, lowered) {
			return rule.mode
		}
	}
	return ModeFriendlyChat
}
