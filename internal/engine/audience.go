package engine

import "strings"

// Audience is the inferred shopper segment, independent of intent.
type Audience string

const (
	AudienceWomen   Audience = "women"
	AudienceMen     Audience = "men"
	AudienceKids    Audience = "kids"
	AudienceGeneral Audience = "general"
)

// LanguageStyle is the detected register of the message.
type LanguageStyle string

const (
	LangEnglish  LanguageStyle = "english"
	LangHinglish LanguageStyle = "hinglish"
	LangHindi    LanguageStyle = "hindi"
)

// audienceCascade is the explicit resolution order for audience tokens.
// Kids is checked before women and men so that a message mentioning both
// resolves to Kids.
var audienceCascade = []struct {
	vocab    phraseSet
	audience Audience
}{
	{kidsVocab, AudienceKids},
	{womenVocab, AudienceWomen},
	{menVocab, AudienceMen},
}

// DetectAudience resolves the shopper segment from the message text, then
// from the caller-supplied hint, and finally defaults to General.
func DetectAudience(message string, hint Audience) Audience {
	lowered := strings.ToLower(message)
	for _, entry := range audienceCascade {
		if entry.vocab.match(lowered) {
			return entry.audience
		}
	}
	switch hint {
	case AudienceWomen, AudienceMen, AudienceKids:
		return hint
	}
	return AudienceGeneral
}

// DetectLanguage resolves the language style of the message. Devanagari
// script always wins outright; romanized Hindi reads as hinglish whether or
// not English commerce words appear alongside it.
func DetectLanguage(message string) LanguageStyle {
	if hasDevanagari(message) {
		return LangHindi
	}
	lowered := strings.ToLower(message)
	if hindiRomanVocab.match(lowered) {
		return LangHinglish
	}
	return LangEnglish
}

// genderLabel renders the display label used inside builder templates. The
// token priority mirrors DetectAudience; the audience parameter carries the
// already-resolved segment as a fallback when the message names none.
func genderLabel(lowered string, audience Audience) string {
	for _, entry := range audienceCascade {
		if entry.vocab.match(lowered) {
			return displayAudience(entry.audience)
		}
	}
	return displayAudience(audience)
}

func displayAudience(a Audience) string {
	switch a {
	case AudienceWomen:
		return "Women"
	case AudienceMen:
		return "Men"
	case AudienceKids:
		return "Kids"
	}
	return "General"
}
