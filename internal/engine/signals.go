package engine

import (
	"regexp"
	"strconv"
	"strings"
)

var urlPattern = regexp.MustCompile(`(?i)https?://[^\s)]+`)

// ExtractURLs returns every http(s) URL in the message, in appearance order.
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// PlatformFromURL maps a product URL to a marketplace label, or "Other".
func PlatformFromURL(url string) string {
	return lookupPlatform(strings.ToLower(url))
}

// PlatformFromText maps free text to a marketplace label, or "Other".
func PlatformFromText(lowered string) string {
	return lookupPlatform(lowered)
}

func lookupPlatform(lowered string) string {
	for _, p := range platformLookup {
		if strings.Contains(lowered, p.needle) {
			return p.label
		}
	}
	return "Other"
}

// containsBrandAndProduct is the conjunctive shopping signal: the text must
// name both a known brand and a known apparel item.
func containsBrandAndProduct(lowered string) bool {
	return brandVocab.match(lowered) && productVocab.match(lowered)
}

var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bunder\s*([0-9]{2,6})\b`),
	regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*([0-9]{2,6})`),
}

// ExtractBudget returns the first rupee figure mentioned as "under N",
// "rs. N" or "INR N". The second value is false when no budget is present.
func ExtractBudget(text string) (int, bool) {
	for _, re := range budgetPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return n, true
		}
	}
	return 0, false
}

// hasDevanagari reports whether the message contains any Devanagari script.
func hasDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
