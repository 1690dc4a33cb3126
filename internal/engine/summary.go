package engine

import "strings"

// Summary is the structured view of a product link or description, exposed
// for the catalog analyzer and assistant tools.
type Summary struct {
	URL         string
	Platform    string
	Title       string
	Category    string
	Audience    Audience
	Style       string
	ValueRating int
	Verdict     string
}

// Summarize runs the product signal extractors over free text and returns
// the combined breakdown.
func Summarize(text string) Summary {
	lowered := strings.ToLower(text)

	var url, platform string
	if urls := ExtractURLs(text); len(urls) > 0 {
		url = urls[0]
		platform = PlatformFromURL(url)
	} else {
		platform = PlatformFromText(lowered)
	}

	audience := DetectAudience(text, AudienceGeneral)
	itemType := inferProductType(lowered)
	category := itemType
	if label := displayAudience(audience); label != "General" {
		category = label + " " + itemType
	}

	rating := inferValueRating(lowered)
	verdict, _ := inferVerdict(rating, lowered)

	return Summary{
		URL:         url,
		Platform:    platform,
		Title:       summaryTitle(text, category),
		Category:    category,
		Audience:    audience,
		Style:       inferStyleType(lowered),
		ValueRating: rating,
		Verdict:     verdict,
	}
}

// summaryTitle derives a display title from the text with URLs removed,
// falling back to the category label for link-only messages.
func summaryTitle(text, fallback string) string {
	withoutURLs := urlPattern.ReplaceAllString(text, "")
	title := strings.Join(strings.Fields(withoutURLs), " ")
	if title == "" {
		return fallback
	}
	if runes := []rune(title); len(runes) > 80 {
		title = strings.TrimSpace(string(runes[:80]))
	}
	return title
}
