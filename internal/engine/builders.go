package engine

import (
	"fmt"
	"strings"
)

// Icons used by the fixed response templates. The section order and bullet
// markers below are part of the reply contract consumed by the web UI, not
// incidental formatting.
const (
	iconSparkles = "✨"
	iconSearch   = "\U0001F50D"
	iconStyle    = "\U0001F4A1"
	iconVerdict  = "\U0001F3AF"
	iconCart     = "\U0001F6D2"
	iconPalette  = "\U0001F3A8"
	iconGrowth   = "\U0001F4E2"
	iconQuestion = "❓"
	iconPoint    = "\U0001F449"

	bullet = "•"
)

// shortHeader opens the product and suggestion templates; the greeting
// wrapper splices it out on first-turn replies.
const shortHeader = iconSparkles + " Hello, I’m Neon — your AI Shopping Assistant"

// buildModeResponse dispatches to the builder for the classified mode. The
// switch is exhaustive over IntentMode; adding a mode without a builder arm
// falls through to the friendly default.
func buildModeResponse(mode IntentMode, message string, audience Audience, language LanguageStyle) string {
	switch mode {
	case ModeProductLink:
		return buildProductLinkReply(message, audience)
	case ModeFashionSuggestion:
		return buildFashionSuggestionReply(message, audience)
	case ModeEducation:
		return buildEducationReply(message)
	case ModeFriendlyChat:
		return buildFriendlyChatReply(message, language)
	}
	return buildFriendlyChatReply(message, language)
}

// --- product_link mode ---

func buildProductLinkReply(message string, audience Audience) string {
	lowered := strings.ToLower(message)

	platform := "Other"
	if urls := ExtractURLs(message); len(urls) > 0 {
		platform = PlatformFromURL(urls[0])
	} else {
		platform = PlatformFromText(lowered)
	}

	gender := genderLabel(lowered, audience)
	itemType := inferProductType(lowered)
	category := itemType
	if gender != "General" {
		category = gender + " " + itemType
	}

	rating := inferValueRating(lowered)
	verdictLabel, verdictReason := inferVerdict(rating, lowered)

	lines := []string{
		shortHeader,
		"",
		iconSearch + " Product Analysis",
		bullet + " Platform: " + platform,
		bullet + " Category: " + category,
		bullet + " Style: " + inferStyleType(lowered),
		bullet + " Best For: " + inferBestFor(lowered),
		bullet + " Season: " + inferSeason(lowered),
		bullet + " Value for Money: " + FormatValueStars(rating),
		"",
		iconStyle + " Styling Tip",
		bullet + " Pair with " + inferPairingTip(lowered) + ".",
		bullet + " Fabric check: " + inferFabricNote(lowered) + ".",
		"",
		iconVerdict + " Neon Verdict",
		verdictLabel + " — " + verdictReason,
		"",
		iconCart + " Quick Action",
		"Check recent reviews, real-user photos, and return policy before checkout.",
		iconPoint + " Buy here: [affiliate link placeholder]",
	}
	return strings.Join(lines, "\n")
}

// keywordLabel resolves the first matching vocabulary in an ordered table.
type keywordLabel struct {
	vocab phraseSet
	label string
}

func firstLabel(lowered string, table []keywordLabel, fallback string) string {
	for _, entry := range table {
		if entry.vocab.match(lowered) {
			return entry.label
		}
	}
	return fallback
}

// Product type resolution order matters: t-shirt variants must be checked
// before the bare "shirt" token, and ethnic pieces before the generic
// fallback.
var productTypeTable = []keywordLabel{
	{newPhraseSet("t-shirt", "tshirt", "tee"), "T-Shirt"},
	{newPhraseSet("shirt"), "Shirt"},
	{newPhraseSet("jeans", "jean", "trouser", "trousers", "pants"), "Bottomwear"},
	{newPhraseSet("dress"), "Dress"},
	{newPhraseSet("kurti", "kurta", "saree", "lehenga", "ethnic"), "Ethnic Wear"},
	{newPhraseSet("hoodie"), "Hoodie"},
	{newPhraseSet("jacket"), "Jacket"},
}

func inferProductType(lowered string) string {
	return firstLabel(lowered, productTypeTable, "Fashion Apparel")
}

var styleTypeTable = []keywordLabel{
	{newPhraseSet("ethnic", "kurta", "saree", "lehenga"), "Ethnic"},
	{newPhraseSet("formal", "office", "blazer"), "Formal"},
	{newPhraseSet("street", "oversized", "cargo", "sneaker"), "Streetwear"},
	{newPhraseSet("party", "wedding", "festive"), "Occasion"},
}

func inferStyleType(lowered string) string {
	return firstLabel(lowered, styleTypeTable, "Casual")
}

var bestForTable = []keywordLabel{
	{newPhraseSet("office", "work", "formal"), "Office and smart-casual looks"},
	{newPhraseSet("party", "wedding", "festive"), "Events and occasion wear"},
	{newPhraseSet("gym", "sports", "run"), "Active use"},
}

func inferBestFor(lowered string) string {
	return firstLabel(lowered, bestForTable, "Daily wear and easy styling")
}

var seasonTable = []keywordLabel{
	{newPhraseSet("winter", "fleece", "wool", "sweatshirt", "hoodie"), "Winter"},
	{newPhraseSet("monsoon", "rain", "waterproof"), "Monsoon"},
	{newPhraseSet("summer", "linen", "cotton"), "Summer"},
}

func inferSeason(lowered string) string {
	return firstLabel(lowered, seasonTable, "Summer-friendly for Indian weather")
}

var (
	overpricedVocab = newPhraseSet("overpriced", "too expensive", "high price")
	dealVocab       = newPhraseSet("sale", "discount", "offer", "deal", "cashback")
	premiumVocab    = newPhraseSet("premium", "luxury")
	poorVocab       = newPhraseSet("poor quality", "bad quality", "skip")
)

// inferValueRating derives the 1-5 value score from price sentiment. The
// default is a neutral 3; deal signals (including an explicit budget) raise
// it, overpriced complaints lower it.
func inferValueRating(lowered string) int {
	switch {
	case overpricedVocab.match(lowered):
		return 2
	case dealVocab.match(lowered):
		return 4
	case budgetPatterns[0].MatchString(lowered):
		return 4
	case premiumVocab.match(lowered):
		return 3
	}
	return 3
}

// FormatValueStars renders a rating as filled and empty star glyphs,
// clamping out-of-range values into [1,5] first.
func FormatValueStars(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func inferVerdict(rating int, lowered string) (label, reason string) {
	if rating <= 2 || poorVocab.match(lowered) {
		return "Skip", "price-to-quality balance looks weak for this pick."
	}
	if rating >= 4 {
		return "Worth it", "value looks strong for the style and likely daily usability."
	}
	return "Good option", "decent choice if the fit, reviews, and fabric blend check out."
}

var fabricNoteTable = []keywordLabel{
	{newPhraseSet("cotton"), "cotton-rich fabric is great for comfort"},
	{newPhraseSet("linen"), "linen blend is breathable for Indian summer"},
	{newPhraseSet("polyester"), "polyester blend can feel warm, check blend ratio"},
	{newPhraseSet("viscose", "rayon"), "viscose or rayon drape well but check durability"},
}

func inferFabricNote(lowered string) string {
	return firstLabel(lowered, fabricNoteTable, "prefer cotton-rich fabrics for better comfort")
}

var pairingTipTable = []keywordLabel{
	{newPhraseSet("t-shirt", "tshirt", "tee"), "blue denim or cargos with minimal sneakers"},
	{newPhraseSet("shirt"), "straight-fit jeans or chinos with clean sneakers"},
	{newPhraseSet("kurta", "ethnic"), "solid bottoms and loafers for a polished ethnic look"},
	{newPhraseSet("dress"), "a light shrug and neutral footwear"},
}

func inferPairingTip(lowered string) string {
	return firstLabel(lowered, pairingTipTable, "neutral bottoms and simple footwear for repeat styling")
}

// --- fashion_suggestion mode ---

func buildFashionSuggestionReply(message string, audience Audience) string {
	lowered := strings.ToLower(message)
	gender := genderLabel(lowered, audience)
	budget, hasBudget := ExtractBudget(message)

	budgetLine := "Budget can be tailored to your range"
	if hasBudget {
		budgetLine = fmt.Sprintf("Around INR %d", budget)
	}

	lines := []string{
		shortHeader,
		"",
		iconPalette + " Fashion Suggestions",
		bullet + " Audience: " + gender,
		bullet + " Weather Fit: " + inferWeatherFit(lowered),
		bullet + " Budget Focus: " + budgetLine,
		bullet + " Trending Styles:",
	}
	for _, idea := range inferTrendingIdeas(lowered, gender, budget, hasBudget) {
		lines = append(lines, bullet+" "+idea)
	}

	lines = append(lines, "", iconStyle+" Pairing Tips")
	for _, tip := range inferPairingIdeas(lowered, gender) {
		lines = append(lines, bullet+" "+tip)
	}

	lines = append(lines,
		"",
		iconCart+" Quick Action",
		"Want to grab this look?",
		iconPoint+" Buy here: [affiliate link placeholder]",
		"",
		iconQuestion+" One Smart Question",
		inferFollowUpQuestion(lowered, hasBudget),
	)
	return strings.Join(lines, "\n")
}

var weatherFitTable = []keywordLabel{
	{newPhraseSet("winter", "cold"), "Layer-friendly for cooler weather"},
	{newPhraseSet("monsoon", "rain"), "Quick-dry and easy-maintenance pieces"},
}

func inferWeatherFit(lowered string) string {
	return firstLabel(lowered, weatherFitTable, "Breathable picks for warm and humid Indian weather")
}

var (
	shirtOnlyVocab   = newPhraseSet("shirt")
	teeVocab         = newPhraseSet("t-shirt", "tshirt", "tee")
	dressVocab       = newPhraseSet("dress")
	ethnicPieceVocab = newPhraseSet("kurta", "ethnic", "saree", "lehenga")
	topwearVocab     = newPhraseSet("shirt", "t-shirt", "tshirt", "tee", "top")
)

// inferTrendingIdeas returns up to three trend suggestions, keyed first by
// the detected product type and then by gender, with a generic fallback.
func inferTrendingIdeas(lowered, gender string, budget int, hasBudget bool) []string {
	suffix := "in budget-friendly ranges"
	if hasBudget {
		suffix = fmt.Sprintf("under INR %d", budget)
	}

	var ideas []string
	switch {
	case teeVocab.match(lowered):
		ideas = []string{"Minimal logo tees", "Graphic tees", "Textured basics"}
	case shirtOnlyVocab.match(lowered):
		ideas = []string{"Oversized cotton shirts", "Pastel striped shirts", "Solid relaxed-fit shirts"}
	case dressVocab.match(lowered):
		ideas = []string{"Floral midi dresses", "Solid A-line dresses", "Co-ord dress sets"}
	case ethnicPieceVocab.match(lowered):
		ideas = []string{"Cotton kurta sets", "Printed ethnic sets", "Festive-ready lightweight options"}
	case gender == "Men":
		ideas = []string{"Smart-casual shirts", "Cargo and clean tee combinations", "Breathable summer polos"}
	case gender == "Women":
		ideas = []string{"Co-ord sets", "Relaxed shirts with straight jeans", "Soft pastel everyday outfits"}
	case gender == "Kids":
		ideas = []string{"Soft cotton playwear", "Easy-wash daily sets", "Lightweight festive kidswear"}
	default:
		ideas = []string{"Breathable basics", "Trend-led casual outfits", "Daily repeat-friendly styles"}
	}

	out := make([]string, len(ideas))
	for i, idea := range ideas {
		out[i] = idea + " " + suffix
	}
	return out
}

// inferPairingIdeas returns up to two pairing tips with the same
// category-then-gender fallback precedence as the trend ideas.
func inferPairingIdeas(lowered, gender string) []string {
	switch {
	case topwearVocab.match(lowered):
		return []string{
			"Pair with straight-fit denim and white sneakers for a clean daily look.",
			"Add a lightweight overshirt for evenings without losing comfort.",
		}
	case dressVocab.match(lowered):
		return []string{
			"Use neutral sandals and a compact sling bag for balanced styling.",
			"Add subtle jewelry and a light layer for day-to-evening transition.",
		}
	case ethnicPieceVocab.match(lowered):
		return []string{
			"Pair with comfortable footwear first, then build accessories around one accent color.",
			"Use breathable inner layers to stay comfortable in humid weather.",
		}
	case gender == "Men":
		return []string{
			"Build with a breathable top, dark denim, and clean sneakers.",
			"Use one statement piece only, then keep the rest neutral for a sharper look.",
		}
	case gender == "Women":
		return []string{
			"Start with breathable fabrics and add one trend-forward layer like an overshirt.",
			"Balance colors: one pop shade with neutral base tones for a premium look.",
		}
	}
	return []string{
		"Choose breathable cotton or linen first, then style with neutral bottoms.",
		"Keep footwear simple and repeatable to maximize wardrobe value.",
	}
}

var (
	occasionVocab = newPhraseSet("occasion", "office", "party", "wedding", "daily")
	colorVocab    = newPhraseSet("color", "colour")
)

// inferFollowUpQuestion picks exactly one contextual follow-up, by priority:
// budget, then occasion, then color, then fit.
func inferFollowUpQuestion(lowered string, hasBudget bool) string {
	if !hasBudget {
		return "What budget should I optimize for?"
	}
	if !occasionVocab.match(lowered) {
		return "Which occasion should I optimize this for: daily wear, office, or outing?"
	}
	if !colorVocab.match(lowered) {
		return "Which color direction do you prefer: neutrals, earthy tones, or bright shades?"
	}
	return "Do you want a regular fit, slim fit, or oversized fit?"
}

// --- education mode ---

var affiliateBasicsVocab = newPhraseSet(
	"affiliate", "affiliate marketing", "earn money", "earning money",
	"how it works", "promotion", "promote", "growth strategy",
	"branding", "brand",
)

// buildEducationReply always emits the fixed three-point growth plan, then
// conditionally appends the Linktree and Pinterest blocks. Appended blocks
// are strictly additive and keep the numbering continuous; the tracking
// line always closes the reply.
func buildEducationReply(message string) string {
	lowered := strings.ToLower(message)
	wantsLinktree := strings.Contains(lowered, "linktree")
	wantsPinterest := strings.Contains(lowered, "pinterest")
	wantsBasics := affiliateBasicsVocab.match(lowered)

	lines := []string{
		iconGrowth + " Fashion Affiliate Growth Plan",
		"1. Pick one fashion niche and audience (Women, Men, or Kids) so your content stays focused.",
		"2. Build trust-first branding: clear bio, consistent colors, and practical styling content before hard selling.",
		"3. Create offer buckets: premium picks, budget deals, and seasonal edits with clear value messaging.",
	}

	next := 4
	if wantsLinktree || wantsBasics {
		lines = append(lines,
			fmt.Sprintf("%d. Set up Linktree for conversion: top links should be best outfit, under-999 deals, and your strongest platform picks.", next),
			fmt.Sprintf("%d. Use affiliate-safe CTA style: compare options first, then share one clear buy link.", next+1),
		)
		next += 2
	}

	if wantsPinterest || wantsBasics {
		lines = append(lines,
			fmt.Sprintf("%d. Pinterest system for fashion growth:", next),
			bullet+" Create niche boards (e.g., Men Summer Looks, Women Ethnic Under INR 999).",
			bullet+" Use vertical pins in 2:3 ratio with a strong hook title.",
			bullet+" Route clicks to Linktree affiliate links, not random deep links.",
			bullet+" Post consistently: 5-10 pins per day and test multiple hooks weekly.",
		)
		next++
	}

	lines = append(lines, fmt.Sprintf("%d. Track what converts: saves, outbound clicks, Linktree CTR, and purchases by platform.", next))
	return strings.Join(lines, "\n")
}

// --- friendly_chat mode ---

var (
	jokeVocab     = newPhraseSet("joke", "funny")
	howAreYouRe   = newPhraseSet("how are you", "kaise ho", "kaisa hai")
	greetingStart = []string{"hi", "hello", "hey", "namaste", "yo"}
)

func startsWithGreeting(lowered string) bool {
	for _, g := range greetingStart {
		rest, ok := strings.CutPrefix(lowered, g)
		if !ok {
			continue
		}
		if rest == "" || !isWordChar(rest[0]) {
			return true
		}
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// friendlyHello returns the hello micro-response for the given language.
// The greeting wrapper recognizes these lines and absorbs them on the first
// turn so the canonical greeting is never doubled up.
func friendlyHello(language LanguageStyle) string {
	if language == LangHinglish {
		return "Hi! Main Neon hoon. Fashion picks, outfit styling, ya affiliate growth help chahiye?"
	}
	return "Hi! I’m Neon. Want fashion picks, outfit ideas, or affiliate growth help?"
}

func buildFriendlyChatReply(message string, language LanguageStyle) string {
	lowered := strings.ToLower(strings.TrimSpace(message))

	if jokeVocab.match(lowered) {
		return "Style joke: my fashion advice is instant, but your cart still needs your final approval."
	}

	if startsWithGreeting(lowered) {
		return friendlyHello(language)
	}

	if howAreYouRe.match(lowered) {
		if language == LangHinglish {
			return "Main great hoon. Tum batao, style advice chahiye ya casual chat?"
		}
		return "I'm doing well. Want style advice or a quick chat?"
	}

	if language == LangHinglish {
		return "Main fashion shopping, styling, aur affiliate growth mein help karta hoon. Batao kis cheez se start karein?"
	}
	return "I can help with fashion shopping, styling, and affiliate growth. Tell me what you're looking for."
}
