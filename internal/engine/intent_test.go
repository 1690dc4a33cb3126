package engine

import "testing"

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    IntentMode
	}{
		{"url is product link", "check https://www.amazon.in/dp/B0TEST please", ModeProductLink},
		{"evaluation phrase", "is this worth it for daily wear", ModeProductLink},
		{"brand plus product", "zara shirt under 999", ModeProductLink},
		{"brand alone is not enough", "I love zara so much", ModeFriendlyChat},
		{"product alone falls to suggestion", "any good shirt ideas", ModeFashionSuggestion},
		{"suggestion phrase", "suggest something trendy for summer", ModeFashionSuggestion},
		{"education keyword", "how does affiliate marketing work", ModeEducation},
		{"education beats product link", "how to promote my zara shirt links on pinterest", ModeEducation},
		{"education beats suggestion", "best branding strategy for fashion reels", ModeEducation},
		{"plain greeting", "hello there", ModeFriendlyChat},
		{"empty message", "", ModeFriendlyChat},
		{"gibberish", "qwxz lorem 12345 !!??", ModeFriendlyChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectIntent(tt.message); got != tt.want {
				t.Errorf("DetectIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetectIntentIsTotal(t *testing.T) {
	known := map[IntentMode]bool{
		ModeProductLink:       true,
		ModeFashionSuggestion: true,
		ModeEducation:         true,
		ModeFriendlyChat:      true,
	}
	inputs := []string{
		"", " ", "\n\t", "🙂🙂🙂", "https://", "shirt shirt shirt",
		"नमस्ते, कैसे हो", "UNDER 500", string(make([]byte, 100)),
	}
	for _, in := range inputs {
		if got := DetectIntent(in); !known[got] {
			t.Errorf("DetectIntent(%q) returned unknown mode %q", in, got)
		}
	}
}

func TestDetectAudience(t *testing.T) {
	tests := []struct {
		name    string
		message string
		hint    Audience
		want    Audience
	}{
		{"women token", "trendy dresses for women", "", AudienceWomen},
		{"men token", "casual shirts for men", "", AudienceMen},
		{"kids token", "cotton wear for kids", "", AudienceKids},
		{"kids beats women", "outfits for kids and women", "", AudienceKids},
		{"women beats men", "styles for women and men", "", AudienceWomen},
		{"hint fills the gap", "something breathable for summer", AudienceMen, AudienceMen},
		{"message beats hint", "kurti sets for girls", AudienceMen, AudienceWomen},
		{"no signal no hint", "something breathable for summer", "", AudienceGeneral},
		{"unknown hint ignored", "something breathable", Audience("aliens"), AudienceGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectAudience(tt.message, tt.hint); got != tt.want {
				t.Errorf("DetectAudience(%q, %q) = %q, want %q", tt.message, tt.hint, got, tt.want)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    LanguageStyle
	}{
		{"plain english", "suggest a shirt under 500", LangEnglish},
		{"romanized hindi", "bhai koi acha shirt chahiye", LangHinglish},
		{"devanagari wins", "मुझे shirt chahiye", LangHindi},
		{"empty", "", LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.message); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		message string
		want    int
		ok      bool
	}{
		{"shirts under 999", 999, true},
		{"something for rs. 1500", 1500, true},
		{"budget INR 2000 max", 2000, true},
		{"under 9 rupees", 0, false},
		{"no budget here", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractBudget(tt.message)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractBudget(%q) = (%d, %v), want (%d, %v)", tt.message, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlatformFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.amazon.in/dp/B0TEST", "Amazon"},
		{"https://www.flipkart.com/item", "Flipkart"},
		{"https://www.myntra.com/shirt", "Myntra"},
		{"https://meesho.com/p/1", "Meesho"},
		{"https://example.com/product", "Other"},
	}
	for _, tt := range tests {
		if got := PlatformFromURL(tt.url); got != tt.want {
			t.Errorf("PlatformFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
