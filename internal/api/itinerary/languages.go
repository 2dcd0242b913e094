package itinerary

import "golang.org/x/text/language"

const defaultLanguage = "en"

// supportedLanguages maps language codes the frontend can send to the
// language name used in the generation prompt. Slice order is the matcher's
// preference order; English is the fallback.
var supportedLanguages = []struct{ code, name string }{
	{"en", "English"}, {"es", "Spanish"}, {"fr", "French"}, {"de", "German"}, {"it", "Italian"},
	{"pt", "Portuguese"}, {"ru", "Russian"}, {"ja", "Japanese"}, {"ko", "Korean"}, {"zh-cn", "Chinese"},
	{"zh-tw", "Chinese"}, {"zh", "Chinese"}, {"ar", "Arabic"}, {"hi", "Hindi"}, {"tr", "Turkish"},
	{"nl", "Dutch"}, {"pl", "Polish"}, {"sv", "Swedish"}, {"da", "Danish"}, {"no", "Norwegian"},
	{"fi", "Finnish"}, {"cs", "Czech"}, {"sk", "Slovak"}, {"hu", "Hungarian"}, {"ro", "Romanian"},
	{"bg", "Bulgarian"}, {"el", "Greek"}, {"he", "Hebrew"}, {"th", "Thai"}, {"vi", "Vietnamese"},
	{"id", "Indonesian"}, {"ms", "Malay"}, {"uk", "Ukrainian"}, {"fa", "Persian"}, {"sr", "Serbian"},
	{"hr", "Croatian"}, {"sl", "Slovenian"}, {"et", "Estonian"}, {"lv", "Latvian"}, {"lt", "Lithuanian"},
}

var languageMatcher = newLanguageMatcher()

func newLanguageMatcher() language.Matcher {
	tags := make([]language.Tag, len(supportedLanguages))
	for i, l := range supportedLanguages {
		tags[i] = language.Make(l.code)
	}
	return language.NewMatcher(tags)
}

// languageName returns the prompt-facing name for a language code, falling
// back to English for unknown codes.
func languageName(code string) string {
	for _, l := range supportedLanguages {
		if l.code == code {
			return l.name
		}
	}
	return "English"
}

// negotiateLanguage picks a supported language code from an Accept-Language
// header, defaulting to English.
func negotiateLanguage(header string) string {
	if header == "" {
		return defaultLanguage
	}
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLanguage
	}
	_, index, conf := languageMatcher.Match(desired...)
	if conf == language.No {
		return defaultLanguage
	}
	return supportedLanguages[index].code
}
