package models

// Language is the output-language tag the caller selects for answers.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageHindi     Language = "hi"
	LanguageArabic    Language = "ar"
	LanguageMalayalam Language = "ml"
)

var languageNames = map[Language]string{
	LanguageEnglish:   "English",
	LanguageHindi:     "Hindi",
	LanguageArabic:    "Arabic",
	LanguageMalayalam: "Malayalam",
}

// Name returns the human-readable language name injected into prompts.
// Unknown tags fall back to English.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "English"
}

// ParseLanguage maps a tag to a supported Language, defaulting to English.
func ParseLanguage(tag string) Language {
	l := Language(tag)
	if _, ok := languageNames[l]; ok {
		return l
	}
	return LanguageEnglish
}
