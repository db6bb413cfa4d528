package analysis

// Locale selects the output language of prompts and sample output.
type Locale string

const (
	LocaleZhTW Locale = "zh-TW"
	LocaleZhCN Locale = "zh-CN"
	LocaleEN   Locale = "en"
)

// DefaultLocale is used for empty or unrecognized locale values.
const DefaultLocale = LocaleZhTW

var localeLabels = map[Locale]string{
	LocaleZhTW: "繁體中文",
	LocaleZhCN: "簡體中文",
	LocaleEN:   "English",
}

// ParseLocale maps s to a supported locale, falling back to DefaultLocale.
func ParseLocale(s string) Locale {
	l := Locale(s)
	if _, ok := localeLabels[l]; ok {
		return l
	}
	return DefaultLocale
}

// Label is the human-readable language name embedded in prompts.
func (l Locale) Label() string {
	return localeLabels[ParseLocale(string(l))]
}
