package driven

// Localizer resolves translated strings. Implementations own the string
// tables; the core only knows keys.
type Localizer interface {
	// Translate returns the string for key in the given locale, with
	// {placeholder} occurrences replaced from params. Unknown keys return
	// the key itself so missing strings stay visible.
	Translate(locale, key string, params map[string]string) string
}
