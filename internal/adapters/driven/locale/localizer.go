// Package locale provides a static, map-backed Localizer.
// String tables live in code; managing them is out of scope for this module.
package locale

import (
	"strings"

	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// DefaultLocale is used when a requested locale has no table.
const DefaultLocale = "en"

// Ensure Localizer implements the interface.
var _ driven.Localizer = (*Localizer)(nil)

// Localizer resolves keys against built-in string tables.
type Localizer struct {
	tables map[string]map[string]string
}

// New creates a localizer with the built-in en/es tables.
func New() *Localizer {
	return &Localizer{
		tables: map[string]map[string]string{
			"en": {
				"report.archiveReasons.default": "This chat is no longer active",
				"workspace.unknown":             "Unknown workspace",
				"sidebar.pinned":                "Pinned",
				"search.noResults":              "No results found",
				"invite.suggestion":             "Invite {login}",
			},
			"es": {
				"report.archiveReasons.default": "Este chat ya no está activo",
				"workspace.unknown":             "Espacio de trabajo desconocido",
				"sidebar.pinned":                "Fijados",
				"search.noResults":              "No se encontraron resultados",
				"invite.suggestion":             "Invitar a {login}",
			},
		},
	}
}

// Translate returns the string for key in the given locale, replacing
// {placeholder} occurrences from params. Unknown locales fall back to the
// default table; unknown keys return the key itself so missing strings stay
// visible in the UI.
func (l *Localizer) Translate(locale, key string, params map[string]string) string {
	table, ok := l.tables[locale]
	if !ok {
		table = l.tables[DefaultLocale]
	}

	value, ok := table[key]
	if !ok {
		// Fall back to the default table before giving up.
		if value, ok = l.tables[DefaultLocale][key]; !ok {
			return key
		}
	}

	for name, replacement := range params {
		value = strings.ReplaceAll(value, "{"+name+"}", replacement)
	}
	return value
}
