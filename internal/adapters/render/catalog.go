package render

import "maps"

// mergePhrases builds the phrase table of locale. The locale section of the
// all-locales catalog is overlaid with the locale section of the single-locale
// catalog, or with its top level when it has no such section.
func mergePhrases(all, one any, locale string) map[string]any {
	table := make(map[string]any)

	if m, ok := all.(map[string]any); ok {
		if section, ok := m[locale].(map[string]any); ok {
			maps.Copy(table, section)
		}
	}

	if m, ok := one.(map[string]any); ok {
		if section, ok := m[locale].(map[string]any); ok {
			maps.Copy(table, section)
		} else {
			maps.Copy(table, m)
		}
	}

	return table
}
