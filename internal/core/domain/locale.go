package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/text/language"
)

// LocaleContext is the locale a tech renders for.
type LocaleContext struct {
	// ID is the identifier as written in the configuration, e.g. "en" or "ru".
	ID string
	// Tag is the parsed BCP 47 tag of ID.
	Tag language.Tag
}

// String returns the locale identifier.
func (l LocaleContext) String() string {
	return l.ID
}

// IsZero reports whether no locale has been selected.
func (l LocaleContext) IsZero() bool {
	return l.ID == ""
}

// ResolveLocale selects the configured locale or, when it is empty, the first project language.
func ResolveLocale(configured string, projectLanguages []string) (LocaleContext, error) {
	id := strings.TrimSpace(configured)
	if id == "" {
		if len(projectLanguages) == 0 {
			return LocaleContext{}, ErrNoLocale
		}
		id = strings.TrimSpace(projectLanguages[0])
	}
	if id == "" {
		return LocaleContext{}, ErrNoLocale
	}

	tag, err := language.Parse(id)
	if err != nil {
		return LocaleContext{}, zerr.With(errors.Join(ErrInvalidLocale, err), "locale", id)
	}
	return LocaleContext{ID: id, Tag: tag}, nil
}

// tldByLanguage maps languages whose national domain differs from their region code.
var tldByLanguage = map[string]string{
	"ru": "ru",
	"uk": "ua",
	"be": "by",
	"kk": "kz",
	"tr": "com.tr",
	"en": "com",
}

// tldByRegion maps regions whose national domain is not their lowercase region code.
var tldByRegion = map[string]string{
	"TR": "com.tr",
	"GB": "co.uk",
	"US": "com",
}

// TLD returns the top-level domain associated with the locale.
// An explicit region wins over the language default; unknown locales get "com".
func (l LocaleContext) TLD() string {
	if region, confidence := l.Tag.Region(); confidence == language.Exact {
		if tld, ok := tldByRegion[region.String()]; ok {
			return tld
		}
		return strings.ToLower(region.String())
	}
	base, _ := l.Tag.Base()
	if tld, ok := tldByLanguage[base.String()]; ok {
		return tld
	}
	return "com"
}
