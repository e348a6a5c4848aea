package gettext

import (
	"strings"

	"golang.org/x/text/language"
)

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace. A POSIX codeset or
// modifier suffix ("fr_FR.UTF-8@euro") is dropped.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		locale = locale[:idx]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// posixLocale spells a locale the way gettext directories are usually named.
func posixLocale(locale string) string {
	return strings.ReplaceAll(normalizeLocale(locale), "-", "_")
}

// languageCandidates expands requested languages into the ordered list of
// locales to search: each language, its configured fallbacks, then its
// parents derived from CLDR.
func languageCandidates(languages []string, resolver FallbackResolver) []string {
	seen := make(map[string]struct{}, len(languages)*3)
	out := make([]string, 0, len(languages)*3)

	add := func(locale string) {
		locale = normalizeLocale(locale)
		if locale == "" {
			return
		}
		if _, exists := seen[locale]; exists {
			return
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}

	for _, lang := range languages {
		add(lang)
		if resolver != nil {
			for _, fallback := range resolver.Resolve(lang) {
				add(fallback)
			}
		}
		for _, parent := range localeParentChain(normalizeLocale(lang)) {
			add(parent)
		}
	}
	return out
}
