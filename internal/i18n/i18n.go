// Package i18n maps structured message keys to language-specific strings.
//
// Each supported language ships a nested dictionary with an identical key
// shape. That identity is a design requirement, not an enforced invariant:
// translators drift, and the resolver degrades gracefully instead of
// crashing. A key that fails to resolve returns the literal key path, which
// is intentionally visible to the user as a missing-translation signal.
package i18n

import (
	"strings"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
)

// Dict is a nested message dictionary: values are either string leaves or
// nested Dicts.
type Dict map[string]any

var dictionaries = map[domain.Language]Dict{
	domain.LangEnglish: english,
	domain.LangHindi:   hindi,
	domain.LangTamil:   tamil,
}

// Resolve walks the dot-separated path through the given language's
// dictionary. If every segment resolves and the terminal is a string leaf,
// the leaf is returned; otherwise the literal path itself is returned. This
// fallback is an explicit contract, not crash avoidance: callers detect a
// missing translation with Resolve(lang, path) != path.
//
// An unknown language walks the English dictionary. Language codes are a
// closed enum upstream, so this only guards programmer error.
func Resolve(lang domain.Language, path string) string {
	dict, ok := dictionaries[lang]
	if !ok {
		dict = english
	}

	node := any(dict)
	for _, segment := range strings.Split(path, ".") {
		m, ok := node.(Dict)
		if !ok {
			return path
		}
		node, ok = m[segment]
		if !ok {
			return path
		}
	}

	leaf, ok := node.(string)
	if !ok {
		// Terminal segment landed on a nested mapping.
		return path
	}
	return leaf
}

// Has reports whether the path has an actual translation in the language,
// i.e. whether Resolve would return something other than the raw path.
func Has(lang domain.Language, path string) bool {
	return Resolve(lang, path) != path
}
