package domain

import (
	"fmt"
	"strings"
)

// Language is a display language code such as "en".
type Language string

// Aliases accepted in place of the configured codes.
const (
	LanguageAliasNative = "native"
	LanguageAliasTarget = "target"
)

// Languages is the pair of codes the banner can be shown in.
type Languages struct {
	Native Language
	Target Language
}

// DefaultLanguages returns English as native and Spanish as target.
func DefaultLanguages() Languages {
	return Languages{Native: "en", Target: "es"}
}

// Parse resolves a code or alias to one of the two supported languages.
func (l Languages) Parse(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	switch code {
	case LanguageAliasNative, string(l.Native):
		return l.Native, nil
	case LanguageAliasTarget, string(l.Target):
		return l.Target, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// IsNative reports whether lang is shown untranslated.
func (l Languages) IsNative(lang Language) bool {
	return lang == l.Native
}
