package translation

import (
	"context"
	"strings"
)

// VowelReplacement is substituted for every lowercase ASCII vowel.
const VowelReplacement = "áéíóú"

var vowelReplacer = strings.NewReplacer(
	"a", VowelReplacement,
	"e", VowelReplacement,
	"i", VowelReplacement,
	"o", VowelReplacement,
	"u", VowelReplacement,
)

// VowelProvider is a deterministic stand-in for a real translation service.
type VowelProvider struct {
	native string
}

// NewVowelProvider creates a VowelProvider that leaves the native language untouched.
func NewVowelProvider(native string) *VowelProvider {
	return &VowelProvider{native: native}
}

// Translate implements ports.TranslationProvider.
func (p *VowelProvider) Translate(ctx context.Context, text, languageCode string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if languageCode == p.native {
		return text, nil
	}
	return vowelReplacer.Replace(text), nil
}
