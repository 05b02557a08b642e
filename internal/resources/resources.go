// Package resources translates label resource keys, e.g.
// "securite.profil.typeDroit.values.Admin", and exports the whole set of
// labels of a language for front ends.
package resources

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported languages, the first one is the default.
var supported = []language.Tag{language.French, language.English}

type Translator struct {
	catalog *catalog.Builder
	matcher language.Matcher
	keys    []string
}

// New returns a translator for the built-in labels.
func New() (*Translator, error) {
	builder := catalog.NewBuilder(catalog.Fallback(supported[0]))

	keys := make([]string, 0, len(labels))
	for _, l := range labels {
		err := builder.SetString(language.French, l.key, l.fr)
		if err != nil {
			return nil, fmt.Errorf("Failed to add label %q: %w", l.key, err)
		}

		err = builder.SetString(language.English, l.key, l.en)
		if err != nil {
			return nil, fmt.Errorf("Failed to add label %q: %w", l.key, err)
		}

		keys = append(keys, l.key)
	}

	return &Translator{
		catalog: builder,
		matcher: language.NewMatcher(supported),
		keys:    keys,
	}, nil
}

// Languages returns the supported languages, the default first.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(supported))
	for _, tag := range supported {
		langs = append(langs, tag.String())
	}

	return langs
}

// Match returns the supported language best matching the given preferences.
// Each preference is either a language tag ("en", "fr-CH") or the value of
// an Accept-Language header. Invalid preferences are ignored, without any
// usable preference the default language is returned.
func (t *Translator) Match(preferences ...string) language.Tag {
	var tags []language.Tag
	for _, preference := range preferences {
		if strings.TrimSpace(preference) == "" {
			continue
		}

		parsed, _, err := language.ParseAcceptLanguage(preference)
		if err != nil {
			continue
		}

		tags = append(tags, parsed...)
	}

	if len(tags) == 0 {
		return supported[0]
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return supported[0]
	}

	return supported[index]
}

// Translate returns the label for key in the given language. Unknown keys are
// returned unchanged.
func (t *Translator) Translate(lang language.Tag, key string) string {
	printer := message.NewPrinter(lang, message.Catalog(t.catalog))
	return printer.Sprintf(key)
}
