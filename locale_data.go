package parlo

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// Delimiter joins a gettext context with its message key to form a single
// lookup key. U+0004 (end of transmission) never appears in human-authored
// text, so contextual keys cannot collide with plain ones.
const Delimiter = "\x04"

// LocaleData holds the translation catalog for a single locale in the flat
// Jed format: each key is a message id, optionally prefixed with a gettext
// context and [Delimiter], and each value is the ordered list of plural
// forms for that message.
//
// LocaleData is treated as immutable once handed to a [Translator] or
// [Provider]. Callers that need different entries must build a new value
// rather than mutate one in place.
type LocaleData struct {
	// Locale is the locale identifier, e.g. "fr" or "pt-BR".
	Locale string

	// PluralForms is the gettext plural rule expression, e.g.
	// "nplurals=2; plural=(n != 1);". When empty the engine falls back to
	// its default two-form rule.
	PluralForms string

	// Domain is the optional gettext text domain the catalog belongs to.
	Domain string

	// Entries maps message keys to their translated plural forms.
	Entries map[string][]string
}

// ParseJSON decodes a flat Jed-format JSON document into a LocaleData.
//
// The distinguished "" entry carries metadata ("localeSlug", "plural-forms",
// "domain"); every other entry maps a message key to either a single
// translation string or an array of plural forms. A leading null inside an
// array is dropped for compatibility with catalogs that store the plural
// source in the first slot.
func ParseJSON(data []byte) (*LocaleData, error) {
	var d LocaleData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseYAML decodes a YAML document with the same shape as [ParseJSON].
func ParseYAML(data []byte) (*LocaleData, error) {
	var d LocaleData
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UnmarshalJSON implements [json.Unmarshaler] for the flat Jed format.
func (d *LocaleData) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.fromRaw(raw)
}

// UnmarshalYAML implements [yaml.Unmarshaler] for the flat Jed format.
func (d *LocaleData) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.fromRaw(raw)
}

func (d *LocaleData) fromRaw(raw map[string]any) error {
	entries := make(map[string][]string, len(raw))
	for key, value := range raw {
		if key == "" {
			if err := d.readMetadata(value); err != nil {
				return err
			}
			continue
		}

		forms, err := normalizeForms(value)
		if err != nil {
			return fmt.Errorf("%w: entry %q: %s", ErrInvalidLocaleData, key, err)
		}
		if len(forms) == 0 {
			continue
		}
		entries[key] = forms
	}
	d.Entries = entries
	return nil
}

func (d *LocaleData) readMetadata(value any) error {
	meta, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: metadata entry must be an object, got %T", ErrInvalidLocaleData, value)
	}
	for key, v := range meta {
		s, ok := v.(string)
		if !ok {
			continue
		}
		switch key {
		case "localeSlug", "lang":
			d.Locale = s
		case "plural-forms", "plural_forms":
			d.PluralForms = s
		case "domain":
			d.Domain = s
		}
	}
	return nil
}

func normalizeForms(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []any:
		forms := make([]string, 0, len(v))
		for i, item := range v {
			if item == nil && i == 0 {
				continue
			}
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("form %d must be a string, got %T", i, item)
			}
			forms = append(forms, s)
		}
		return forms, nil
	default:
		return nil, fmt.Errorf("value must be a string or array, got %T", value)
	}
}

// Has reports whether the catalog contains a translation for msgid. An
// optional gettext context narrows the lookup to the contextual entry.
// A nil LocaleData behaves as an empty catalog.
func (d *LocaleData) Has(msgid string, context ...string) bool {
	return d.Lookup(msgid, context...) != nil
}

// Lookup returns the plural forms stored for msgid, or nil when the catalog
// has no matching entry. An optional gettext context narrows the lookup to
// the contextual entry.
func (d *LocaleData) Lookup(msgid string, context ...string) []string {
	if d == nil || len(d.Entries) == 0 {
		return nil
	}
	key := msgid
	if len(context) > 0 && context[0] != "" {
		key = context[0] + Delimiter + msgid
	}
	return d.Entries[key]
}

// po renders the catalog as gettext PO source so it can seed the translation
// engine. Entries with multiple forms synthesize msgid_plural from the msgid
// since the flat format does not carry the plural source; lookups key on the
// msgid alone, so the synthesized value never surfaces.
func (d *LocaleData) po() []byte {
	var b strings.Builder

	b.WriteString("msgid \"\"\nmsgstr \"\"\n")
	if d.Locale != "" {
		fmt.Fprintf(&b, "\"Language: %s\\n\"\n", poEscape(d.Locale))
	}
	if d.PluralForms != "" {
		fmt.Fprintf(&b, "\"Plural-Forms: %s\\n\"\n", poEscape(d.PluralForms))
	}
	b.WriteString("\"Content-Type: text/plain; charset=UTF-8\\n\"\n")

	keys := maps.Keys(d.Entries)
	slices.Sort(keys)
	for _, key := range keys {
		forms := d.Entries[key]
		if key == "" || len(forms) == 0 {
			continue
		}

		b.WriteString("\n")
		msgid := key
		if context, rest, found := strings.Cut(key, Delimiter); found {
			msgid = rest
			fmt.Fprintf(&b, "msgctxt \"%s\"\n", poEscape(context))
		}

		fmt.Fprintf(&b, "msgid \"%s\"\n", poEscape(msgid))
		if len(forms) == 1 {
			fmt.Fprintf(&b, "msgstr \"%s\"\n", poEscape(forms[0]))
			continue
		}
		fmt.Fprintf(&b, "msgid_plural \"%s\"\n", poEscape(msgid))
		for i, form := range forms {
			fmt.Fprintf(&b, "msgstr[%d] \"%s\"\n", i, poEscape(form))
		}
	}

	return []byte(b.String())
}

var poEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func poEscape(s string) string {
	return poEscaper.Replace(s)
}
