package parlo

import (
	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"

	"github.com/parlohq/parlo/hooks"
)

// Hook names recognized by [Translator] for filter pass-through. Filters on
// PreTranslation receive the call's argument list as a []any and may return
// a transformed list; filters on PostTranslation receive the translated
// string along with the filtered arguments, the operation name ("T", "Tn",
// "Tx" or "Tnx") and the owning registry, and may return a replacement
// string.
const (
	PreTranslation  = "preTranslation"
	PostTranslation = "postTranslation"
)

// Translator is an immutable snapshot binding a translation catalog to an
// optional filter registry. All methods are safe for concurrent use; when
// the catalog or the filter set changes, a replacement Translator is built
// rather than mutating this one. [Provider] handles that rebuild cycle.
type Translator struct {
	engine   *gotext.Po
	data     *LocaleData
	locale   string
	registry *hooks.Registry

	// filtered is fixed at construction time: when no translation filters
	// were registered at that point, calls take the unfiltered fast path
	// even if filters appear on the registry later.
	filtered bool
}

// TranslatorOption configures a [Translator] during construction.
type TranslatorOption func(*Translator)

// WithFilters binds the translator to an existing filter registry. Without
// this option the translator creates a private empty registry so that
// [Translator.AddFilter] still has a target, though such filters only take
// effect through a rebuilt snapshot.
func WithFilters(registry *hooks.Registry) TranslatorOption {
	return func(t *Translator) {
		if registry != nil {
			t.registry = registry
		}
	}
}

// NewTranslator builds a Translator over the given catalog. A nil catalog
// yields the identity translator: every lookup falls back to the source
// string and the locale resolves to "en".
func NewTranslator(data *LocaleData, opts ...TranslatorOption) *Translator {
	t := &Translator{
		data:   data,
		locale: "en",
	}
	if data != nil && data.Locale != "" {
		t.locale = data.Locale
	}

	for _, opt := range opts {
		opt(t)
	}
	if t.registry == nil {
		t.registry = hooks.New()
	}
	t.filtered = t.registry.HasFilter(PreTranslation) || t.registry.HasFilter(PostTranslation)

	t.engine = gotext.NewPo()
	if data != nil {
		t.engine.Parse(data.po())
	}
	return t
}

// T translates a singular string, applying fmt-style formatting when vars
// are given. Untranslated strings pass through unchanged.
func (t *Translator) T(msgid string, vars ...any) string {
	if !t.filtered {
		return t.engine.Get(msgid, vars...)
	}
	args := t.preTranslate(append([]any{msgid}, vars...))
	result := t.engine.Get(argString(args, 0, msgid), argTail(args, 1)...)
	return t.postTranslate(result, args, "T")
}

// Tn translates a string with plural forms, selecting the form for n via
// the catalog's plural rule.
func (t *Translator) Tn(singular, plural string, n int, vars ...any) string {
	if !t.filtered {
		return t.engine.GetN(singular, plural, n, vars...)
	}
	args := t.preTranslate(append([]any{singular, plural, n}, vars...))
	result := t.engine.GetN(
		argString(args, 0, singular),
		argString(args, 1, plural),
		argInt(args, 2, n),
		argTail(args, 3)...,
	)
	return t.postTranslate(result, args, "Tn")
}

// Tx translates a singular string disambiguated by a gettext context.
func (t *Translator) Tx(msgid, context string, vars ...any) string {
	if !t.filtered {
		return t.engine.GetC(msgid, context, vars...)
	}
	args := t.preTranslate(append([]any{msgid, context}, vars...))
	result := t.engine.GetC(
		argString(args, 0, msgid),
		argString(args, 1, context),
		argTail(args, 2)...,
	)
	return t.postTranslate(result, args, "Tx")
}

// Tnx translates a string with plural forms disambiguated by a gettext
// context.
func (t *Translator) Tnx(singular, plural string, n int, context string, vars ...any) string {
	if !t.filtered {
		return t.engine.GetNC(singular, plural, n, context, vars...)
	}
	args := t.preTranslate(append([]any{singular, plural, n, context}, vars...))
	result := t.engine.GetNC(
		argString(args, 0, singular),
		argString(args, 1, plural),
		argInt(args, 2, n),
		argString(args, 3, context),
		argTail(args, 4)...,
	)
	return t.postTranslate(result, args, "Tnx")
}

// HasTranslation reports whether the catalog carries a translation for
// msgid, optionally narrowed by a gettext context. It consults the raw
// catalog only, so engine fallbacks never count as translations.
func (t *Translator) HasTranslation(msgid string, context ...string) bool {
	return t.data.Has(msgid, context...)
}

// Locale returns the resolved locale identifier, "en" when the catalog did
// not specify one.
func (t *Translator) Locale() string {
	return t.locale
}

// LocaleData returns the catalog this translator was built from, nil for
// the identity translator.
func (t *Translator) LocaleData() *LocaleData {
	return t.data
}

// IsRTL reports whether the locale renders right to left. Catalogs may pin
// the direction explicitly by translating "ltr" under the "text direction"
// context; otherwise the base language decides.
func (t *Translator) IsRTL() bool {
	if t.data.Has("ltr", "text direction") {
		return t.engine.GetC("ltr", "text direction") == "rtl"
	}
	return isRTLLocale(t.locale)
}

// AddFilter registers a translation filter on the bound registry. The
// filter takes effect once a rebuilt snapshot observes it, which [Provider]
// does automatically.
func (t *Translator) AddFilter(hook, namespace string, fn hooks.FilterFunc, priority int) {
	t.registry.AddFilter(hook, namespace, fn, priority)
}

// RemoveFilter removes namespace's filters for hook from the bound registry
// and returns the number removed.
func (t *Translator) RemoveFilter(hook, namespace string) int {
	return t.registry.RemoveFilter(hook, namespace)
}

func (t *Translator) preTranslate(args []any) []any {
	filtered, ok := t.registry.ApplyFilters(PreTranslation, args).([]any)
	if !ok {
		return args
	}
	return filtered
}

func (t *Translator) postTranslate(result string, args []any, op string) string {
	final, ok := t.registry.ApplyFilters(PostTranslation, result, args, op, t.registry).(string)
	if !ok {
		return result
	}
	return final
}

// Filters may return malformed argument lists; lookups fall back to the
// original values rather than failing the call.

func argString(args []any, i int, fallback string) string {
	if i < len(args) {
		if s, ok := args[i].(string); ok {
			return s
		}
	}
	return fallback
}

func argInt(args []any, i int, fallback int) int {
	if i < len(args) {
		if n, ok := args[i].(int); ok {
			return n
		}
	}
	return fallback
}

func argTail(args []any, i int) []any {
	if i < len(args) {
		return args[i:]
	}
	return nil
}

// rtlLanguages contains base language codes that use right-to-left text
// direction.
var rtlLanguages = map[string]bool{
	"ar":  true, // Arabic
	"he":  true, // Hebrew
	"fa":  true, // Persian/Farsi
	"ur":  true, // Urdu
	"ps":  true, // Pashto
	"sd":  true, // Sindhi
	"ug":  true, // Uyghur
	"ckb": true, // Central Kurdish
	"dv":  true, // Dhivehi
	"yi":  true, // Yiddish
}

func isRTLLocale(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return rtlLanguages[base.String()]
}
