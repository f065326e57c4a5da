package parlo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlohq/parlo"
	"github.com/parlohq/parlo/hooks"
)

func frenchCatalog() *parlo.LocaleData {
	return &parlo.LocaleData{
		Locale:      "fr",
		PluralForms: "nplurals=2; plural=(n > 1);",
		Entries: map[string][]string{
			"Hello":   {"Bonjour"},
			"%d item": {"%d article", "%d articles"},

			"menu" + parlo.Delimiter + "Open": {"Ouvrir"},
		},
	}
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil catalog yields the identity translator", func(t *testing.T) {
		t.Parallel()
		tr := parlo.NewTranslator(nil)

		assert.Equal(t, "en", tr.Locale())
		assert.Nil(t, tr.LocaleData())
		assert.Equal(t, "Hello", tr.T("Hello"))
		assert.Equal(t, "1 item", tr.Tn("%d item", "%d items", 1, 1))
		assert.Equal(t, "2 items", tr.Tn("%d item", "%d items", 2, 2))
		assert.False(t, tr.HasTranslation("Hello"))
	})

	t.Run("defaults to en when the catalog names no locale", func(t *testing.T) {
		t.Parallel()
		tr := parlo.NewTranslator(&parlo.LocaleData{Entries: map[string][]string{"Hello": {"Bonjour"}}})

		assert.Equal(t, "en", tr.Locale())
		assert.Equal(t, "Bonjour", tr.T("Hello"))
	})

	t.Run("resolves the catalog locale", func(t *testing.T) {
		t.Parallel()
		tr := parlo.NewTranslator(frenchCatalog())

		assert.Equal(t, "fr", tr.Locale())
		assert.True(t, tr.HasTranslation("Hello"))
		assert.False(t, tr.HasTranslation("Bonjour"))
		assert.Equal(t, "Bonjour", tr.T("Hello"))
	})

	t.Run("equal inputs build equivalent translators", func(t *testing.T) {
		t.Parallel()
		a := parlo.NewTranslator(frenchCatalog())
		b := parlo.NewTranslator(frenchCatalog())

		assert.Equal(t, a.T("Hello"), b.T("Hello"))
		assert.Equal(t, a.Tn("%d item", "%d items", 5, 5), b.Tn("%d item", "%d items", 5, 5))
		assert.Equal(t, a.Locale(), b.Locale())
	})
}

func TestTranslatorLookups(t *testing.T) {
	t.Parallel()

	tr := parlo.NewTranslator(frenchCatalog())

	t.Run("singular passes unknown strings through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Unknown", tr.T("Unknown"))
	})

	t.Run("plural follows the catalog rule", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 article", tr.Tn("%d item", "%d items", 1, 1))
		assert.Equal(t, "2 articles", tr.Tn("%d item", "%d items", 2, 2))
		// French treats zero as singular, unlike the default rule.
		assert.Equal(t, "0 article", tr.Tn("%d item", "%d items", 0, 0))
	})

	t.Run("context disambiguates lookups", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Ouvrir", tr.Tx("Open", "menu"))
		assert.Equal(t, "Open", tr.Tx("Open", "dialog"))
		assert.Equal(t, "Open", tr.T("Open"))
	})

	t.Run("contextual plural falls back per count", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 result", tr.Tnx("%d result", "%d results", 1, "search", 1))
		assert.Equal(t, "3 results", tr.Tnx("%d result", "%d results", 3, "search", 3))
	})

	t.Run("existence predicate honors context keys", func(t *testing.T) {
		t.Parallel()
		assert.True(t, tr.HasTranslation("Open", "menu"))
		assert.False(t, tr.HasTranslation("Open"))
		assert.False(t, tr.HasTranslation("Open", "dialog"))
	})
}

func TestTranslatorFilters(t *testing.T) {
	t.Parallel()

	t.Run("no filters takes the fast path", func(t *testing.T) {
		t.Parallel()
		reg := hooks.New()
		tr := parlo.NewTranslator(frenchCatalog(), parlo.WithFilters(reg))

		require.Equal(t, "Bonjour", tr.T("Hello"))

		// Filters registered after construction stay invisible until a
		// rebuilt snapshot observes them.
		reg.AddFilter(parlo.PreTranslation, "late", func(v any, _ ...any) any {
			args := v.([]any)
			args[0] = strings.ToUpper(args[0].(string))
			return args
		}, hooks.DefaultPriority)
		assert.Equal(t, "Bonjour", tr.T("Hello"))

		rebuilt := parlo.NewTranslator(frenchCatalog(), parlo.WithFilters(reg))
		assert.Equal(t, "HELLO", rebuilt.T("Hello"))
	})

	t.Run("pre filter transforms the argument list", func(t *testing.T) {
		t.Parallel()
		reg := hooks.New()
		reg.AddFilter(parlo.PreTranslation, "upper", func(v any, _ ...any) any {
			args := v.([]any)
			args[0] = strings.ToUpper(args[0].(string))
			return args
		}, hooks.DefaultPriority)

		data := &parlo.LocaleData{
			Locale:  "fr",
			Entries: map[string][]string{"HELLO": {"BONJOUR"}},
		}
		tr := parlo.NewTranslator(data, parlo.WithFilters(reg))

		assert.Equal(t, "BONJOUR", tr.T("hello"))
	})

	t.Run("post filter sees result, args, operation and registry", func(t *testing.T) {
		t.Parallel()
		reg := hooks.New()
		var gotArgs []any
		reg.AddFilter(parlo.PostTranslation, "spy", func(v any, args ...any) any {
			gotArgs = args
			return v.(string) + "!"
		}, hooks.DefaultPriority)

		tr := parlo.NewTranslator(frenchCatalog(), parlo.WithFilters(reg))
		require.Equal(t, "Bonjour!", tr.T("Hello"))

		require.Len(t, gotArgs, 3)
		assert.Equal(t, []any{"Hello"}, gotArgs[0])
		assert.Equal(t, "T", gotArgs[1])
		assert.Same(t, reg, gotArgs[2])
	})

	t.Run("post filter reports the plural operation", func(t *testing.T) {
		t.Parallel()
		reg := hooks.New()
		var op any
		reg.AddFilter(parlo.PostTranslation, "spy", func(v any, args ...any) any {
			op = args[1]
			return v
		}, hooks.DefaultPriority)

		tr := parlo.NewTranslator(frenchCatalog(), parlo.WithFilters(reg))
		tr.Tn("%d item", "%d items", 2, 2)
		assert.Equal(t, "Tn", op)

		tr.Tx("Open", "menu")
		assert.Equal(t, "Tx", op)

		tr.Tnx("%d result", "%d results", 1, "search", 1)
		assert.Equal(t, "Tnx", op)
	})

	t.Run("malformed filter returns degrade gracefully", func(t *testing.T) {
		t.Parallel()
		reg := hooks.New()
		reg.AddFilter(parlo.PreTranslation, "broken", func(any, ...any) any {
			return 42
		}, hooks.DefaultPriority)
		reg.AddFilter(parlo.PostTranslation, "broken", func(any, ...any) any {
			return nil
		}, hooks.DefaultPriority)

		tr := parlo.NewTranslator(frenchCatalog(), parlo.WithFilters(reg))
		assert.Equal(t, "Bonjour", tr.T("Hello"))
	})

	t.Run("pre filter may shrink the argument list", func(t *testing.T) {
		t.Parallel()
		reg := hooks.New()
		reg.AddFilter(parlo.PreTranslation, "truncate", func(v any, _ ...any) any {
			return v.([]any)[:0]
		}, hooks.DefaultPriority)

		tr := parlo.NewTranslator(frenchCatalog(), parlo.WithFilters(reg))
		assert.Equal(t, "Bonjour", tr.T("Hello"))
	})

	t.Run("filter passthrough reaches the bound registry", func(t *testing.T) {
		t.Parallel()
		reg := hooks.New()
		tr := parlo.NewTranslator(frenchCatalog(), parlo.WithFilters(reg))

		tr.AddFilter(parlo.PostTranslation, "ns", func(v any, _ ...any) any { return v }, hooks.DefaultPriority)
		assert.True(t, reg.HasFilter(parlo.PostTranslation))
		assert.Equal(t, 1, tr.RemoveFilter(parlo.PostTranslation, "ns"))
	})
}

func TestTranslatorIsRTL(t *testing.T) {
	t.Parallel()

	t.Run("detects right-to-left locales", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parlo.NewTranslator(&parlo.LocaleData{Locale: "ar"}).IsRTL())
		assert.True(t, parlo.NewTranslator(&parlo.LocaleData{Locale: "he-IL"}).IsRTL())
		assert.False(t, parlo.NewTranslator(&parlo.LocaleData{Locale: "fr"}).IsRTL())
		assert.False(t, parlo.NewTranslator(nil).IsRTL())
	})

	t.Run("catalog direction pin wins over the locale", func(t *testing.T) {
		t.Parallel()
		pinned := &parlo.LocaleData{
			Locale: "en",
			Entries: map[string][]string{
				"text direction" + parlo.Delimiter + "ltr": {"rtl"},
			},
		}
		assert.True(t, parlo.NewTranslator(pinned).IsRTL())

		unpinned := &parlo.LocaleData{
			Locale: "ar",
			Entries: map[string][]string{
				"text direction" + parlo.Delimiter + "ltr": {"ltr"},
			},
		}
		assert.False(t, parlo.NewTranslator(unpinned).IsRTL())
	})
}
