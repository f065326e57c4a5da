// Package parlo provides scoped runtime localization for Go web
// applications: gettext-style catalogs, plural-aware translation, and a
// filter pipeline that lets application code rewrite strings without
// touching the catalogs.
//
// Translations flow through [Provider] values carried on the request
// context. Each provider owns a filter registry and keeps an immutable
// [Translator] snapshot in sync with it, so handlers and components read
// a consistent view no matter when filters change.
//
// # Quick Start
//
// Load a directory of catalogs, build one provider per locale, and let the
// middleware pick a provider per request:
//
//	catalogs, err := parlo.LoadDir(ctx, os.DirFS("locales"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	providers := parlo.NewProviders(catalogs)
//
//	r := chi.NewRouter()
//	r.Use(parlo.Middleware(providers))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    t := parlo.FromContext(r.Context())
//	    fmt.Fprintln(w, t.T("Welcome back"))
//	})
//
// Catalog files are named after their locale (fr.json, pt-BR.yaml) and map
// source strings to translations, with an optional "" entry carrying the
// locale slug and plural-forms rule.
//
// # Translating
//
// [FromContext] always returns a usable translator. Without a provider it
// falls back to a shared identity translator, so lookups degrade to the
// source string instead of failing:
//
//	t := parlo.FromContext(ctx)
//	t.T("Hello")                          // "Bonjour"
//	t.Tn("%d item", "%d items", n, n)     // plural rule from the catalog
//	t.Tx("Open", "menu")                  // context-disambiguated lookup
//
// # Filters
//
// Filters registered on the shared registry in
// [github.com/parlohq/parlo/hooks] reach every live provider; filters
// added on a single provider's registry stay local to it. Either way the
// affected providers rebuild their snapshots synchronously, so the next
// [FromContext] read observes the change:
//
//	hooks.AddFilter(parlo.PostTranslation, "app/brand", func(value any, args ...any) any {
//	    s, _ := value.(string)
//	    return strings.ReplaceAll(s, "{brand}", "Acme")
//	}, hooks.DefaultPriority)
//
// # Components
//
// [Localized] and [Text] bridge translations into templ rendering, reading
// the translator from the render context:
//
//	content := parlo.Localized(func(t *parlo.Translator) templ.Component {
//	    return header(t.T("Dashboard"))
//	})
//
// A provider can pin itself for a subtree with [Provider.Wrap], overriding
// whatever the surrounding context carries.
//
// # Scoping
//
// Providers nest: [Provider.Context] shadows any outer provider, and
// [FromContext] resolves the nearest one. Call [Provider.Close] when a
// provider's scope ends to detach it from the shared registry.
package parlo
