package parlo

import (
	"net/http"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

const defaultLocale = "en"

type middlewareConfig struct {
	extractors []Extractor
	fallback   string
}

// MiddlewareOption configures [Middleware].
type MiddlewareOption func(*middlewareConfig)

// WithExtractors replaces the default locale extraction chain. Sources are
// consulted in order; the first hit wins.
func WithExtractors(sources ...Extractor) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		if len(sources) > 0 {
			cfg.extractors = sources
		}
	}
}

// WithFallback sets the locale used when no extractor produces a usable
// one. Defaults to "en".
func WithFallback(locale string) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		if locale != "" {
			cfg.fallback = locale
		}
	}
}

// Middleware resolves the request's locale and attaches the matching
// provider to the request context, so handlers and components read the
// right translator through [FromContext].
//
// The default extraction chain checks the "lang" cookie, the "lang" query
// parameter, then negotiates Accept-Language against the provider locales.
// Requests that resolve to no known provider pass through unchanged and
// fall back to the identity translator.
func Middleware(providers map[string]*Provider, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{fallback: defaultLocale}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.extractors) == 0 {
		supported := maps.Keys(providers)
		slices.Sort(supported)
		cfg.extractors = []Extractor{
			FromCookie("lang"),
			FromQuery("lang"),
			FromAcceptLanguage(supported...),
		}
	}

	normalized := make(map[string]*Provider, len(providers))
	for locale, p := range providers {
		normalized[strings.ToLower(locale)] = p
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, ok := extractLocale(cfg.extractors, r)
			if !ok {
				locale = cfg.fallback
			}

			p, ok := resolveProvider(normalized, locale)
			if !ok {
				p, ok = resolveProvider(normalized, cfg.fallback)
			}
			if ok {
				r = r.WithContext(p.Context(r.Context()))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// resolveProvider matches a locale against the provider set, trying the
// exact tag first and the base language second, so "pt-BR" finds a "pt"
// provider when no regional one exists.
func resolveProvider(providers map[string]*Provider, locale string) (*Provider, bool) {
	locale = strings.ToLower(locale)
	if p, ok := providers[locale]; ok {
		return p, true
	}
	if base, _, found := strings.Cut(locale, "-"); found {
		if p, ok := providers[base]; ok {
			return p, true
		}
	}
	return nil, false
}
